// Command packfmt is a small inspection tool over the pack wire format: it
// assembles a value from a printf-style template and prints it pretty, or
// pretty-prints an already-encoded file. encode prints hex text so its
// output can be piped straight into print, e.g.
// "packfmt encode '[%d]' 7 | packfmt print".
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/arloliu/packcodec"
)

func main() {
	app := &cli.App{
		Name:  "packfmt",
		Usage: "assemble and inspect pack-encoded values",
		Commands: []*cli.Command{
			encodeCommand,
			printCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var encodeCommand = &cli.Command{
	Name:      "encode",
	Usage:     "assemble a value from a template and print the bytes as hex",
	ArgsUsage: "template [args...]",
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 1 {
			return cli.Exit("encode requires a template argument", 1)
		}
		tmpl := c.Args().First()

		args := make([]any, 0, c.Args().Len()-1)
		for _, a := range c.Args().Slice()[1:] {
			args = append(args, parseArg(a))
		}

		n := pack.Format(nil, tmpl, args...)
		buf := make([]byte, n)
		pack.Format(buf, tmpl, args...)

		fmt.Println(hex.EncodeToString(buf))
		return nil
	},
}

// parseArg guesses an argument's intended Format specifier type from its
// textual form: a command line has no type annotations of its own.
func parseArg(a string) any {
	if a == "true" || a == "false" {
		return a == "true"
	}
	if i, err := strconv.ParseInt(a, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(a, 64); err == nil {
		return f
	}
	return a
}

var printCommand = &cli.Command{
	Name:      "print",
	Usage:     "pretty-print pack-encoded data read as hex text, piped from encode or given as a file/stdin",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "treat the input as raw pack-encoded bytes instead of hex text",
		},
	},
	Action: func(c *cli.Context) error {
		var input []byte
		var err error

		if c.Args().Len() > 0 {
			input, err = os.ReadFile(c.Args().First())
		} else {
			input, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return err
		}

		raw := input
		if !c.Bool("raw") {
			raw, err = hex.DecodeString(strings.TrimSpace(string(input)))
			if err != nil {
				return cli.Exit(fmt.Sprintf("print: input is not valid hex (pass --raw for binary input): %v", err), 1)
			}
		}

		return pack.Fprint(os.Stdout, raw)
	},
}
