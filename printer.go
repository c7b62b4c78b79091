package pack

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/packcodec/internal/bufpool"
	"github.com/arloliu/packcodec/internal/options"
)

// Printer renders decoded values as JSON-like text. NewPrinter applies the
// defaults described by WithEscapeSlash and WithExtLiteral; a zero-value
// Printer does not get them: it prints '/' unescaped and renders an ext
// value as an empty string.
type Printer struct {
	escapeSlash bool
	extLiteral  string
}

// PrinterOption configures a Printer; see WithEscapeSlash and
// WithExtLiteral.
type PrinterOption = options.Option[*Printer]

// NewPrinter builds a Printer from the given options.
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{escapeSlash: true, extLiteral: "undefined"}
	_ = options.Apply(p, opts...)
	return p
}

// WithEscapeSlash controls whether '/' inside a str/bin value is escaped as
// "\/" (the default, matching the JSON-in-JavaScript convention of keeping
// "</script>" out of embedded values) or emitted literally.
func WithEscapeSlash(escape bool) PrinterOption {
	return options.NoError(func(p *Printer) { p.escapeSlash = escape })
}

// WithExtLiteral sets the literal token rendered in place of an ext value's
// (uninterpreted) payload. The default is "undefined".
func WithExtLiteral(literal string) PrinterOption {
	return options.NoError(func(p *Printer) { p.extLiteral = literal })
}

// Fprint renders data as JSON-like text to w using the default Printer
// configuration. It trusts data to be well-formed, the same contract as
// Next; validate untrusted input with Check first.
func Fprint(w io.Writer, data []byte) error {
	return defaultPrinter.Fprint(w, data)
}

var defaultPrinter = NewPrinter()

// Fprint renders data as JSON-like text to w per p's configuration.
func (p *Printer) Fprint(w io.Writer, data []byte) error {
	_, err := p.print(w, data)
	return err
}

// Sprint renders data as JSON-like text and returns the result as a string,
// for callers with no io.Writer of their own. The intermediate buffer comes
// from a pool rather than a fresh allocation per call.
func (p *Printer) Sprint(data []byte) (string, error) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if err := p.Fprint(buf, data); err != nil {
		return "", err
	}
	return string(buf.Bytes()), nil
}

// Sprint renders data as JSON-like text using the default Printer
// configuration and returns the result as a string.
func Sprint(data []byte) (string, error) {
	return defaultPrinter.Sprint(data)
}

// print writes one value and returns data advanced past it, mirroring
// Next's cursor convention so callers can render a stream of top-level
// values without re-slicing by hand.
func (p *Printer) print(w io.Writer, data []byte) ([]byte, error) {
	switch t := TypeOf(data[0]); t {
	case TypeNil:
		return DecodeNil(data), writeString(w, "null")

	case TypeBool:
		v, rest := DecodeBool(data)
		if v {
			return rest, writeString(w, "true")
		}
		return rest, writeString(w, "false")

	case TypeUint:
		v, rest := DecodeUint(data)
		return rest, writeString(w, strconv.FormatUint(v, 10))

	case TypeInt:
		v, rest := DecodeInt(data)
		return rest, writeString(w, strconv.FormatInt(v, 10))

	case TypeFloat:
		v, rest := DecodeFloat(data)
		return rest, writeString(w, strconv.FormatFloat(float64(v), 'g', -1, 32))

	case TypeDouble:
		v, rest := DecodeDouble(data)
		return rest, writeString(w, strconv.FormatFloat(v, 'g', -1, 64))

	case TypeStr, TypeBin:
		raw, rest := DecodeStrBin(data)
		return rest, p.writeQuoted(w, raw)

	case TypeArray:
		return p.printArray(w, data)

	case TypeMap:
		return p.printMap(w, data)

	case TypeExt:
		rest := Next(data)
		return rest, writeString(w, p.extLiteral)

	default:
		panic(fmt.Sprintf("pack: Fprint: unreachable type %v", t))
	}
}

func (p *Printer) printArray(w io.Writer, data []byte) ([]byte, error) {
	n, rest := DecodeArray(data)

	if err := writeString(w, "["); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return nil, err
			}
		}
		var err error
		rest, err = p.print(w, rest)
		if err != nil {
			return nil, err
		}
	}
	return rest, writeString(w, "]")
}

func (p *Printer) printMap(w io.Writer, data []byte) ([]byte, error) {
	n, rest := DecodeMap(data)

	if err := writeString(w, "{"); err != nil {
		return nil, err
	}
	for i := uint32(0); i < n; i++ {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return nil, err
			}
		}
		var err error
		rest, err = p.print(w, rest)
		if err != nil {
			return nil, err
		}
		if err := writeString(w, ": "); err != nil {
			return nil, err
		}
		rest, err = p.print(w, rest)
		if err != nil {
			return nil, err
		}
	}
	return rest, writeString(w, "}")
}

func (p *Printer) writeQuoted(w io.Writer, raw []byte) error {
	if err := writeString(w, "\""); err != nil {
		return err
	}
	for _, b := range raw {
		esc := ""
		if b < 128 {
			esc = escapeTable[b]
		}
		if b == '/' && !p.escapeSlash {
			esc = ""
		}
		if esc != "" {
			if err := writeString(w, esc); err != nil {
				return err
			}
			continue
		}
		if _, err := w.Write([]byte{b}); err != nil {
			return err
		}
	}
	return writeString(w, "\"")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
