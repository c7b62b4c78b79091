package pack

import (
	"fmt"
	"strings"

	"github.com/arloliu/packcodec/errs"
	"github.com/arloliu/packcodec/internal/bufpool"
)

// Format assembles a structured value from a printf-style template and a
// variadic argument list, writing the result into dst and returning the
// number of bytes the template requires.
//
// The template is position-structural: "[" ... "]" wrap an array, "{" ...
// "}" wrap a map, and every conversion specifier or the literal token NIL
// at the current nesting level contributes exactly one encoded value.
// Entering a bracketed region first performs a lookahead over its direct
// children (without descending into further-nested brackets) to compute
// the array/map header's arity before any element is written; a map's
// direct-child count must be even.
//
// Format is a two-pass size accountant in the same call: it always
// accumulates the full required byte count, but only actually writes a
// given element's bytes into dst when doing so stays within len(dst). A
// returned value greater than len(dst) is not an error — it is the
// standard size-probe signal: call Format again with a buffer of at least
// that length. Passing a nil or too-small dst to discover the required
// size is an expected, cheap pattern.
//
// Malformed templates (unbalanced brackets, an odd-arity map, an
// unrecognized conversion specifier, or running out of arguments) are
// programmer errors and panic rather than returning an error.
func Format(dst []byte, tmpl string, args ...any) int {
	toks := tokenizeFormat(tmpl)

	a := &assembler{dst: dst, args: args}
	a.emitSeq(toks, 0, len(toks))
	return a.result
}

// AppendFormat assembles a value per Format and appends the result to dst,
// growing as needed, returning the extended slice. It spares callers who
// don't already have a correctly-sized destination from running Format
// twice themselves: the required-size probe runs with a nil destination,
// and the encoding pass writes into a pooled scratch buffer rather than a
// fresh allocation on every call.
func AppendFormat(dst []byte, tmpl string, args ...any) []byte {
	n := Format(nil, tmpl, args...)

	scratch := bufpool.Get()
	defer bufpool.Put(scratch)

	Format(scratch.Extend(n), tmpl, args...)
	return append(dst, scratch.Bytes()...)
}

type formatTokenKind int

const (
	ftOther formatTokenKind = iota
	ftOpenArray
	ftCloseArray
	ftOpenMap
	ftCloseMap
	ftSpec
	ftNil
)

type specKind int

const (
	specSignedInt specKind = iota
	specUnsignedInt
	specFloat32
	specFloat64
	specBool
	specStr
	specStrExplicit
)

type formatToken struct {
	kind  formatTokenKind
	spec  specKind
	match int // for brackets: index of the matching open/close token
}

// specTable lists recognized conversion specifiers, longest literal first
// so e.g. "%lld" matches before "%ld" and "%ld" before "%l" would (there is
// no bare "%l", but the ordering principle still matters for "%hh"/"%h").
var specTable = []struct {
	lit  string
	spec specKind
}{
	{"%.*s", specStrExplicit},
	{"%hhd", specSignedInt},
	{"%hhi", specSignedInt},
	{"%hhu", specUnsignedInt},
	{"%lld", specSignedInt},
	{"%lli", specSignedInt},
	{"%llu", specUnsignedInt},
	{"%ld", specSignedInt},
	{"%li", specSignedInt},
	{"%lu", specUnsignedInt},
	{"%hd", specSignedInt},
	{"%hi", specSignedInt},
	{"%hu", specUnsignedInt},
	{"%lf", specFloat64},
	{"%d", specSignedInt},
	{"%i", specSignedInt},
	{"%u", specUnsignedInt},
	{"%f", specFloat32},
	{"%b", specBool},
	{"%s", specStr},
}

func tokenizeFormat(tmpl string) []formatToken {
	var toks []formatToken
	var stack []int

	i := 0
	for i < len(tmpl) {
		c := tmpl[i]
		switch {
		case c == '[':
			toks = append(toks, formatToken{kind: ftOpenArray})
			stack = append(stack, len(toks)-1)
			i++

		case c == ']':
			if len(stack) == 0 {
				panic(fmt.Errorf("%w: unbalanced ']'", errs.ErrBadFormat))
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if toks[openIdx].kind != ftOpenArray {
				panic(fmt.Errorf("%w: ']' does not match the innermost open bracket", errs.ErrBadFormat))
			}
			closeIdx := len(toks)
			toks = append(toks, formatToken{kind: ftCloseArray, match: openIdx})
			toks[openIdx].match = closeIdx
			i++

		case c == '{':
			toks = append(toks, formatToken{kind: ftOpenMap})
			stack = append(stack, len(toks)-1)
			i++

		case c == '}':
			if len(stack) == 0 {
				panic(fmt.Errorf("%w: unbalanced '}'", errs.ErrBadFormat))
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if toks[openIdx].kind != ftOpenMap {
				panic(fmt.Errorf("%w: '}' does not match the innermost open bracket", errs.ErrBadFormat))
			}
			closeIdx := len(toks)
			toks = append(toks, formatToken{kind: ftCloseMap, match: openIdx})
			toks[openIdx].match = closeIdx
			i++

		case c == '%':
			if strings.HasPrefix(tmpl[i:], "%%") {
				i += 2 // escaped percent: not emitted, not counted
				continue
			}
			matched := false
			for _, e := range specTable {
				if strings.HasPrefix(tmpl[i:], e.lit) {
					toks = append(toks, formatToken{kind: ftSpec, spec: e.spec})
					i += len(e.lit)
					matched = true
					break
				}
			}
			if !matched {
				panic(fmt.Errorf("%w: unrecognized conversion specifier at %q", errs.ErrBadFormat, tmpl[i:]))
			}

		case c == 'N' && strings.HasPrefix(tmpl[i:], "NIL"):
			toks = append(toks, formatToken{kind: ftNil})
			i += 3

		default:
			i++
		}
	}

	if len(stack) != 0 {
		panic(fmt.Errorf("%w: unbalanced brackets", errs.ErrBadFormat))
	}
	return toks
}

// arity counts the direct children of a bracketed region spanning
// [start, end), treating a nested bracket pair as a single child and
// skipping over its interior.
func arity(toks []formatToken, start, end int) int {
	n := 0
	for i := start; i < end; {
		switch toks[i].kind {
		case ftOpenArray, ftOpenMap:
			n++
			i = toks[i].match + 1
		case ftSpec, ftNil:
			n++
			i++
		default:
			i++
		}
	}
	return n
}

type assembler struct {
	dst    []byte
	args   []any
	argIdx int
	result int
}

func (a *assembler) emitSeq(toks []formatToken, start, end int) {
	for i := start; i < end; {
		tok := toks[i]
		switch tok.kind {
		case ftOpenArray:
			closeIdx := tok.match
			n := arity(toks, i+1, closeIdx)
			a.emit(SizeofArray(uint32(n)), func(buf []byte) { EncodeArray(buf, uint32(n)) })
			a.emitSeq(toks, i+1, closeIdx)
			i = closeIdx + 1

		case ftOpenMap:
			closeIdx := tok.match
			n := arity(toks, i+1, closeIdx)
			if n%2 != 0 {
				panic(fmt.Errorf("%w: map body has odd child count %d", errs.ErrBadFormat, n))
			}
			pairs := uint32(n / 2)
			a.emit(SizeofMap(pairs), func(buf []byte) { EncodeMap(buf, pairs) })
			a.emitSeq(toks, i+1, closeIdx)
			i = closeIdx + 1

		case ftNil:
			a.emit(SizeofNil(), func(buf []byte) { EncodeNil(buf) })
			i++

		case ftSpec:
			a.emitSpec(tok.spec)
			i++

		default:
			i++
		}
	}
}

func (a *assembler) emit(n int, write func([]byte)) {
	if a.dst != nil && a.result+n <= len(a.dst) {
		write(a.dst[a.result : a.result+n])
	}
	a.result += n
}

func (a *assembler) emitSpec(spec specKind) {
	switch spec {
	case specSignedInt:
		v := a.nextInt()
		if v < 0 {
			a.emit(SizeofInt(v), func(buf []byte) { EncodeInt(buf, v) })
		} else {
			a.emit(SizeofUint(uint64(v)), func(buf []byte) { EncodeUint(buf, uint64(v)) })
		}

	case specUnsignedInt:
		v := a.nextUint()
		a.emit(SizeofUint(v), func(buf []byte) { EncodeUint(buf, v) })

	case specFloat32:
		v := float32(a.nextFloat())
		a.emit(SizeofFloat(v), func(buf []byte) { EncodeFloat(buf, v) })

	case specFloat64:
		v := a.nextFloat()
		a.emit(SizeofDouble(v), func(buf []byte) { EncodeDouble(buf, v) })

	case specBool:
		v := a.nextBool()
		a.emit(SizeofBool(v), func(buf []byte) { EncodeBool(buf, v) })

	case specStr:
		s := a.nextString()
		a.emit(SizeofStr(uint32(len(s))), func(buf []byte) { EncodeStr(buf, s) })

	case specStrExplicit:
		l := a.nextInt()
		s := a.nextString()
		if l < 0 || int(l) > len(s) {
			panic("pack: Format: %.*s length out of range for the supplied string")
		}
		s = s[:l]
		a.emit(SizeofStr(uint32(len(s))), func(buf []byte) { EncodeStr(buf, s) })

	default:
		panic("pack: Format: unreachable specifier kind")
	}
}

func (a *assembler) nextArg() any {
	if a.argIdx >= len(a.args) {
		panic("pack: Format: not enough arguments for template")
	}
	v := a.args[a.argIdx]
	a.argIdx++
	return v
}

func (a *assembler) nextInt() int64 {
	switch v := a.nextArg().(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	default:
		panic(fmt.Sprintf("pack: Format: expected an integer argument, got %T", v))
	}
}

func (a *assembler) nextUint() uint64 {
	switch v := a.nextArg().(type) {
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	default:
		panic(fmt.Sprintf("pack: Format: expected an integer argument, got %T", v))
	}
}

func (a *assembler) nextFloat() float64 {
	switch v := a.nextArg().(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		panic(fmt.Sprintf("pack: Format: expected a float argument, got %T", v))
	}
}

func (a *assembler) nextBool() bool {
	switch v := a.nextArg().(type) {
	case bool:
		return v
	default:
		panic(fmt.Sprintf("pack: Format: expected a bool argument, got %T", v))
	}
}

func (a *assembler) nextString() string {
	switch v := a.nextArg().(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		panic(fmt.Sprintf("pack: Format: expected a string argument, got %T", v))
	}
}
