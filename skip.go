package pack

import (
	"fmt"

	"github.com/arloliu/packcodec/errs"
	"github.com/arloliu/packcodec/internal/endian"
)

// Next skips exactly one complete, possibly nested, value and returns cur
// advanced past it. It trusts its input completely: it never bound-checks
// a read against len(cur), so a truncated or corrupt value produces a
// slice index panic rather than a graceful error. Use it only on data
// already known to be well-formed (e.g. data you encoded yourself, or data
// Check has already validated). Use Check for untrusted input.
//
// The walk is iterative rather than recursive: a single integer work
// counter k tracks how many more values remain to be consumed at the
// current nesting depth and below, so stack depth stays O(1) regardless of
// how deeply the input is nested.
func Next(cur []byte) []byte {
	k := 1
	for k > 0 {
		c := cur[0]
		hint := int(hintTable[c])

		switch {
		case hint >= 0:
			cur = cur[1+hint:]

		case hint > hintSentinel:
			// Fix-array/fix-map: hint is the negated child count.
			cur = cur[1:]
			k += -hint

		default:
			switch hint {
			case hintLen8:
				l := int(cur[1])
				cur = cur[2+l:]
			case hintLen16:
				l, _ := endian.GetUint16(cur[1:3])
				cur = cur[3+int(l):]
			case hintLen32:
				l, _ := endian.GetUint32(cur[1:5])
				cur = cur[5+int(l):]
			case hintArray16:
				n, _ := endian.GetUint16(cur[1:3])
				cur = cur[3:]
				k += int(n)
			case hintArray32:
				n, _ := endian.GetUint32(cur[1:5])
				cur = cur[5:]
				k += int(n)
			case hintMap16:
				n, _ := endian.GetUint16(cur[1:3])
				cur = cur[3:]
				k += 2 * int(n)
			case hintMap32:
				n, _ := endian.GetUint32(cur[1:5])
				cur = cur[5:]
				k += 2 * int(n)
			case hintExt8:
				l := int(cur[1])
				cur = cur[3+l:]
			case hintExt16:
				l, _ := endian.GetUint16(cur[1:3])
				cur = cur[4+int(l):]
			case hintExt32:
				l, _ := endian.GetUint32(cur[1:5])
				cur = cur[6+int(l):]
			default:
				panic(fmt.Sprintf("pack: Next: unreachable hint %d for byte %#x", hint, c))
			}
		}

		k--
	}
	return cur
}

// Check validates and skips exactly one complete, possibly nested, value,
// bound-checking every read against data. It returns data advanced past
// the value on success, or a wrapped errs.ErrTruncated if data ends before
// the value does.
//
// This replaces the original map16-shortfall path, which returned a bare
// false indistinguishable from "zero bytes short" — here a truncated
// map16 header always surfaces a proper, actionable error.
func Check(data []byte) ([]byte, error) {
	k := 1
	cur := data

	for k > 0 {
		if len(cur) < 1 {
			return nil, fmt.Errorf("%w: expected a value header", errs.ErrTruncated)
		}

		c := cur[0]
		hint := int(hintTable[c])

		switch {
		case hint >= 0:
			if len(cur) < 1+hint {
				return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncated, 1+hint, len(cur))
			}
			cur = cur[1+hint:]

		case hint > hintSentinel:
			cur = cur[1:]
			k += -hint

		default:
			switch hint {
			case hintLen8, hintExt8:
				if len(cur) < 2 {
					return nil, fmt.Errorf("%w: truncated length byte", errs.ErrTruncated)
				}
				l := int(cur[1])
				hdr := 2
				if hint == hintExt8 {
					hdr = 3
				}
				if len(cur) < hdr+l {
					return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncated, hdr+l, len(cur))
				}
				cur = cur[hdr+l:]

			case hintLen16, hintExt16:
				if len(cur) < 3 {
					return nil, fmt.Errorf("%w: truncated length field", errs.ErrTruncated)
				}
				l, _ := endian.GetUint16(cur[1:3])
				hdr := 3
				if hint == hintExt16 {
					hdr = 4
				}
				if len(cur) < hdr+int(l) {
					return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncated, hdr+int(l), len(cur))
				}
				cur = cur[hdr+int(l):]

			case hintLen32, hintExt32:
				if len(cur) < 5 {
					return nil, fmt.Errorf("%w: truncated length field", errs.ErrTruncated)
				}
				l, _ := endian.GetUint32(cur[1:5])
				hdr := 5
				if hint == hintExt32 {
					hdr = 6
				}
				if len(cur) < hdr+int(l) {
					return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncated, hdr+int(l), len(cur))
				}
				cur = cur[hdr+int(l):]

			case hintArray16, hintMap16:
				if len(cur) < 3 {
					return nil, fmt.Errorf("%w: truncated count field", errs.ErrTruncated)
				}
				n, _ := endian.GetUint16(cur[1:3])
				cur = cur[3:]
				if hint == hintMap16 {
					k += 2 * int(n)
				} else {
					k += int(n)
				}

			case hintArray32, hintMap32:
				if len(cur) < 5 {
					return nil, fmt.Errorf("%w: truncated count field", errs.ErrTruncated)
				}
				n, _ := endian.GetUint32(cur[1:5])
				cur = cur[5:]
				if hint == hintMap32 {
					k += 2 * int(n)
				} else {
					k += int(n)
				}

			default:
				return nil, fmt.Errorf("%w: unrecognized value header %#x", errs.ErrCorrupt, c)
			}
		}

		k--
	}

	return cur, nil
}
