package pack

// CompareUint totally orders two canonically-encoded unsigned integers
// without fully decoding either one: it first orders by encoded width
// (which, for canonical encodings, always orders the same as the decoded
// value) and only falls back to a byte-wise comparison of the payloads when
// the widths match. It panics if either input does not begin with a
// uint-family marker.
func CompareUint(a, b []byte) int {
	aw := uintWidth(a[0])
	bw := uintWidth(b[0])

	if aw != bw {
		if aw < bw {
			return -1
		}
		return 1
	}

	if aw == 0 {
		// Both fixint: the value lives in the marker byte itself.
		switch {
		case a[0] < b[0]:
			return -1
		case a[0] > b[0]:
			return 1
		default:
			return 0
		}
	}

	// Same width: compare the raw big-endian payload bytes lexicographically,
	// which is equivalent to numeric comparison at equal width.
	ah := uintHeaderLen(a[0])
	bh := uintHeaderLen(b[0])

	ap := a[ah : ah+aw]
	bp := b[bh : bh+bw]

	for i := 0; i < aw; i++ {
		if ap[i] != bp[i] {
			if ap[i] < bp[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// uintWidth returns the number of payload bytes carried by a uint-family
// value (0 for fixint, whose value lives in the marker byte itself).
func uintWidth(c byte) int {
	switch {
	case c <= markerPosFixintMax:
		return 0
	case c == markerUint8:
		return 1
	case c == markerUint16:
		return 2
	case c == markerUint32:
		return 4
	case c == markerUint64:
		return 8
	default:
		panic("pack: CompareUint: not a uint value")
	}
}

// uintHeaderLen returns the number of marker bytes preceding the payload.
func uintHeaderLen(c byte) int {
	if c <= markerPosFixintMax {
		return 0
	}
	return 1
}
