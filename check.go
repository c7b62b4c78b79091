package pack

import "github.com/arloliu/packcodec/internal/endian"

// The CheckXxx family bounds-check a single header (and, for the
// fixed-size leaf types, its payload) against a byte slice of unknown but
// bounded length, without decoding anything. Each returns the number of
// additional bytes still required: a result <= 0 means data already holds
// enough bytes for this field; a positive result names the shortfall, so a
// streaming reader knows exactly how many more bytes to wait for before
// calling again.
//
// These never panic on short input — that is the point of using them ahead
// of the unchecked DecodeXxx/EncodeXxx calls when data arrives incrementally
// (e.g. from a network socket).

func need(have, want int) int {
	return want - have
}

// CheckNil reports the shortfall for a nil value.
func CheckNil(data []byte) int { return need(len(data), 1) }

// CheckBool reports the shortfall for a bool value.
func CheckBool(data []byte) int { return need(len(data), 1) }

// CheckFloat reports the shortfall for a 32-bit float value.
func CheckFloat(data []byte) int { return need(len(data), 5) }

// CheckDouble reports the shortfall for a 64-bit float value.
func CheckDouble(data []byte) int { return need(len(data), 9) }

// CheckUint reports the shortfall for a canonically-encoded unsigned
// integer of any width.
func CheckUint(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; {
	case c <= markerPosFixintMax:
		return need(len(data), 1)
	case c == markerUint8:
		return need(len(data), 2)
	case c == markerUint16:
		return need(len(data), 3)
	case c == markerUint32:
		return need(len(data), 5)
	case c == markerUint64:
		return need(len(data), 9)
	default:
		return need(len(data), 1) // not a uint marker; caller decides how to treat it
	}
}

// CheckInt reports the shortfall for a canonically-encoded signed integer
// of any width.
func CheckInt(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; {
	case c >= markerNegFixintBase:
		return need(len(data), 1)
	case c == markerInt8:
		return need(len(data), 2)
	case c == markerInt16:
		return need(len(data), 3)
	case c == markerInt32:
		return need(len(data), 5)
	case c == markerInt64:
		return need(len(data), 9)
	default:
		return need(len(data), 1)
	}
}

// CheckStrl reports the shortfall for a string length header only (not its
// payload).
func CheckStrl(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; {
	case c&0xe0 == markerFixstrBase:
		return need(len(data), 1)
	case c == markerStr8:
		return need(len(data), 2)
	case c == markerStr16:
		return need(len(data), 3)
	case c == markerStr32:
		return need(len(data), 5)
	default:
		return need(len(data), 1)
	}
}

// CheckStr reports the shortfall for a complete string value, header and
// payload included.
func CheckStr(data []byte) int {
	if shortfall := CheckStrl(data); shortfall > 0 {
		return shortfall
	}
	l, rest := DecodeStrl(data)
	return need(len(rest), int(l))
}

// CheckBinl reports the shortfall for a binary length header only.
func CheckBinl(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch data[0] {
	case markerBin8:
		return need(len(data), 2)
	case markerBin16:
		return need(len(data), 3)
	case markerBin32:
		return need(len(data), 5)
	default:
		return need(len(data), 1)
	}
}

// CheckBin reports the shortfall for a complete binary value, header and
// payload included.
func CheckBin(data []byte) int {
	if shortfall := CheckBinl(data); shortfall > 0 {
		return shortfall
	}
	l, rest := DecodeBinl(data)
	return need(len(rest), int(l))
}

// CheckArray reports the shortfall for an array header only; the caller is
// responsible for checking each of its elements separately.
func CheckArray(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; {
	case c >= markerFixarrayBase && c <= markerFixarrayBase|0x0f:
		return need(len(data), 1)
	case c == markerArray16:
		return need(len(data), 3)
	case c == markerArray32:
		return need(len(data), 5)
	default:
		return need(len(data), 1)
	}
}

// CheckMap reports the shortfall for a map header only. Note that the
// original C source returned a bare false (indistinguishable from "0 bytes
// short") on map16 truncation; this always returns a positive, actionable
// shortfall instead.
func CheckMap(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; {
	case c >= markerFixmapBase && c <= markerFixmapBase|0x0f:
		return need(len(data), 1)
	case c == markerMap16:
		return need(len(data), 3)
	case c == markerMap32:
		return need(len(data), 5)
	default:
		return need(len(data), 1)
	}
}

// CheckExtl reports the shortfall for an extension header only: marker, and
// for ext8/16/32 the explicit length field, and the type byte -- not the
// payload. For the fixext family the payload length follows from the
// marker alone, so its header is just marker and type byte.
func CheckExtl(data []byte) int {
	if len(data) < 1 {
		return need(len(data), 1)
	}
	switch c := data[0]; c {
	case markerFixext1, markerFixext2, markerFixext4, markerFixext8, markerFixext16:
		return need(len(data), 2)
	case markerExt8:
		return need(len(data), 3)
	case markerExt16:
		return need(len(data), 4)
	case markerExt32:
		return need(len(data), 6)
	default:
		return need(len(data), 1)
	}
}

// CheckExt reports the shortfall for a complete extension value, header,
// type byte and payload included.
func CheckExt(data []byte) int {
	if shortfall := CheckExtl(data); shortfall > 0 {
		return shortfall
	}

	switch c := data[0]; c {
	case markerFixext1:
		return need(len(data), 3)
	case markerFixext2:
		return need(len(data), 4)
	case markerFixext4:
		return need(len(data), 6)
	case markerFixext8:
		return need(len(data), 10)
	case markerFixext16:
		return need(len(data), 18)
	case markerExt8:
		return need(len(data), 3+int(data[1]))
	case markerExt16:
		l, _ := endian.GetUint16(data[1:3])
		return need(len(data), 4+int(l))
	case markerExt32:
		l, _ := endian.GetUint32(data[1:5])
		return need(len(data), 6+int(l))
	default:
		return need(len(data), 1)
	}
}
