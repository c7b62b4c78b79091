package pack

import "github.com/arloliu/packcodec/internal/endian"

// DecodeNil consumes a nil value and returns src advanced past it. It
// panics if src does not begin with the nil marker.
func DecodeNil(src []byte) []byte {
	if src[0] != markerNil {
		panic("pack: DecodeNil: not a nil value")
	}
	return src[1:]
}

// DecodeBool decodes a bool value and returns it with src advanced past it.
// It panics if src does not begin with a bool marker.
func DecodeBool(src []byte) (bool, []byte) {
	switch src[0] {
	case markerTrue:
		return true, src[1:]
	case markerFalse:
		return false, src[1:]
	default:
		panic("pack: DecodeBool: not a bool value")
	}
}

// DecodeUint decodes an unsigned integer of any canonical width and returns
// it with src advanced past it. It panics if src does not begin with a
// uint-family marker.
func DecodeUint(src []byte) (uint64, []byte) {
	c := src[0]
	switch {
	case c <= markerPosFixintMax:
		return uint64(c), src[1:]
	case c == markerUint8:
		v, rest := endian.GetUint8(src[1:])
		return uint64(v), rest
	case c == markerUint16:
		v, rest := endian.GetUint16(src[1:])
		return uint64(v), rest
	case c == markerUint32:
		v, rest := endian.GetUint32(src[1:])
		return uint64(v), rest
	case c == markerUint64:
		return endian.GetUint64(src[1:])
	default:
		panic("pack: DecodeUint: not a uint value")
	}
}

// DecodeInt decodes a signed integer of any canonical width and returns it
// with src advanced past it. It panics if src does not begin with an
// int-family marker (including the negative-fixint range).
func DecodeInt(src []byte) (int64, []byte) {
	c := src[0]
	switch {
	case c >= markerNegFixintBase:
		return int64(int8(c)), src[1:]
	case c == markerInt8:
		v, rest := endian.GetUint8(src[1:])
		return int64(int8(v)), rest
	case c == markerInt16:
		v, rest := endian.GetUint16(src[1:])
		return int64(int16(v)), rest
	case c == markerInt32:
		v, rest := endian.GetUint32(src[1:])
		return int64(int32(v)), rest
	case c == markerInt64:
		v, rest := endian.GetUint64(src[1:])
		return int64(v), rest
	default:
		panic("pack: DecodeInt: not an int value")
	}
}

// DecodeFloat decodes a 32-bit float and returns it with src advanced past
// it. It panics if src does not begin with the float marker.
func DecodeFloat(src []byte) (float32, []byte) {
	if src[0] != markerFloat {
		panic("pack: DecodeFloat: not a float value")
	}
	return endian.GetFloat32(src[1:])
}

// DecodeDouble decodes a 64-bit float and returns it with src advanced past
// it. It panics if src does not begin with the double marker.
func DecodeDouble(src []byte) (float64, []byte) {
	if src[0] != markerDouble {
		panic("pack: DecodeDouble: not a double value")
	}
	return endian.GetFloat64(src[1:])
}

// DecodeStrl decodes only a string length header and returns the length
// with src advanced past the header (not the payload). It panics if src
// does not begin with a str-family marker.
func DecodeStrl(src []byte) (uint32, []byte) {
	c := src[0]
	switch {
	case c >= markerFixstrBase && c <= markerFixstrMax:
		return uint32(c & 0x1f), src[1:]
	case c == markerStr8:
		v, rest := endian.GetUint8(src[1:])
		return uint32(v), rest
	case c == markerStr16:
		v, rest := endian.GetUint16(src[1:])
		return uint32(v), rest
	case c == markerStr32:
		return endian.GetUint32(src[1:])
	default:
		panic("pack: DecodeStrl: not a str value")
	}
}

// DecodeStr decodes a string header and its payload, returning the string
// with src advanced past both.
func DecodeStr(src []byte) (string, []byte) {
	l, rest := DecodeStrl(src)
	s := string(rest[:l])
	return s, rest[l:]
}

// DecodeBinl decodes only a binary length header and returns the length
// with src advanced past the header (not the payload). It panics if src
// does not begin with a bin-family marker.
func DecodeBinl(src []byte) (uint32, []byte) {
	switch src[0] {
	case markerBin8:
		v, rest := endian.GetUint8(src[1:])
		return uint32(v), rest
	case markerBin16:
		v, rest := endian.GetUint16(src[1:])
		return uint32(v), rest
	case markerBin32:
		return endian.GetUint32(src[1:])
	default:
		panic("pack: DecodeBinl: not a bin value")
	}
}

// DecodeBin decodes a binary header and its payload, returning a slice
// aliasing src's backing array with src advanced past both. It does not
// accept str-family markers; use DecodeStrBin for a header that may be
// either family.
func DecodeBin(src []byte) ([]byte, []byte) {
	l, rest := DecodeBinl(src)
	return rest[:l], rest[l:]
}

// DecodeStrBinl decodes a length header from either the str family or the
// bin family — the two share identical wire semantics for everything but
// the marker byte — and returns the length with src advanced past the
// header.
func DecodeStrBinl(src []byte) (uint32, []byte) {
	c := src[0]
	if c == markerBin8 || c == markerBin16 || c == markerBin32 {
		return DecodeBinl(src)
	}
	return DecodeStrl(src)
}

// DecodeStrBin decodes a header from either the str or bin family together
// with its payload, returning the raw bytes with src advanced past both.
func DecodeStrBin(src []byte) ([]byte, []byte) {
	l, rest := DecodeStrBinl(src)
	return rest[:l], rest[l:]
}

// DecodeArray decodes an array header and returns its element count with
// src advanced past the header. It panics if src does not begin with an
// array-family marker.
func DecodeArray(src []byte) (uint32, []byte) {
	c := src[0]
	switch {
	case c >= markerFixarrayBase && c <= markerFixarrayBase|0x0f:
		return uint32(c & 0x0f), src[1:]
	case c == markerArray16:
		v, rest := endian.GetUint16(src[1:])
		return uint32(v), rest
	case c == markerArray32:
		return endian.GetUint32(src[1:])
	default:
		panic("pack: DecodeArray: not an array value")
	}
}

// DecodeMap decodes a map header and returns its key/value pair count with
// src advanced past the header. It panics if src does not begin with a
// map-family marker.
func DecodeMap(src []byte) (uint32, []byte) {
	c := src[0]
	switch {
	case c >= markerFixmapBase && c <= markerFixmapBase|0x0f:
		return uint32(c & 0x0f), src[1:]
	case c == markerMap16:
		v, rest := endian.GetUint16(src[1:])
		return uint32(v), rest
	case c == markerMap32:
		return endian.GetUint32(src[1:])
	default:
		panic("pack: DecodeMap: not a map value")
	}
}

// DecodeExt decodes an extension header, its application-defined type code
// and its payload, returning a payload slice aliasing src's backing array
// with src advanced past all three. It panics if src does not begin with
// an ext-family marker.
func DecodeExt(src []byte) (typeCode int8, payload []byte, rest []byte) {
	c := src[0]

	var l uint32
	var body []byte

	switch c {
	case markerFixext1:
		l, body = 1, src[1:]
	case markerFixext2:
		l, body = 2, src[1:]
	case markerFixext4:
		l, body = 4, src[1:]
	case markerFixext8:
		l, body = 8, src[1:]
	case markerFixext16:
		l, body = 16, src[1:]
	case markerExt8:
		v, r := endian.GetUint8(src[1:])
		l, body = uint32(v), r
	case markerExt16:
		v, r := endian.GetUint16(src[1:])
		l, body = uint32(v), r
	case markerExt32:
		v, r := endian.GetUint32(src[1:])
		l, body = v, r
	default:
		panic("pack: DecodeExt: not an ext value")
	}

	tc, body := endian.GetUint8(body)
	typeCode = int8(tc)
	payload = body[:l]
	rest = body[l:]
	return typeCode, payload, rest
}
