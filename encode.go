package pack

import "github.com/arloliu/packcodec/internal/endian"

// EncodeNil writes a nil value and returns dst advanced past it.
func EncodeNil(dst []byte) []byte {
	dst[0] = markerNil
	return dst[1:]
}

// EncodeBool writes a bool value and returns dst advanced past it.
func EncodeBool(dst []byte, v bool) []byte {
	if v {
		dst[0] = markerTrue
	} else {
		dst[0] = markerFalse
	}
	return dst[1:]
}

// EncodeUint writes num using the narrowest canonical unsigned-integer
// encoding and returns dst advanced past it.
func EncodeUint(dst []byte, num uint64) []byte {
	switch {
	case num <= markerPosFixintMax:
		return endian.PutUint8(dst, uint8(num))
	case num <= 0xff:
		dst = endian.PutUint8(dst, markerUint8)
		return endian.PutUint8(dst, uint8(num))
	case num <= 0xffff:
		dst = endian.PutUint8(dst, markerUint16)
		return endian.PutUint16(dst, uint16(num))
	case num <= 0xffffffff:
		dst = endian.PutUint8(dst, markerUint32)
		return endian.PutUint32(dst, uint32(num))
	default:
		dst = endian.PutUint8(dst, markerUint64)
		return endian.PutUint64(dst, num)
	}
}

// EncodeInt writes num using the narrowest canonical signed-integer encoding
// and returns dst advanced past it.
//
// num must be strictly negative; a non-negative value belongs on the uint
// path (EncodeUint).
func EncodeInt(dst []byte, num int64) []byte {
	if num >= 0 {
		panic("pack: EncodeInt called with a non-negative value, use EncodeUint")
	}

	switch {
	case num >= -0x20:
		return endian.PutUint8(dst, uint8(int8(num)))
	case num >= -0x80:
		dst = endian.PutUint8(dst, markerInt8)
		return endian.PutUint8(dst, uint8(int8(num)))
	case num >= -0x8000:
		dst = endian.PutUint8(dst, markerInt16)
		return endian.PutUint16(dst, uint16(int16(num)))
	case num >= -0x80000000:
		dst = endian.PutUint8(dst, markerInt32)
		return endian.PutUint32(dst, uint32(int32(num)))
	default:
		dst = endian.PutUint8(dst, markerInt64)
		return endian.PutUint64(dst, uint64(num))
	}
}

// EncodeFloat writes a 32-bit float and returns dst advanced past it.
func EncodeFloat(dst []byte, v float32) []byte {
	dst = endian.PutUint8(dst, markerFloat)
	return endian.PutFloat32(dst, v)
}

// EncodeDouble writes a 64-bit float and returns dst advanced past it.
func EncodeDouble(dst []byte, v float64) []byte {
	dst = endian.PutUint8(dst, markerDouble)
	return endian.PutFloat64(dst, v)
}

// EncodeStrl writes only a string length header for a string of length l
// and returns dst advanced past the header; the payload is the caller's
// responsibility (e.g. via append or copy).
func EncodeStrl(dst []byte, l uint32) []byte {
	switch {
	case l <= 31:
		return endian.PutUint8(dst, markerFixstrBase|uint8(l))
	case l <= 0xff:
		dst = endian.PutUint8(dst, markerStr8)
		return endian.PutUint8(dst, uint8(l))
	case l <= 0xffff:
		dst = endian.PutUint8(dst, markerStr16)
		return endian.PutUint16(dst, uint16(l))
	default:
		dst = endian.PutUint8(dst, markerStr32)
		return endian.PutUint32(dst, l)
	}
}

// EncodeStr writes a string header followed by its payload and returns dst
// advanced past both.
func EncodeStr(dst []byte, s string) []byte {
	dst = EncodeStrl(dst, uint32(len(s)))
	n := copy(dst, s)
	return dst[n:]
}

// EncodeBinl writes only a binary length header for a blob of length l and
// returns dst advanced past the header.
func EncodeBinl(dst []byte, l uint32) []byte {
	switch {
	case l <= 0xff:
		dst = endian.PutUint8(dst, markerBin8)
		return endian.PutUint8(dst, uint8(l))
	case l <= 0xffff:
		dst = endian.PutUint8(dst, markerBin16)
		return endian.PutUint16(dst, uint16(l))
	default:
		dst = endian.PutUint8(dst, markerBin32)
		return endian.PutUint32(dst, l)
	}
}

// EncodeBin writes a binary header followed by its payload and returns dst
// advanced past both.
func EncodeBin(dst []byte, b []byte) []byte {
	dst = EncodeBinl(dst, uint32(len(b)))
	n := copy(dst, b)
	return dst[n:]
}

// EncodeArray writes an array header announcing size elements and returns
// dst advanced past the header; the caller encodes the elements themselves.
func EncodeArray(dst []byte, size uint32) []byte {
	switch {
	case size <= 15:
		return endian.PutUint8(dst, markerFixarrayBase|uint8(size))
	case size <= 0xffff:
		dst = endian.PutUint8(dst, markerArray16)
		return endian.PutUint16(dst, uint16(size))
	default:
		dst = endian.PutUint8(dst, markerArray32)
		return endian.PutUint32(dst, size)
	}
}

// EncodeMap writes a map header announcing size key/value pairs and returns
// dst advanced past the header.
func EncodeMap(dst []byte, size uint32) []byte {
	switch {
	case size <= 15:
		return endian.PutUint8(dst, markerFixmapBase|uint8(size))
	case size <= 0xffff:
		dst = endian.PutUint8(dst, markerMap16)
		return endian.PutUint16(dst, uint16(size))
	default:
		dst = endian.PutUint8(dst, markerMap32)
		return endian.PutUint32(dst, size)
	}
}

// EncodeExt writes an extension value of application-defined typeCode with
// the given payload, choosing the narrowest fixext family when payload's
// length is 1, 2, 4, 8 or 16 bytes, and returns dst advanced past it.
func EncodeExt(dst []byte, typeCode int8, payload []byte) []byte {
	l := uint32(len(payload))

	switch l {
	case 1:
		dst = endian.PutUint8(dst, markerFixext1)
	case 2:
		dst = endian.PutUint8(dst, markerFixext2)
	case 4:
		dst = endian.PutUint8(dst, markerFixext4)
	case 8:
		dst = endian.PutUint8(dst, markerFixext8)
	case 16:
		dst = endian.PutUint8(dst, markerFixext16)
	default:
		switch {
		case l <= 0xff:
			dst = endian.PutUint8(dst, markerExt8)
			dst = endian.PutUint8(dst, uint8(l))
		case l <= 0xffff:
			dst = endian.PutUint8(dst, markerExt16)
			dst = endian.PutUint16(dst, uint16(l))
		default:
			dst = endian.PutUint8(dst, markerExt32)
			dst = endian.PutUint32(dst, l)
		}
	}

	dst = endian.PutUint8(dst, uint8(typeCode))
	n := copy(dst, payload)
	return dst[n:]
}
