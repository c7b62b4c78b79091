package pack

// SizeofNil returns the encoded size of a nil value: always 1.
func SizeofNil() int { return 1 }

// SizeofBool returns the encoded size of a bool value: always 1.
func SizeofBool(bool) int { return 1 }

// SizeofUint returns the exact number of bytes needed to encode num as a
// canonical unsigned integer (1 to 9 bytes).
func SizeofUint(num uint64) int {
	switch {
	case num <= 0x7f:
		return 1
	case num <= 0xff:
		return 2
	case num <= 0xffff:
		return 3
	case num <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// SizeofInt returns the exact number of bytes needed to encode num as a
// canonical signed integer (1 to 9 bytes).
//
// num must be strictly negative; non-negative values belong on the uint
// path (SizeofUint/EncodeUint).
func SizeofInt(num int64) int {
	if num >= 0 {
		panic("pack: SizeofInt called with a non-negative value, use SizeofUint")
	}

	switch {
	case num >= -0x20:
		return 1
	case num >= -0x80:
		return 2
	case num >= -0x8000:
		return 3
	case num >= -0x80000000:
		return 5
	default:
		return 9
	}
}

// SizeofFloat returns the encoded size of a float32 value: always 5.
func SizeofFloat(float32) int { return 5 }

// SizeofDouble returns the encoded size of a float64 value: always 9.
func SizeofDouble(float64) int { return 9 }

// SizeofStrl returns the number of bytes needed to encode a string length
// header for a string of length l (1 to 5 bytes).
func SizeofStrl(l uint32) int {
	switch {
	case l <= 31:
		return 1
	case l <= 0xff:
		return 2
	case l <= 0xffff:
		return 3
	default:
		return 5
	}
}

// SizeofStr returns the total encoded size (header + payload) of a string
// of length l.
func SizeofStr(l uint32) int {
	return SizeofStrl(l) + int(l)
}

// SizeofBinl returns the number of bytes needed to encode a binary length
// header for a blob of length l (2 to 5 bytes). Unlike str, bin has no
// single-byte fix family.
func SizeofBinl(l uint32) int {
	switch {
	case l <= 0xff:
		return 2
	case l <= 0xffff:
		return 3
	default:
		return 5
	}
}

// SizeofBin returns the total encoded size (header + payload) of a binary
// blob of length l.
func SizeofBin(l uint32) int {
	return SizeofBinl(l) + int(l)
}

// SizeofArray returns the number of bytes needed to encode an array header
// of size elements (1 to 5 bytes).
func SizeofArray(size uint32) int {
	switch {
	case size <= 15:
		return 1
	case size <= 0xffff:
		return 3
	default:
		return 5
	}
}

// SizeofMap returns the number of bytes needed to encode a map header of
// size key/value pairs (1 to 5 bytes).
func SizeofMap(size uint32) int {
	switch {
	case size <= 15:
		return 1
	case size <= 0xffff:
		return 3
	default:
		return 5
	}
}

// SizeofExt returns the total encoded size (header + type byte + payload)
// of an extension value carrying l payload bytes.
func SizeofExt(l uint32) int {
	switch l {
	case 1, 2, 4, 8, 16:
		return 2 + int(l) // fixext: 1 header byte + 1 type byte + payload
	}

	switch {
	case l <= 0xff:
		return 3 + int(l)
	case l <= 0xffff:
		return 4 + int(l)
	default:
		return 6 + int(l)
	}
}
