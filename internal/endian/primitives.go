// Package endian provides the fixed big-endian byte load/store primitives
// used by the pack wire codec.
//
// The pack format's wire byte order is not configurable (there is exactly
// one valid encoding of any value), so unlike a general-purpose byte-order
// package this one does not expose an engine or interface to swap orderings
// — it is a small set of cursor-style helpers over encoding/binary.BigEndian.
// Every function takes a byte slice positioned at the field to read or
// write and returns the slice advanced past that field, so callers chain
// calls without tracking an offset by hand.
package endian

import (
	"encoding/binary"
	"math"
)

// GetUint8 reads a single byte and returns it with the slice advanced by 1.
func GetUint8(src []byte) (uint8, []byte) {
	return src[0], src[1:]
}

// GetUint16 reads a big-endian uint16 and returns it with the slice advanced by 2.
func GetUint16(src []byte) (uint16, []byte) {
	return binary.BigEndian.Uint16(src), src[2:]
}

// GetUint32 reads a big-endian uint32 and returns it with the slice advanced by 4.
func GetUint32(src []byte) (uint32, []byte) {
	return binary.BigEndian.Uint32(src), src[4:]
}

// GetUint64 reads a big-endian uint64 and returns it with the slice advanced by 8.
func GetUint64(src []byte) (uint64, []byte) {
	return binary.BigEndian.Uint64(src), src[8:]
}

// GetFloat32 reads a big-endian IEEE-754 binary32 and returns it with the slice advanced by 4.
func GetFloat32(src []byte) (float32, []byte) {
	bits := binary.BigEndian.Uint32(src)
	return math.Float32frombits(bits), src[4:]
}

// GetFloat64 reads a big-endian IEEE-754 binary64 and returns it with the slice advanced by 8.
func GetFloat64(src []byte) (float64, []byte) {
	bits := binary.BigEndian.Uint64(src)
	return math.Float64frombits(bits), src[8:]
}

// PutUint8 writes a single byte and returns the slice advanced by 1.
func PutUint8(dst []byte, v uint8) []byte {
	dst[0] = v
	return dst[1:]
}

// PutUint16 writes a big-endian uint16 and returns the slice advanced by 2.
func PutUint16(dst []byte, v uint16) []byte {
	binary.BigEndian.PutUint16(dst, v)
	return dst[2:]
}

// PutUint32 writes a big-endian uint32 and returns the slice advanced by 4.
func PutUint32(dst []byte, v uint32) []byte {
	binary.BigEndian.PutUint32(dst, v)
	return dst[4:]
}

// PutUint64 writes a big-endian uint64 and returns the slice advanced by 8.
func PutUint64(dst []byte, v uint64) []byte {
	binary.BigEndian.PutUint64(dst, v)
	return dst[8:]
}

// PutFloat32 writes a big-endian IEEE-754 binary32 and returns the slice advanced by 4.
func PutFloat32(dst []byte, v float32) []byte {
	binary.BigEndian.PutUint32(dst, math.Float32bits(v))
	return dst[4:]
}

// PutFloat64 writes a big-endian IEEE-754 binary64 and returns the slice advanced by 8.
func PutFloat64(dst []byte, v float64) []byte {
	binary.BigEndian.PutUint64(dst, math.Float64bits(v))
	return dst[8:]
}
