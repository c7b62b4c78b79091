package pack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNilBool(t *testing.T) {
	buf := make([]byte, SizeofNil())
	EncodeNil(buf)
	require.Equal(t, []byte{markerNil}, buf)
	rest := DecodeNil(buf)
	require.Empty(t, rest)

	buf = make([]byte, SizeofBool(true))
	EncodeBool(buf, true)
	v, rest := DecodeBool(buf)
	require.True(t, v)
	require.Empty(t, rest)

	EncodeBool(buf, false)
	v, rest = DecodeBool(buf)
	require.False(t, v)
	require.Empty(t, rest)
}

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x100, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0)}
	for _, v := range values {
		buf := make([]byte, SizeofUint(v))
		rest := EncodeUint(buf, v)
		require.Empty(t, rest)

		got, rest := DecodeUint(buf)
		require.Equal(t, v, got)
		require.Empty(t, rest)
	}
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	values := []int64{-1, -32, -33, -128, -129, -32768, -32769, -2147483648, -2147483649, -9223372036854775808}
	for _, v := range values {
		buf := make([]byte, SizeofInt(v))
		rest := EncodeInt(buf, v)
		require.Empty(t, rest)

		got, rest := DecodeInt(buf)
		require.Equal(t, v, got)
		require.Empty(t, rest)
	}
}

func TestEncodeIntPanicsOnNonNegative(t *testing.T) {
	buf := make([]byte, 9)
	require.Panics(t, func() { EncodeInt(buf, 0) })
}

func TestEncodeDecodeFloatDouble(t *testing.T) {
	buf := make([]byte, SizeofFloat(0))
	EncodeFloat(buf, 3.5)
	v, rest := DecodeFloat(buf)
	require.Equal(t, float32(3.5), v)
	require.Empty(t, rest)

	buf = make([]byte, SizeofDouble(0))
	EncodeDouble(buf, 3.5)
	d, rest := DecodeDouble(buf)
	require.Equal(t, 3.5, d)
	require.Empty(t, rest)
}

func TestEncodeDecodeStrBoundary(t *testing.T) {
	s31 := string(make([]byte, 31))
	s32 := string(make([]byte, 32))

	buf := make([]byte, SizeofStr(uint32(len(s31))))
	EncodeStr(buf, s31)
	require.Equal(t, byte(markerFixstrBase|31), buf[0])

	buf = make([]byte, SizeofStr(uint32(len(s32))))
	EncodeStr(buf, s32)
	require.Equal(t, byte(markerStr8), buf[0])

	got, rest := DecodeStr(buf)
	require.Equal(t, s32, got)
	require.Empty(t, rest)
}

func TestEncodeDecodeBin(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	buf := make([]byte, SizeofBin(uint32(len(data))))
	EncodeBin(buf, data)
	require.Equal(t, byte(markerBin8), buf[0])

	got, rest := DecodeBin(buf)
	require.Equal(t, data, got)
	require.Empty(t, rest)
}

func TestEncodeDecodeArrayMapHeader(t *testing.T) {
	buf := make([]byte, SizeofArray(15))
	EncodeArray(buf, 15)
	n, rest := DecodeArray(buf)
	require.Equal(t, uint32(15), n)
	require.Empty(t, rest)

	buf = make([]byte, SizeofArray(16))
	EncodeArray(buf, 16)
	require.Equal(t, byte(markerArray16), buf[0])
	n, rest = DecodeArray(buf)
	require.Equal(t, uint32(16), n)
	require.Empty(t, rest)

	buf = make([]byte, SizeofMap(15))
	EncodeMap(buf, 15)
	n, rest = DecodeMap(buf)
	require.Equal(t, uint32(15), n)
	require.Empty(t, rest)

	buf = make([]byte, SizeofMap(16))
	EncodeMap(buf, 16)
	require.Equal(t, byte(markerMap16), buf[0])
	n, rest = DecodeMap(buf)
	require.Equal(t, uint32(16), n)
	require.Empty(t, rest)
}

func TestEncodeDecodeEmptyArray(t *testing.T) {
	buf := make([]byte, SizeofArray(0))
	EncodeArray(buf, 0)
	require.Equal(t, byte(markerFixarrayBase), buf[0])
	n, rest := DecodeArray(buf)
	require.Equal(t, uint32(0), n)
	require.Empty(t, rest)
}

func TestEncodeDecodeNestedArray(t *testing.T) {
	// [ [1, 2], 3 ]
	sz := SizeofArray(2) + SizeofArray(2) + SizeofUint(1) + SizeofUint(2) + SizeofUint(3)
	buf := make([]byte, sz)
	cur := EncodeArray(buf, 2)
	cur = EncodeArray(cur, 2)
	cur = EncodeUint(cur, 1)
	cur = EncodeUint(cur, 2)
	cur = EncodeUint(cur, 3)
	require.Empty(t, cur)

	n, cur := DecodeArray(buf)
	require.Equal(t, uint32(2), n)
	inner, cur := DecodeArray(cur)
	require.Equal(t, uint32(2), inner)
	a, cur := DecodeUint(cur)
	require.Equal(t, uint64(1), a)
	b, cur := DecodeUint(cur)
	require.Equal(t, uint64(2), b)
	c, cur := DecodeUint(cur)
	require.Equal(t, uint64(3), c)
	require.Empty(t, cur)
}

func TestEncodeDecodeExtFixAndVariable(t *testing.T) {
	for _, l := range []int{1, 2, 4, 8, 16, 3, 0xff, 0x100, 0x10000} {
		payload := make([]byte, l)
		for i := range payload {
			payload[i] = byte(i)
		}
		buf := make([]byte, SizeofExt(uint32(l)))
		EncodeExt(buf, 7, payload)

		tc, got, rest := DecodeExt(buf)
		require.Equal(t, int8(7), tc)
		require.Equal(t, payload, got)
		require.Empty(t, rest)
	}
}

func TestDecodeStrBinAcceptsBothFamilies(t *testing.T) {
	strBuf := make([]byte, SizeofStr(3))
	EncodeStr(strBuf, "abc")
	got, rest := DecodeStrBin(strBuf)
	require.Equal(t, []byte("abc"), got)
	require.Empty(t, rest)

	binBuf := make([]byte, SizeofBin(3))
	EncodeBin(binBuf, []byte("xyz"))
	got, rest = DecodeStrBin(binBuf)
	require.Equal(t, []byte("xyz"), got)
	require.Empty(t, rest)
}

func TestDecodeBinRejectsStrMarker(t *testing.T) {
	strBuf := make([]byte, SizeofStr(3))
	EncodeStr(strBuf, "abc")
	require.Panics(t, func() { DecodeBin(strBuf) })
}
