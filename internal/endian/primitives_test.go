package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint16RoundTrip(t *testing.T) {
	buf := make([]byte, 2)
	rest := PutUint16(buf, 0xbeef)
	require.Empty(t, rest)

	got, rest := GetUint16(buf)
	require.Equal(t, uint16(0xbeef), got)
	require.Empty(t, rest)
}

func TestUint32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0xdeadbeef)
	got, rest := GetUint32(buf)
	require.Equal(t, uint32(0xdeadbeef), got)
	require.Empty(t, rest)
}

func TestUint64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutUint64(buf, 0x0102030405060708)
	got, rest := GetUint64(buf)
	require.Equal(t, uint64(0x0102030405060708), got)
	require.Empty(t, rest)
}

func TestFloat32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	PutFloat32(buf, 3.14159)
	got, rest := GetFloat32(buf)
	require.Equal(t, float32(3.14159), got)
	require.Empty(t, rest)
}

func TestFloat64RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutFloat64(buf, 2.718281828)
	got, rest := GetFloat64(buf)
	require.Equal(t, 2.718281828, got)
	require.Empty(t, rest)
}

func TestCursorAdvancesThroughBuffer(t *testing.T) {
	buf := make([]byte, 1+2+4)
	rest := PutUint8(buf, 0xff)
	rest = PutUint16(rest, 0x1234)
	rest = PutUint32(rest, 0x89abcdef)
	require.Empty(t, rest)

	v8, rest := GetUint8(buf)
	v16, rest := GetUint16(rest)
	v32, rest := GetUint32(rest)
	require.Equal(t, uint8(0xff), v8)
	require.Equal(t, uint16(0x1234), v16)
	require.Equal(t, uint32(0x89abcdef), v32)
	require.Empty(t, rest)
}
