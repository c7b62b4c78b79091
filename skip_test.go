package pack

import (
	"errors"
	"testing"

	"github.com/arloliu/packcodec/errs"
	"github.com/stretchr/testify/require"
)

func buildNestedValue(t *testing.T) []byte {
	t.Helper()
	// [ 1, "ab", [2, 3], {4: 5} ]
	sz := SizeofArray(4) +
		SizeofUint(1) +
		SizeofStr(2) +
		SizeofArray(2) + SizeofUint(2) + SizeofUint(3) +
		SizeofMap(1) + SizeofUint(4) + SizeofUint(5)
	buf := make([]byte, sz)
	cur := EncodeArray(buf, 4)
	cur = EncodeUint(cur, 1)
	cur = EncodeStr(cur, "ab")
	cur = EncodeArray(cur, 2)
	cur = EncodeUint(cur, 2)
	cur = EncodeUint(cur, 3)
	cur = EncodeMap(cur, 1)
	cur = EncodeUint(cur, 4)
	cur = EncodeUint(cur, 5)
	require.Empty(t, cur)
	return buf
}

func TestNextSkipsEmptyArray(t *testing.T) {
	buf := make([]byte, SizeofArray(0))
	EncodeArray(buf, 0)
	rest := Next(buf)
	require.Empty(t, rest)
}

func TestNextSkipsNestedValue(t *testing.T) {
	buf := buildNestedValue(t)
	rest := Next(buf)
	require.Empty(t, rest)
}

func TestNextStopsAtValueBoundary(t *testing.T) {
	one := buildNestedValue(t)
	two := make([]byte, SizeofUint(7))
	EncodeUint(two, 7)
	buf := append(append([]byte{}, one...), two...)

	rest := Next(buf)
	require.Equal(t, two, rest)
}

func TestCheckValidNestedValue(t *testing.T) {
	buf := buildNestedValue(t)
	rest, err := Check(buf)
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestCheckTruncatedReturnsError(t *testing.T) {
	buf := buildNestedValue(t)
	for i := 1; i < len(buf); i++ {
		_, err := Check(buf[:i])
		require.Error(t, err, "truncation at %d bytes should fail", i)
		require.True(t, errors.Is(err, errs.ErrTruncated) || errors.Is(err, errs.ErrCorrupt))
	}
}

func TestCheckMap16TruncatedCountIsActionableError(t *testing.T) {
	buf := make([]byte, SizeofMap(16))
	EncodeMap(buf, 16)
	// keep only the map16 marker, drop the 2-byte count field
	_, err := Check(buf[:1])
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrTruncated))
}
