package pack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFprintScalars(t *testing.T) {
	cases := []struct {
		build func() []byte
		want  string
	}{
		{func() []byte { b := make([]byte, SizeofNil()); EncodeNil(b); return b }, "null"},
		{func() []byte { b := make([]byte, SizeofBool(true)); EncodeBool(b, true); return b }, "true"},
		{func() []byte { b := make([]byte, SizeofBool(false)); EncodeBool(b, false); return b }, "false"},
		{func() []byte { b := make([]byte, SizeofUint(10)); EncodeUint(b, 10); return b }, "10"},
		{func() []byte { b := make([]byte, SizeofInt(-5)); EncodeInt(b, -5); return b }, "-5"},
	}

	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, Fprint(&buf, c.build()))
		require.Equal(t, c.want, buf.String())
	}
}

func TestFprintEmptyArray(t *testing.T) {
	b := make([]byte, SizeofArray(0))
	EncodeArray(b, 0)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))
	require.Equal(t, "[]", buf.String())
}

func TestFprintNestedArray(t *testing.T) {
	sz := SizeofArray(2) + SizeofUint(10) + SizeofUint(15)
	b := make([]byte, sz)
	cur := EncodeArray(b, 2)
	cur = EncodeUint(cur, 10)
	EncodeUint(cur, 15)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))
	require.Equal(t, "[10, 15]", buf.String())
}

func TestFprintMap(t *testing.T) {
	sz := SizeofMap(1) + SizeofUint(1) + SizeofStr(2)
	b := make([]byte, sz)
	cur := EncodeMap(b, 1)
	cur = EncodeUint(cur, 1)
	EncodeStr(cur, "ok")

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))
	require.Equal(t, `{1: "ok"}`, buf.String())
}

func TestFprintEscapesControlBytesAndSlash(t *testing.T) {
	s := "\x00/"
	b := make([]byte, SizeofStr(uint32(len(s))))
	EncodeStr(b, s)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))
	require.Equal(t, `"\u0000\/"`, buf.String())
}

func TestFprintExtRendersLiteralAndSkipsPayload(t *testing.T) {
	sz := SizeofArray(2) + SizeofExt(2) + SizeofUint(1)
	b := make([]byte, sz)
	cur := EncodeArray(b, 2)
	cur = EncodeExt(cur, 9, []byte{0xde, 0xad})
	EncodeUint(cur, 1)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))
	require.Equal(t, "[undefined, 1]", buf.String())
}

func TestPrinterWithOptions(t *testing.T) {
	s := "a/b"
	b := make([]byte, SizeofStr(uint32(len(s))))
	EncodeStr(b, s)

	p := NewPrinter(WithEscapeSlash(false), WithExtLiteral("ext"))
	var buf bytes.Buffer
	require.NoError(t, p.Fprint(&buf, b))
	require.Equal(t, `"a/b"`, buf.String())
}

func TestSprintMatchesFprint(t *testing.T) {
	sz := SizeofArray(2) + SizeofUint(1) + SizeofBool(true)
	b := make([]byte, sz)
	cur := EncodeArray(b, 2)
	cur = EncodeUint(cur, 1)
	EncodeBool(cur, true)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, b))

	s, err := Sprint(b)
	require.NoError(t, err)
	require.Equal(t, buf.String(), s)
}
