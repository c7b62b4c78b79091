package pack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareUint(t *testing.T) {
	values := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x100, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0)}

	encoded := make([][]byte, len(values))
	for i, v := range values {
		buf := make([]byte, SizeofUint(v))
		EncodeUint(buf, v)
		encoded[i] = buf
	}

	for i := range values {
		for j := range values {
			got := CompareUint(encoded[i], encoded[j])
			switch {
			case values[i] < values[j]:
				require.Equal(t, -1, got, "want %d < %d", values[i], values[j])
			case values[i] > values[j]:
				require.Equal(t, 1, got, "want %d > %d", values[i], values[j])
			default:
				require.Equal(t, 0, got, "want %d == %d", values[i], values[j])
			}
		}
	}
}
