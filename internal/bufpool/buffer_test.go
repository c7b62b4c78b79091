package bufpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferExtendWritesIntoBackingArray(t *testing.T) {
	buf := Get()
	defer Put(buf)

	region := buf.Extend(4)
	copy(region, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{1, 2, 3, 4}, buf.Bytes())
}

func TestBufferGrowBeyondDefaultSize(t *testing.T) {
	buf := &Buffer{}
	region := buf.Extend(DefaultSize * 5)
	require.Len(t, region, DefaultSize*5)
	require.GreaterOrEqual(t, cap(buf.B), DefaultSize*5)
}

func TestBufferWriteImplementsIOWriter(t *testing.T) {
	buf := &Buffer{}
	n, err := buf.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = buf.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	require.Equal(t, "hello world", string(buf.Bytes()))
}

func TestPutDiscardsOversizedBuffers(t *testing.T) {
	buf := &Buffer{B: make([]byte, 0, MaxRetainedSize+1)}
	Put(buf) // must not panic; buffer is simply dropped

	fresh := Get()
	require.LessOrEqual(t, cap(fresh.B), MaxRetainedSize)
	Put(fresh)
}
