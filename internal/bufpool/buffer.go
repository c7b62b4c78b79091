// Package bufpool provides a pooled, growable byte buffer used by the
// convenience (allocating) entry points of the format assembler and the
// pretty-printer, so repeated calls don't pay a fresh allocation each time.
package bufpool

import "sync"

// DefaultSize is the initial capacity of a Buffer obtained from the pool.
const DefaultSize = 512

// MaxRetainedSize is the capacity above which a Buffer is dropped instead of
// returned to the pool, to keep one oversized message from inflating the
// pool's steady-state memory use.
const MaxRetainedSize = 1 << 20 // 1MiB

// Buffer is a reusable, growable byte slice.
type Buffer struct {
	B []byte
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Reset empties the buffer while retaining its backing array.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow ensures the buffer can accept n more bytes without reallocating.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.B) > 4*DefaultSize {
		growBy = cap(b.B) / 4
	}

	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

// Extend grows the length of the buffer by n zero-valued bytes, reallocating
// if necessary, and returns the newly appended region for the caller to
// write into directly.
func (b *Buffer) Extend(n int) []byte {
	b.Grow(n)
	start := len(b.B)
	b.B = b.B[:start+n]

	return b.B[start : start+n]
}

// Write implements io.Writer, appending p to the buffer's contents.
func (b *Buffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

var pool = sync.Pool{
	New: func() any { return &Buffer{B: make([]byte, 0, DefaultSize)} },
}

// Get retrieves an empty Buffer from the pool.
func Get() *Buffer {
	buf, _ := pool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool for reuse. Buffers that grew past
// MaxRetainedSize are discarded rather than pooled.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > MaxRetainedSize {
		return
	}

	buf.Reset()
	pool.Put(buf)
}
