// Package pack implements a single-package binary codec for a
// MessagePack-family wire format.
//
// The codec provides primitive encode/decode routines for eleven value
// types — nil, bool, unsigned and signed integers, 32- and 64-bit floats,
// UTF-8-opaque strings, binary blobs, array and map headers, and an opaque
// extension type — over caller-supplied byte slices. The EncodeXxx and
// DecodeXxx functions do not allocate, except DecodeStr, which copies the
// payload into a new Go string. The package does not build an in-memory
// value tree and does not manage buffer lifetime: every encoder writes into
// a slice the caller sized in
// advance (via the SizeofXxx family), and every decoder reads from a slice
// the caller already owns.
//
// # Core pieces
//
// TypeOf classifies the first byte of an encoded value in O(1) via a
// 256-entry table. Next and Check walk one complete (possibly nested) value
// without recursion, using a flat integer work counter — Next trusts its
// input, Check additionally validates against a supplied end bound and
// returns an error instead of corrupting memory on malformed input.
// CompareUint totally orders two canonically-encoded unsigned integers
// without fully decoding either one.
//
// Format assembles a structured value from a printf-style template string
// plus a variadic argument list, in one pass that is safe to call with a
// too-small (or nil) destination to discover the required size before
// retrying with a buffer of that size — the same two-call convention as
// Go's own append-free binary encoders.
//
// Fprint renders a decoded value as JSON-like text to an io.Writer.
//
// # Basic usage
//
//	buf := make([]byte, pack.SizeofArray(2)+pack.SizeofUint(10)+pack.SizeofUint(15))
//	rest := pack.EncodeArray(buf, 2)
//	rest = pack.EncodeUint(rest, 10)
//	pack.EncodeUint(rest, 15)
//
//	cur := buf
//	n, cur := pack.DecodeArray(cur)
//	for i := uint32(0); i < n; i++ {
//	    var v uint64
//	    v, cur = pack.DecodeUint(cur)
//	    _ = v
//	}
//
// Or, with the format assembler:
//
//	n := pack.Format(nil, "[%d %d]", 10, 15) // size-probe
//	buf := make([]byte, n)
//	pack.Format(buf, "[%d %d]", 10, 15)
//
// # Thread safety
//
// Every exported function is a pure function of its arguments operating on
// caller-owned memory; there is no shared mutable state, so the package is
// safe for concurrent use as long as callers don't share a destination
// slice across goroutines.
package pack
