package pack

// TypeOf returns the logical type encoded by first byte b of a pack value.
// It is a pure 256-entry table lookup and never fails: every possible byte
// value has an entry, including the reserved 0xc1 (classified as TypeExt).
func TypeOf(b byte) Type {
	return typeTable[b]
}
