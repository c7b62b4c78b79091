package pack

import "testing"

func BenchmarkEncodeUint(b *testing.B) {
	buf := make([]byte, 9)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EncodeUint(buf, uint64(i))
	}
}

func BenchmarkDecodeUint(b *testing.B) {
	buf := make([]byte, 9)
	EncodeUint(buf, 0xdeadbeef)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeUint(buf)
	}
}

func BenchmarkNext(b *testing.B) {
	sz := SizeofArray(3) + SizeofUint(1) + SizeofStr(5) + SizeofArray(2) + SizeofUint(2) + SizeofUint(3)
	buf := make([]byte, sz)
	cur := EncodeArray(buf, 3)
	cur = EncodeUint(cur, 1)
	cur = EncodeStr(cur, "hello")
	cur = EncodeArray(cur, 2)
	cur = EncodeUint(cur, 2)
	EncodeUint(cur, 3)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Next(buf)
	}
}

func BenchmarkCompareUint(b *testing.B) {
	x := make([]byte, 9)
	y := make([]byte, 9)
	EncodeUint(x, 123456)
	EncodeUint(y, 123457)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		CompareUint(x, y)
	}
}
