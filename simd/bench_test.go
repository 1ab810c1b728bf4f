package simd

import (
	"bytes"
	"fmt"
	"testing"
)

func BenchmarkIndexAny(b *testing.B) {
	set := SetOf('<', '>', '&')
	for _, size := range []int{16, 1024, 1 << 20} {
		haystack := bytes.Repeat([]byte{'a'}, size)
		haystack[size-1] = '&'
		for _, k := range Kernels() {
			b.Run(fmt.Sprintf("%s/%d", k.Name(), size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for i := 0; i < b.N; i++ {
					k.IndexAny(&set, set.Contains, haystack)
				}
			})
		}
	}
}

func BenchmarkIndex(b *testing.B) {
	needle := []byte("xyzzy")
	for _, size := range []int{64, 1 << 20} {
		haystack := bytes.Repeat([]byte{'a'}, size)
		copy(haystack[size-len(needle):], needle)
		for _, k := range Kernels() {
			b.Run(fmt.Sprintf("%s/%d", k.Name(), size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for i := 0; i < b.N; i++ {
					k.Index(haystack, needle)
				}
			})
		}
	}
}
