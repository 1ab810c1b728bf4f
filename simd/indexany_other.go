//go:build !amd64 || purego

package simd

// indexAnySSE42 is never reached in this build: Accelerated is constant
// false and Kernels does not list the SSE4.2 kernel.
func indexAnySSE42(set *Set, haystack []byte) int {
	panic("simd: SSE4.2 kernel is not compiled into this build")
}
