//go:build !amd64 || purego

package simd

const mode = ModeNone

func accelerated() bool {
	return false
}
