//go:build amd64 && !amd64.v2 && !purego

package simd

import "golang.org/x/sys/cpu"

const mode = ModeRuntime

// hasSSE42 is filled in by golang.org/x/sys/cpu during package
// initialization and never changes afterwards.
var hasSSE42 = cpu.X86.HasSSE42

func accelerated() bool {
	return hasSSE42
}
