// Package simd provides the block-scanning kernels behind bytescan's matchers.
//
// Two kernels implement every search: an SSE4.2 kernel that compares 16-byte
// windows with PCMPESTRI, and a portable kernel written in pure Go. Which one
// runs is decided by the dispatch gate:
//
//   - GOAMD64=v2 or higher: SSE4.2 is guaranteed, the SSE4.2 kernel always runs
//   - other GOARCH values, or the purego build tag: the portable kernel always runs
//   - GOAMD64=v1: the CPU is probed once at startup via golang.org/x/sys/cpu
//
// Both kernels return identical results for every input. The gate only
// changes how fast an answer is produced, never the answer.
package simd

// WindowSize is the number of haystack bytes compared per SSE4.2 step.
const WindowSize = 16

// Mode describes how the dispatch gate was resolved for this build.
type Mode uint8

const (
	// ModeNone means the accelerated kernel is not compiled in.
	ModeNone Mode = iota

	// ModeStatic means the target guarantees SSE4.2; no probe is needed.
	ModeStatic

	// ModeRuntime means the accelerated kernel is compiled in and selected
	// by a CPU feature probe.
	ModeRuntime
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeStatic:
		return "static"
	case ModeRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// CurrentMode reports the dispatch gate state of this build.
func CurrentMode() Mode {
	return mode
}

// Accelerated reports whether searches use the SSE4.2 kernel.
//
// This is the single branch point every matcher consults. In ModeStatic and
// ModeNone builds it is a constant and the untaken path is compiled away.
func Accelerated() bool {
	return accelerated()
}
