package simd

import "bytes"

// Kernel is one implementation of the search primitives. There are exactly
// two: the SSE4.2 kernel and the portable kernel. Matchers do not call
// through this interface on their hot path; they branch on Accelerated and
// call the package functions directly. Kernel exists so both paths can be
// driven side by side.
type Kernel interface {
	// Name identifies the kernel ("sse4.2" or "portable").
	Name() string

	// IndexAny returns the index of the first byte of haystack that belongs
	// to the set, or -1. The SSE4.2 kernel reads set and ignores match; the
	// portable kernel calls match and ignores set. Callers must pass a
	// predicate that agrees with the set.
	IndexAny(set *Set, match func(byte) bool, haystack []byte) int

	// Index returns the index of the first occurrence of needle in haystack,
	// or -1. An empty needle matches at 0.
	Index(haystack, needle []byte) int
}

type sse42Kernel struct{}

func (sse42Kernel) Name() string { return "sse4.2" }

func (sse42Kernel) IndexAny(set *Set, _ func(byte) bool, haystack []byte) int {
	return indexAnySSE42(set, haystack)
}

func (sse42Kernel) Index(haystack, needle []byte) int {
	return indexSSE42(haystack, needle)
}

type portableKernel struct{}

func (portableKernel) Name() string { return "portable" }

func (portableKernel) IndexAny(_ *Set, match func(byte) bool, haystack []byte) int {
	return IndexAnyFunc(haystack, match)
}

func (portableKernel) Index(haystack, needle []byte) int {
	return Memmem(haystack, needle)
}

// Portable is the pure Go kernel. It is available in every build.
var Portable Kernel = portableKernel{}

// Kernels returns the kernels usable by this process, portable first.
func Kernels() []Kernel {
	if Accelerated() {
		return []Kernel{Portable, sse42Kernel{}}
	}
	return []Kernel{Portable}
}

// Select returns the kernel the dispatch gate picks.
func Select() Kernel {
	if Accelerated() {
		return sse42Kernel{}
	}
	return Portable
}

// IndexAny returns the index of the first byte of haystack in set, or -1,
// using the SSE4.2 kernel. It must only be called when Accelerated reports
// true.
//
// Algorithm:
//
// The set is loaded once into an XMM register and compared against the
// haystack 16 bytes at a time with PCMPESTRI in "equal any" mode:
//  1. Whole 16-byte windows are read directly from haystack
//  2. PCMPESTRI returns the index of the first window byte equal to any of
//     the first Len() set bytes, or 16 when none is
//  3. The trailing partial window is copied into a zeroed stack buffer and
//     compared with its length clamped to the remaining bytes
//
// Step 3 keeps every load inside the haystack and stops the zero padding
// from matching a 0x00 member of the set. Filler bytes of the set past
// Len() never take part.
//
// Performance characteristics:
//   - One PCMPESTRI per 16 haystack bytes regardless of set size
//   - One 16-byte copy for the tail, no heap allocation
//
// Example:
//
//	set := simd.SetOf('-', ':')
//	if simd.Accelerated() {
//		pos := simd.IndexAny(&set, []byte("86-J52:rev1"))
//		// pos == 2
//	}
func IndexAny(set *Set, haystack []byte) int {
	return indexAnySSE42(set, haystack)
}

// IndexAnyFunc returns the index of the first byte of haystack for which
// match returns true, or -1. It is the portable set kernel and defines the
// semantics the SSE4.2 kernel reproduces.
//
// The scan is a single forward pass calling match once per byte until it
// reports true. match is trusted: nothing checks it against a Set.
//
// Example:
//
//	isDelim := func(c byte) bool { return c == '-' || c == ':' }
//	pos := simd.IndexAnyFunc([]byte("86-J52:rev1"), isDelim)
//	// pos == 2
func IndexAnyFunc(haystack []byte, match func(byte) bool) int {
	for i, c := range haystack {
		if match(c) {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of needle in haystack, or
// -1, using the SSE4.2 kernel. It must only be called when Accelerated
// reports true.
//
// Algorithm:
//
// The first needle byte becomes a one-element Set:
//  1. IndexAny finds the next candidate within the starts that leave room
//     for the whole needle
//  2. The full needle is verified at the candidate with bytes.Equal
//  3. On failure the scan restarts one byte past the candidate
//
// An empty needle matches at 0, as with bytes.Index.
//
// Performance characteristics:
//   - Candidate search runs at IndexAny speed, 16 bytes per step
//   - Worst case O(n*m) when the first byte is frequent and verification
//     keeps failing late
//
// Example:
//
//	if simd.Accelerated() {
//		pos := simd.Index([]byte("red, blue, green"), []byte(", "))
//		// pos == 3
//	}
func Index(haystack, needle []byte) int {
	return indexSSE42(haystack, needle)
}

// indexSSE42 uses the first byte of needle as a one-element set, block scans
// to the next candidate and verifies the whole needle there. A failed
// verification restarts the scan one byte past the candidate.
func indexSSE42(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	}

	first := SetOf(needle[0])
	// Past last there are fewer than n bytes left, so no start is possible.
	last := len(haystack) - n
	for pos := 0; pos <= last; {
		i := indexAnySSE42(&first, haystack[pos:last+1])
		if i < 0 {
			return -1
		}
		c := pos + i
		if bytes.Equal(haystack[c:c+n], needle) {
			return c
		}
		pos = c + 1
	}
	return -1
}
