// Package bytescan searches byte slices and strings for small byte sets and
// fixed substrings.
//
// Four matchers make up the core:
//   - Bytes: first byte belonging to a set of up to 16 bytes
//   - ASCIIChars: the same for a set of ASCII characters, over a string
//   - ByteSubstring: first occurrence of a byte subsequence
//   - Substring: first occurrence of a substring, over a string
//
// Every matcher has two search paths. On x86-64 CPUs with SSE4.2 the haystack
// is compared 16 bytes at a time with PCMPESTRI; everywhere else a portable
// Go implementation runs. The simd package decides which path is taken, once
// per build or once per process, and both paths return identical results.
//
// Basic usage:
//
//	delims := bytescan.ASCIICharsOf("-:")
//	pos := delims.Find("86-J52:rev1")
//	// pos == 2
//
//	sep := bytescan.NewSubstring(", ")
//	pos = sep.Find("red, blue, green")
//	// pos == 3
//
// Matchers are immutable once built and safe for concurrent use. Find
// returns -1 when nothing matches; that is an ordinary result, not an error.
// Invalid construction arguments (more than 16 set members, a non-ASCII byte
// in an ASCII set) are programming errors and panic.
package bytescan

import (
	"fmt"

	"github.com/coregx/bytescan/internal/conv"
	"github.com/coregx/bytescan/simd"
	"github.com/segmentio/asm/ascii"
)

// Bytes searches a byte slice for the first byte in a set of up to 16 bytes.
type Bytes struct {
	set      simd.Set
	fallback func(byte) bool
}

// NewBytes returns a matcher for the first n bytes of bytes.
//
// fallback is used instead of the set when the SSE4.2 path is unavailable.
// It must report true for exactly the bytes in the set. This is not checked
// by Find; see CheckFallback. Prefer BytesOf, which builds a matching
// predicate itself.
//
// NewBytes panics if n is outside [0, 16] or fallback is nil.
func NewBytes(bytes [16]byte, n int, fallback func(byte) bool) Bytes {
	if n < 0 || n > simd.SetCap {
		panic(fmt.Sprintf("bytescan: set length %d out of range [0, %d]", n, simd.SetCap))
	}
	if fallback == nil {
		panic("bytescan: nil fallback predicate")
	}
	return Bytes{set: simd.NewSet(bytes, n), fallback: fallback}
}

// Find returns the index of the first byte of haystack in the set, or -1.
func (b Bytes) Find(haystack []byte) int {
	if simd.Accelerated() {
		return simd.IndexAny(&b.set, haystack)
	}
	return simd.IndexAnyFunc(haystack, b.fallback)
}

// NeedleLen returns 1: a match is always a single byte.
func (b Bytes) NeedleLen() int {
	return 1
}

// Set returns a copy of the searched set.
func (b Bytes) Set() simd.Set {
	return b.set
}

// CheckFallback compares the fallback predicate with the set for all 256
// byte values and reports the first disagreement as a
// *FallbackMismatchError. Find never calls it.
func (b Bytes) CheckFallback() error {
	for i := 0; i < 256; i++ {
		c := byte(i)
		in := b.set.Contains(c)
		if b.fallback(c) != in {
			return &FallbackMismatchError{Byte: c, InSet: in}
		}
	}
	return nil
}

// ASCIIChars searches a string for the first character in a set of up to 16
// ASCII characters.
//
// Every byte of a multi-byte UTF-8 sequence is >= 0x80, so an ASCII set can
// never match inside one and the returned index is always a character
// boundary.
type ASCIIChars struct {
	bytes Bytes
}

// NewASCIIChars returns a matcher for the first n characters of chars.
// fallback follows the same contract as for NewBytes.
//
// NewASCIIChars panics if any of the 16 array entries, filler included, is
// not ASCII, or on any condition NewBytes panics on.
func NewASCIIChars(chars [16]byte, n int, fallback func(byte) bool) ASCIIChars {
	if !ascii.Valid(chars[:]) {
		panic("bytescan: cannot have non-ASCII bytes in an ASCII set")
	}
	return ASCIIChars{bytes: NewBytes(chars, n, fallback)}
}

// Find returns the byte index of the first character of haystack in the
// set, or -1.
func (a ASCIIChars) Find(haystack string) int {
	return a.bytes.Find(conv.StringBytes(haystack))
}

// FindBytes is Find for UTF-8 text held in a byte slice.
func (a ASCIIChars) FindBytes(haystack []byte) int {
	return a.bytes.Find(haystack)
}

// NeedleLen returns 1.
func (a ASCIIChars) NeedleLen() int {
	return 1
}

// CheckFallback is Bytes.CheckFallback for the underlying set.
func (a ASCIIChars) CheckFallback() error {
	return a.bytes.CheckFallback()
}
