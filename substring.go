package bytescan

import (
	"bytes"

	"github.com/coregx/bytescan/internal/conv"
	"github.com/coregx/bytescan/simd"
)

// Needle is the set of types a substring matcher can hold its needle in.
// The type parameter records who owns the needle bytes; the search itself
// always runs over a byte view.
type Needle interface {
	~string | ~[]byte
}

// ByteSubstring searches a byte slice for the first occurrence of a needle.
// An empty needle matches at index 0 of every haystack.
type ByteSubstring[T Needle] struct {
	needle T
	view   []byte
}

// NewByteSubstring returns a matcher that borrows needle. No bytes are
// copied, so a []byte needle must not be modified while the matcher is in
// use. Strings are immutable and always safe to borrow.
func NewByteSubstring[T Needle](needle T) ByteSubstring[T] {
	return ByteSubstring[T]{needle: needle, view: conv.Bytes(needle)}
}

// NewByteSubstringOwned returns a matcher holding its own copy of needle.
func NewByteSubstringOwned(needle []byte) ByteSubstring[[]byte] {
	return NewByteSubstring(bytes.Clone(needle))
}

// Find returns the index of the first occurrence of the needle in haystack,
// or -1.
func (s ByteSubstring[T]) Find(haystack []byte) int {
	if simd.Accelerated() {
		return simd.Index(haystack, s.view)
	}
	return simd.Memmem(haystack, s.view)
}

// NeedleLen returns the length of the needle in bytes.
func (s ByteSubstring[T]) NeedleLen() int {
	return len(s.view)
}

// Needle returns the needle as it was given to the constructor.
func (s ByteSubstring[T]) Needle() T {
	return s.needle
}

// Substring searches a string for the first occurrence of a substring.
type Substring[T Needle] struct {
	inner ByteSubstring[T]
}

// NewSubstring returns a matcher that shares the memory of needle.
func NewSubstring(needle string) Substring[string] {
	return Substring[string]{inner: NewByteSubstring(needle)}
}

// NewSubstringOwned returns a matcher that copies needle into a buffer it
// owns.
func NewSubstringOwned(needle string) Substring[[]byte] {
	return Substring[[]byte]{inner: NewByteSubstring([]byte(needle))}
}

// Find returns the byte index of the first occurrence of the substring in
// haystack, or -1.
func (s Substring[T]) Find(haystack string) int {
	return s.inner.Find(conv.StringBytes(haystack))
}

// NeedleLen returns the length of the substring in bytes.
func (s Substring[T]) NeedleLen() int {
	return s.inner.NeedleLen()
}

// String returns the substring.
func (s Substring[T]) String() string {
	return string(s.inner.view)
}
