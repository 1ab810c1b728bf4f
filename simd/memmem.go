package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present in haystack.
//
// This is equivalent to bytes.Index and is the portable substring kernel:
// the one Substring and ByteSubstring use when the SSE4.2 kernel is not
// compiled in or the CPU lacks it.
//
// Algorithm:
//
// The last byte of the needle is used as the anchor:
//  1. Empty needle matches at 0; a needle longer than haystack never matches
//  2. A one-byte needle is a plain Memchr
//  3. Otherwise Memchr finds the next anchor byte at or after offset len-1
//  4. The full needle is verified at anchor-(len-1) with bytes.Equal
//  5. On failure the scan restarts one byte past the anchor
//
// Anchoring on the last byte skips the first len-1 haystack bytes for free
// and tends to reject runs of a repeated prefix byte quickly.
//
// Performance characteristics:
//   - Typical text: close to Memchr speed, one verification per anchor hit
//   - Worst case: O(n*m), for example needle "aab" over a long run of "a"
//     with "b" sprinkled in
//
// Example:
//
//	haystack := []byte("red, blue, green")
//	pos := simd.Memmem(haystack, []byte(", "))
//	// pos == 3
//
// Example with repeated patterns:
//
//	haystack := []byte("aaaaaabaaaa")
//	pos := simd.Memmem(haystack, []byte("aab"))
//	// pos == 4
//
// Example with empty needle:
//
//	pos := simd.Memmem([]byte("abc"), nil)
//	// pos == 0
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	anchor := n - 1
	last := needle[anchor]

	// Candidates for the anchor byte start at offset anchor; anything
	// earlier leaves no room for the rest of the needle.
	for from := anchor; from < len(haystack); {
		i := Memchr(haystack[from:], last)
		if i < 0 {
			return -1
		}
		start := from + i - anchor
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}
		from += i + 1
	}
	return -1
}
