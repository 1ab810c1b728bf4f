package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present in haystack.
//
// This is equivalent to bytes.IndexByte and is the single-byte scan behind
// the portable substring kernel. It never reads past len(haystack).
//
// Algorithm:
//
// Eight bytes are tested per step with SWAR (SIMD Within A Register):
//  1. Broadcast needle into every byte of a uint64
//  2. XOR with an 8-byte chunk so matching bytes become 0x00
//  3. Detect zero bytes with (v - 0x01..01) & ^v & 0x80..80
//  4. TrailingZeros64 / 8 gives the position of the first match
//
// Haystacks shorter than 8 bytes and the final partial chunk are scanned one
// byte at a time. The borrow in step 3 can only set false high bits above a
// real zero byte, so the lowest set bit is always exact.
//
// Performance characteristics:
//   - O(n) with one 64-bit load per 8 bytes
//   - No allocation, no dependence on CPU features
//
// Example:
//
//	haystack := []byte("86-J52:rev1")
//	pos := simd.Memchr(haystack, ':')
//	// pos == 6
//
// Example with not found:
//
//	pos := simd.Memchr([]byte("hello"), 'z')
//	// pos == -1
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		xor := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		if zero := (xor - lo8) & ^xor & hi8; zero != 0 {
			return i + bits.TrailingZeros64(zero)/8
		}
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}
