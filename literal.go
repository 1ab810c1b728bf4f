package bytescan

import (
	"fmt"

	"github.com/coregx/bytescan/simd"
	"github.com/segmentio/asm/ascii"
)

// byteTable is a membership table indexed by byte value.
type byteTable [256]bool

func (t *byteTable) has(c byte) bool {
	return t[c]
}

// pack lays out a literal set for NewBytes: the array, its length and a
// lookup-table predicate that agrees with it by construction.
func pack(bs []byte) ([16]byte, int, func(byte) bool) {
	if len(bs) > simd.SetCap {
		panic(fmt.Sprintf("bytescan: %d set members exceed the limit of %d", len(bs), simd.SetCap))
	}
	var (
		arr   [16]byte
		table = new(byteTable)
	)
	for i, c := range bs {
		if table[c] {
			panic(fmt.Sprintf("bytescan: duplicate set member %#x", c))
		}
		table[c] = true
		arr[i] = c
	}
	return arr, len(bs), table.has
}

// BytesOf returns a Bytes matcher for the given bytes together with a
// fallback predicate built from them.
//
// It panics on more than 16 bytes or on a repeated byte.
//
//	b := bytescan.BytesOf(0x01, 0x10)
//	pos := b.Find([]byte{0x00, 0x01, 0x10, 0xFF, 0x42})
//	// pos == 1
func BytesOf(bs ...byte) Bytes {
	arr, n, fallback := pack(bs)
	return NewBytes(arr, n, fallback)
}

// ASCIICharsOf returns an ASCIIChars matcher for the characters of chars.
//
// It panics if chars is not ASCII, has more than 16 characters or repeats a
// character.
func ASCIICharsOf(chars string) ASCIIChars {
	if !ascii.ValidString(chars) {
		panic(fmt.Sprintf("bytescan: non-ASCII character in %q", chars))
	}
	arr, n, fallback := pack([]byte(chars))
	return NewASCIIChars(arr, n, fallback)
}
