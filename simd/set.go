package simd

import "fmt"

// SetCap is the maximum number of bytes a Set can hold.
const SetCap = 16

// Set is a small byte set laid out the way PCMPESTRI consumes it: up to
// SetCap bytes in a fixed array followed by a count. Bytes past the count
// are filler and never take part in a comparison.
//
// The zero value is the empty set, which matches nothing.
type Set struct {
	bytes [SetCap]byte
	n     int
}

// NewSet returns a Set holding the first n bytes of bytes.
// It panics if n is outside [0, SetCap].
func NewSet(bytes [SetCap]byte, n int) Set {
	if n < 0 || n > SetCap {
		panic(fmt.Sprintf("simd: set length %d out of range [0, %d]", n, SetCap))
	}
	return Set{bytes: bytes, n: n}
}

// SetOf packs bs into a Set. It panics if there are more than SetCap bytes.
// Duplicates are kept; they do not change what the set matches.
func SetOf(bs ...byte) Set {
	if len(bs) > SetCap {
		panic(fmt.Sprintf("simd: %d bytes exceed set capacity %d", len(bs), SetCap))
	}
	var s Set
	s.n = copy(s.bytes[:], bs)
	return s
}

// Len returns the number of valid bytes in the set.
func (s Set) Len() int {
	return s.n
}

// Bytes returns a copy of the valid bytes of the set.
func (s Set) Bytes() []byte {
	return s.bytes[:s.n]
}

// Array returns the backing array, filler included.
func (s Set) Array() [SetCap]byte {
	return s.bytes
}

// Contains reports whether c is one of the valid bytes of the set.
func (s Set) Contains(c byte) bool {
	for _, b := range s.bytes[:s.n] {
		if b == c {
			return true
		}
	}
	return false
}
