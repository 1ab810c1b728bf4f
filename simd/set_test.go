package simd

import "testing"

func TestNewSetRange(t *testing.T) {
	var arr [SetCap]byte
	for _, n := range []int{0, 1, 15, 16} {
		s := NewSet(arr, n)
		if s.Len() != n {
			t.Errorf("NewSet(_, %d).Len() = %d", n, s.Len())
		}
	}

	for _, n := range []int{-1, 17, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSet(_, %d) did not panic", n)
				}
			}()
			NewSet(arr, n)
		}()
	}
}

func TestSetOf(t *testing.T) {
	s := SetOf('<', '>', '&')
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if string(s.Bytes()) != "<>&" {
		t.Errorf("Bytes() = %q", s.Bytes())
	}
	for _, c := range []byte("<>&") {
		if !s.Contains(c) {
			t.Errorf("Contains(%q) = false", c)
		}
	}
	// Filler bytes are zero but not members.
	if s.Contains(0) {
		t.Error("Contains(0) = true for filler")
	}

	defer func() {
		if recover() == nil {
			t.Error("SetOf with 17 bytes did not panic")
		}
	}()
	SetOf(make([]byte, 17)...)
}

func TestEmptySetMatchesNothing(t *testing.T) {
	var s Set
	haystack := []byte("\x00\x00\x00 zero filler must not match")
	for _, k := range Kernels() {
		if got := k.IndexAny(&s, s.Contains, haystack); got != -1 {
			t.Errorf("%s: empty set matched at %d", k.Name(), got)
		}
	}
}
