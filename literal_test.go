package bytescan

import (
	"strings"
	"testing"

	"github.com/segmentio/asm/ascii"
)

// panics reports whether f panics.
func panics(f func()) (p bool) {
	defer func() { p = recover() != nil }()
	f()
	return false
}

func TestBytesOf(t *testing.T) {
	b := BytesOf(0x01, 0x10)
	if got := b.Find([]byte{0x00, 0x01, 0x10, 0xFF, 0x42}); got != 1 {
		t.Errorf("Find = %d, want 1", got)
	}
	if got := b.Set().Len(); got != 2 {
		t.Errorf("Set().Len() = %d, want 2", got)
	}
	if !b.Set().Contains(0x10) || b.Set().Contains(0x00) {
		t.Errorf("Set() = %v, want members 0x01 0x10", b.Set().Bytes())
	}
	if err := b.CheckFallback(); err != nil {
		t.Errorf("CheckFallback() = %v", err)
	}

	empty := BytesOf()
	if got := empty.Find([]byte("anything")); got != -1 {
		t.Errorf("empty Find = %d, want -1", got)
	}
	if err := empty.CheckFallback(); err != nil {
		t.Errorf("empty CheckFallback() = %v", err)
	}

	full := BytesOf([]byte("0123456789ABCDEF")...)
	if got := full.Find([]byte("xyzF")); got != 3 {
		t.Errorf("full Find = %d, want 3", got)
	}
}

func TestBytesOfPanics(t *testing.T) {
	if !panics(func() { BytesOf([]byte("0123456789ABCDEFG")...) }) {
		t.Error("BytesOf with 17 members did not panic")
	}
	if !panics(func() { BytesOf('a', 'b', 'a') }) {
		t.Error("BytesOf with a duplicate did not panic")
	}
}

func TestASCIICharsOf(t *testing.T) {
	delims := ASCIICharsOf("-:")
	if got := delims.Find("86-J52:rev1"); got != 2 {
		t.Errorf("Find = %d, want 2", got)
	}
	if got := delims.NeedleLen(); got != 1 {
		t.Errorf("NeedleLen() = %d, want 1", got)
	}
	if err := delims.CheckFallback(); err != nil {
		t.Fatalf("CheckFallback() = %v", err)
	}

	// Every ASCII character can be a member.
	for c := 0; c < 128; c++ {
		a := ASCIICharsOf(string(rune(c)))
		if got := a.Find("\x80\x80\x80" + string(rune(c))); got != 3 {
			t.Errorf("char %#x: Find = %d, want 3", c, got)
		}
	}
}

func TestASCIICharsOfPanics(t *testing.T) {
	tests := map[string]string{
		"non_ascii": "a\xe9",
		"utf8":      "-é",
		"too_many":  "abcdefghijklmnopq",
		"duplicate": "<<",
	}
	for name, chars := range tests {
		t.Run(name, func(t *testing.T) {
			if !panics(func() { ASCIICharsOf(chars) }) {
				t.Errorf("ASCIICharsOf(%q) did not panic", chars)
			}
		})
	}
}

// TestASCIICharsAgreesWithStrings cross-checks against strings.IndexAny for
// ASCII sets over mixed ASCII / UTF-8 text.
func TestASCIICharsAgreesWithStrings(t *testing.T) {
	text := strings.Repeat("Grüße, 世界! <b>&nbsp;</b> ", 8)
	if ascii.ValidString(text) {
		t.Fatal("test text is unexpectedly pure ASCII")
	}

	for _, chars := range []string{"<", "<>&", "!,", ";", " ", "&;<>\"'"} {
		a := ASCIICharsOf(chars)
		if got, want := a.Find(text), strings.IndexAny(text, chars); got != want {
			t.Errorf("chars %q: Find = %d, want %d", chars, got, want)
		}
	}
}
