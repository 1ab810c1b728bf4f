package bytescan

import (
	"bytes"
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/bytescan/internal/conv"
	"github.com/coregx/bytescan/simd"
)

// Substrings finds the leftmost occurrence of any of several needles, such
// as the tokens a markup scanner stops at ("<!--", "]]>", "&amp;").
//
// When the needles start with at most 16 distinct bytes and SSE4.2 is
// available, candidates are located with the same 16-byte window scan as
// Bytes and every needle is verified at the candidate. Otherwise an
// Aho-Corasick automaton scans the haystack. Both report the same position.
type Substrings struct {
	needles [][]byte
	first   simd.Set
	// scan is false when the first bytes do not fit in a simd.Set.
	scan bool
	auto *ahocorasick.Automaton
	// maxLen bounds how far before the automaton's match a leftmost start
	// can lie.
	maxLen int
}

// NewSubstrings builds a matcher for needles with DefaultConfig.
func NewSubstrings(needles ...string) (*Substrings, error) {
	return NewSubstringsWithConfig(DefaultConfig(), needles...)
}

// MustSubstrings is like NewSubstrings but panics on error.
func MustSubstrings(needles ...string) *Substrings {
	m, err := NewSubstrings(needles...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewSubstringsWithConfig builds a matcher for needles.
//
// Needles must be non-empty. Errors are ErrNoNeedles, a *ConfigError, a
// *NeedleError wrapping ErrEmptyNeedle, ErrTooManyNeedles or
// ErrNeedleTooLong, or a wrapped automaton construction error.
func NewSubstringsWithConfig(config Config, needles ...string) (*Substrings, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(needles) == 0 {
		return nil, ErrNoNeedles
	}
	if len(needles) > config.MaxNeedles {
		return nil, fmt.Errorf("%w: %d needles, limit is %d", ErrTooManyNeedles, len(needles), config.MaxNeedles)
	}

	m := &Substrings{needles: make([][]byte, 0, len(needles))}
	builder := ahocorasick.NewBuilder()

	var (
		seen   [256]bool
		firsts []byte
	)
	for i, s := range needles {
		switch {
		case s == "":
			return nil, &NeedleError{Index: i, Err: ErrEmptyNeedle}
		case len(s) > config.MaxNeedleLen:
			return nil, &NeedleError{Index: i, Err: ErrNeedleTooLong}
		}
		needle := []byte(s)
		m.needles = append(m.needles, needle)
		m.maxLen = max(m.maxLen, len(needle))
		builder.AddPattern(needle)

		if !seen[needle[0]] {
			seen[needle[0]] = true
			firsts = append(firsts, needle[0])
		}
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("bytescan: build automaton: %w", err)
	}
	m.auto = auto

	if len(firsts) <= simd.SetCap {
		m.first = simd.SetOf(firsts...)
		m.scan = true
	}
	return m, nil
}

// Find returns the index of the leftmost occurrence of any needle in
// haystack, or -1.
func (m *Substrings) Find(haystack []byte) int {
	if m.scan && simd.Accelerated() {
		return m.findScan(haystack)
	}
	return m.findAutomaton(haystack)
}

// FindString is Find for a string haystack.
func (m *Substrings) FindString(haystack string) int {
	return m.Find(conv.StringBytes(haystack))
}

// Len returns the number of needles.
func (m *Substrings) Len() int {
	return len(m.needles)
}

func (m *Substrings) findScan(haystack []byte) int {
	for pos := 0; pos < len(haystack); {
		i := simd.IndexAny(&m.first, haystack[pos:])
		if i < 0 {
			return -1
		}
		c := pos + i
		for _, needle := range m.needles {
			if bytes.HasPrefix(haystack[c:], needle) {
				return c
			}
		}
		pos = c + 1
	}
	return -1
}

// findAutomaton runs the automaton, which reports the match that ends
// first. A match starting further left ends no earlier, so it starts in
// [End-maxLen, Start); that window is verified needle by needle.
func (m *Substrings) findAutomaton(haystack []byte) int {
	if len(haystack) == 0 {
		return -1
	}
	match := m.auto.Find(haystack, 0)
	if match == nil {
		return -1
	}
	for pos := max(0, match.End-m.maxLen); pos < match.Start; pos++ {
		for _, needle := range m.needles {
			if bytes.HasPrefix(haystack[pos:], needle) {
				return pos
			}
		}
	}
	return match.Start
}
