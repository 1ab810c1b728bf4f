// Package pattern drives bytescan matchers through the usual "find every
// occurrence" and "split on every occurrence" operations.
//
// The drivers only need Find and NeedleLen, so any matcher in bytescan (or
// any other type with those two methods) plugs in:
//
//	parts := pattern.Split(bytescan.ASCIICharsOf("-:"), "86-J52:rev1", -1)
//	// parts == []string{"86", "J52", "rev1"}
//
// Matches never overlap. After an empty match the search resumes one byte
// (for byte slices) or one UTF-8 sequence (for strings) further on, so every
// driver terminates.
package pattern

import "unicode/utf8"

// Searcher finds the first occurrence of its needle in a byte slice.
type Searcher interface {
	// Find returns the index of the first match in haystack, or -1.
	Find(haystack []byte) int
	// NeedleLen returns the length in bytes of every match.
	NeedleLen() int
}

// StringSearcher finds the first occurrence of its needle in a string.
type StringSearcher interface {
	// Find returns the byte index of the first match in haystack, or -1.
	Find(haystack string) int
	// NeedleLen returns the length in bytes of every match.
	NeedleLen() int
}

// Index returns the index of the first match at or after from, or -1.
// It returns -1 if from is outside [0, len(haystack)].
func Index(s Searcher, haystack []byte, from int) int {
	if from < 0 || from > len(haystack) {
		return -1
	}
	i := s.Find(haystack[from:])
	if i < 0 {
		return -1
	}
	return from + i
}

// IndexString is Index for strings.
func IndexString(s StringSearcher, haystack string, from int) int {
	if from < 0 || from > len(haystack) {
		return -1
	}
	i := s.Find(haystack[from:])
	if i < 0 {
		return -1
	}
	return from + i
}

// FindAllIndex returns the [start, end) pairs of successive matches in
// haystack, at most n of them if n >= 0. It returns nil if there is no
// match.
func FindAllIndex(s Searcher, haystack []byte, n int) [][]int {
	var out [][]int
	width := s.NeedleLen()
	for pos := 0; pos <= len(haystack) && (n < 0 || len(out) < n); {
		start := Index(s, haystack, pos)
		if start < 0 {
			break
		}
		out = append(out, []int{start, start + width})
		pos = start + width
		if width == 0 {
			pos++
		}
	}
	return out
}

// FindAllStringIndex is FindAllIndex for strings.
func FindAllStringIndex(s StringSearcher, haystack string, n int) [][]int {
	var out [][]int
	width := s.NeedleLen()
	for pos := 0; pos <= len(haystack) && (n < 0 || len(out) < n); {
		start := IndexString(s, haystack, pos)
		if start < 0 {
			break
		}
		out = append(out, []int{start, start + width})
		pos = start + width
		if width == 0 {
			pos += runeWidth(haystack, start)
		}
	}
	return out
}

// runeWidth returns the size of the UTF-8 sequence at i, or 1 at the end of
// s so that the caller steps past the final empty match.
func runeWidth(s string, i int) int {
	if i >= len(s) {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return size
}

// Count returns the number of non-overlapping matches in haystack. For an
// empty needle that is len(haystack)+1.
func Count(s Searcher, haystack []byte) int {
	return len(FindAllIndex(s, haystack, -1))
}

// CountString returns the number of non-overlapping matches in haystack. For
// an empty needle that is utf8.RuneCountInString(haystack)+1.
func CountString(s StringSearcher, haystack string) int {
	return len(FindAllStringIndex(s, haystack, -1))
}
