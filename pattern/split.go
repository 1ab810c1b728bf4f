package pattern

import "unicode/utf8"

// Split slices str into the substrings separated by matches of s, with the
// semantics of strings.SplitN:
//
//	n > 0: at most n substrings; the last one is the unsplit remainder
//	n == 0: the result is nil
//	n < 0: all substrings
//
// An empty needle splits after each UTF-8 sequence.
func Split(s StringSearcher, str string, n int) []string {
	if n == 0 {
		return nil
	}
	width := s.NeedleLen()
	if width == 0 {
		return explode(str, n)
	}
	if n < 0 {
		n = CountString(s, str) + 1
	}

	out := make([]string, 0, n)
	for len(out) < n-1 {
		i := s.Find(str)
		if i < 0 {
			break
		}
		out = append(out, str[:i])
		str = str[i+width:]
	}
	return append(out, str)
}

// SplitBytes is Split for byte slices. An empty needle splits after each
// byte. The results alias b.
func SplitBytes(s Searcher, b []byte, n int) [][]byte {
	if n == 0 {
		return nil
	}
	width := s.NeedleLen()
	if width == 0 {
		if n < 0 || n > len(b) {
			n = len(b)
		}
		out := make([][]byte, 0, n)
		for len(out) < n-1 {
			out = append(out, b[:1:1])
			b = b[1:]
		}
		if n > 0 {
			out = append(out, b)
		}
		return out
	}
	if n < 0 {
		n = Count(s, b) + 1
	}

	out := make([][]byte, 0, n)
	for len(out) < n-1 {
		i := s.Find(b)
		if i < 0 {
			break
		}
		out = append(out, b[:i:i])
		b = b[i+width:]
	}
	return append(out, b)
}

// explode splits str into UTF-8 sequences, at most n of them if n > 0.
func explode(str string, n int) []string {
	l := utf8.RuneCountInString(str)
	if n < 0 || n > l {
		n = l
	}
	out := make([]string, n)
	for i := 0; i < n-1; i++ {
		_, size := utf8.DecodeRuneInString(str)
		out[i] = str[:size]
		str = str[size:]
	}
	if n > 0 {
		out[n-1] = str
	}
	return out
}
