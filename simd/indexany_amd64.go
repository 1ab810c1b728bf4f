//go:build amd64 && !purego

package simd

// Assembly kernels, implemented in indexany_amd64.s with PCMPESTRI in
// "equal any" mode (unsigned bytes, least significant index).

// indexAnyBlocksSSE42 scans haystack in 16-byte windows and returns the index
// of the first byte equal to any of the first setLen bytes of set, or -1.
// len(haystack) must be a multiple of WindowSize.
//
//go:noescape
func indexAnyBlocksSSE42(set *[SetCap]byte, setLen int, haystack []byte) int

// indexAnyTailSSE42 compares the first n bytes of window against the set and
// returns the in-window index of the first match, or WindowSize if none.
//
//go:noescape
func indexAnyTailSSE42(set *[SetCap]byte, setLen int, window *[WindowSize]byte, n int) int

// indexAnySSE42 finds the first byte of haystack that is in set.
//
// Whole windows are read straight from the haystack. The final partial
// window is copied to a stack buffer and compared with its length clamped to
// the bytes that remain, so the kernel never loads memory past the end of
// haystack and never treats the buffer padding as data.
func indexAnySSE42(set *Set, haystack []byte) int {
	full := len(haystack) &^ (WindowSize - 1)
	if full > 0 {
		if i := indexAnyBlocksSSE42(&set.bytes, set.n, haystack[:full]); i >= 0 {
			return i
		}
	}

	rem := len(haystack) - full
	if rem == 0 {
		return -1
	}
	var window [WindowSize]byte
	copy(window[:], haystack[full:])
	if i := indexAnyTailSSE42(&set.bytes, set.n, &window, rem); i < rem {
		return full + i
	}
	return -1
}
