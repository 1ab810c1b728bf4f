package bytescan_test

import (
	"fmt"

	"github.com/coregx/bytescan"
)

func ExampleASCIICharsOf() {
	partNumber := "86-J52:rev1"
	first := bytescan.ASCIICharsOf("-:").Find(partNumber)
	fmt.Println(first)
	// Output: 2
}

func ExampleBytesOf() {
	rawData := []byte{0x00, 0x01, 0x10, 0xFF, 0x42}
	first := bytescan.BytesOf(0x01, 0x10).Find(rawData)
	fmt.Println(first)
	// Output: 1
}

func ExampleNewBytes() {
	var set [16]byte
	copy(set[:], "<>&")
	markup := bytescan.NewBytes(set, 3, func(c byte) bool {
		return c == '<' || c == '>' || c == '&'
	})
	fmt.Println(markup.Find([]byte("x = a && b")))
	// Output: 6
}

func ExampleNewSubstring() {
	colors := "red, blue, green"
	first := bytescan.NewSubstring(", ").Find(colors)
	fmt.Println(first)
	// Output: 3
}

func ExampleNewByteSubstring() {
	rawData := []byte{0x00, 0x01, 0x10, 0xFF, 0x42}
	first := bytescan.NewByteSubstring([]byte{0x10, 0xFF}).Find(rawData)
	fmt.Println(first)
	// Output: 2
}

func ExampleNewSubstring_empty() {
	fmt.Println(bytescan.NewSubstring("").Find("abc"))
	// Output: 0
}

func ExampleNewSubstrings() {
	tokens := bytescan.MustSubstrings("<!--", "]]>", "&amp;")
	fmt.Println(tokens.FindString("fish &amp; chips <!-- menu -->"))
	// Output: 5
}
