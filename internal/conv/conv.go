// Package conv provides zero-copy views between strings and byte slices.
//
// The views alias the original memory. A string's bytes are immutable, so a
// byte view of a string must never be written to; every caller in this
// module only reads through it.
package conv

import "unsafe"

// StringBytes returns the bytes of s without copying.
// The result must not be modified.
func StringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Bytes returns a read-only byte view of v. Plain strings and any type whose
// underlying type is []byte are viewed without copying; named string types
// are copied once.
func Bytes[T ~string | ~[]byte](v T) []byte {
	if s, ok := any(v).(string); ok {
		return StringBytes(s)
	}
	return []byte(v)
}
