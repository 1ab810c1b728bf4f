package bytescan

import (
	"errors"
	"fmt"
)

// Errors returned when building a Substrings matcher.
var (
	// ErrNoNeedles indicates that no needle was given.
	ErrNoNeedles = errors.New("bytescan: no needles")

	// ErrEmptyNeedle indicates an empty needle. An empty needle would match
	// everywhere and make every other needle irrelevant.
	ErrEmptyNeedle = errors.New("bytescan: empty needle")

	// ErrTooManyNeedles indicates more needles than Config.MaxNeedles.
	ErrTooManyNeedles = errors.New("bytescan: too many needles")

	// ErrNeedleTooLong indicates a needle longer than Config.MaxNeedleLen.
	ErrNeedleTooLong = errors.New("bytescan: needle too long")
)

// NeedleError reports which needle was rejected and why.
type NeedleError struct {
	Index int
	Err   error
}

// Error implements the error interface.
func (e *NeedleError) Error() string {
	return fmt.Sprintf("%v (needle %d)", e.Err, e.Index)
}

// Unwrap returns the underlying error.
func (e *NeedleError) Unwrap() error {
	return e.Err
}

// FallbackMismatchError is returned by CheckFallback when the fallback
// predicate and the byte set disagree about a byte.
type FallbackMismatchError struct {
	Byte  byte
	InSet bool
}

// Error implements the error interface.
func (e *FallbackMismatchError) Error() string {
	if e.InSet {
		return fmt.Sprintf("bytescan: fallback rejects %#x, which is in the set", e.Byte)
	}
	return fmt.Sprintf("bytescan: fallback accepts %#x, which is not in the set", e.Byte)
}
