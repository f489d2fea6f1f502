package inplace

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrCapacity indicates an operation would grow the content past
	// the fixed capacity.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrRange indicates an index outside the valid content range.
	ErrRange = errors.New("index out of range")

	// ErrUnit indicates a decoded rune does not fit the code unit
	// width.
	ErrUnit = errors.New("code unit overflow")
)

// CapacityError reports a mutation or construction whose projected
// length would exceed the capacity. The failing call wrote nothing.
type CapacityError struct {
	Op        string // Operation that failed (fill, insert, append, ...)
	Projected int    // Length the operation would have produced
	Max       int    // Capacity of the string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("inplace: %s: projected length %d exceeds capacity %d", e.Op, e.Projected, e.Max)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// RangeError reports an index outside the valid range of an operation.
type RangeError struct {
	Op    string // Operation that failed (at, erase, insert, ...)
	Index int    // Offending index or count
	Size  int    // Content length at the time of the call
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("inplace: %s: index %d out of range for length %d", e.Op, e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// UnitError reports a rune that cannot be stored in the string's code
// unit type during text decoding.
type UnitError struct {
	Op   string // Operation that failed (parse, append)
	Rune rune   // Rune that did not fit
	Bits int    // Width of the code unit in bits
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("inplace: %s: rune %q does not fit a %d-bit code unit", e.Op, e.Rune, e.Bits)
}

func (e *UnitError) Unwrap() error {
	return ErrUnit
}
