package dvec

import (
	"errors"
	"fmt"
)

var (
	// ErrSameInstance is returned by CopyTo when source and destination are
	// the same vector. Nothing is modified.
	ErrSameInstance = errors.New("dvec: source and destination are the same instance")

	// ErrNilVector is returned when a nil *Vector is passed where a live
	// vector is required.
	ErrNilVector = errors.New("dvec: nil vector")

	// ErrIndexOutOfRange indicates a position outside [0, Len()).
	// For RemoveAt it is a report, not a failure: the vector is left unchanged.
	ErrIndexOutOfRange = errors.New("dvec: index out of range")

	// ErrCapacityExceeded is returned when growth would exceed the configured
	// maximum capacity or overflow. The vector keeps its previous state.
	ErrCapacityExceeded = errors.New("dvec: capacity exceeded")

	// ErrDestroyed is returned by mutating operations on a destroyed vector.
	ErrDestroyed = errors.New("dvec: vector destroyed")

	// ErrNotFinite is returned when NaN or ±Inf cannot be represented by the
	// requested encoding.
	ErrNotFinite = errors.New("dvec: value is NaN or Inf")

	// ErrInvalidEncoding is returned when decoding malformed input.
	ErrInvalidEncoding = errors.New("dvec: invalid encoding")
)

// IndexError records the operation and position that fell outside the vector.
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dvec: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// CapacityError records a growth request that could not be satisfied.
//
// It unwraps to ErrCapacityExceeded.
type CapacityError struct {
	Requested int
	Max       int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("dvec: requested capacity %d exceeds maximum %d", e.Requested, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
