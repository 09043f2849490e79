// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's platform-dependent int and the fixed-width
// integers used by encoded headers and bitmap positions.
//
// Use cases:
//   - Validating untrusted lengths read from an encoded vector
//   - Converting element indices to roaring bitmap positions (uint32)
package conv
