package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// float64Size is the size in bytes of a float64.
const float64Size = 8

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up to Alignment-1 bytes
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocFloat64 allocates a zeroed float64 slice of length n with 64-byte alignment.
// It returns nil for n <= 0.
func AllocFloat64(n int) []float64 {
	if n <= 0 {
		return nil
	}

	b := AllocAligned(n * float64Size)

	// 64-byte alignment implies the 8-byte alignment float64 needs.
	ptr := unsafe.Pointer(&b[0])            //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// Grow allocates an aligned buffer of length n and copies the first live
// elements of old into it. live is clamped to len(old) and n.
func Grow(old []float64, live, n int) []float64 {
	buf := AllocFloat64(n)
	if live > len(old) {
		live = len(old)
	}
	if live > n {
		live = n
	}
	if live > 0 {
		copy(buf, old[:live])
	}
	return buf
}

// IsAligned reports whether the slice starts on an Alignment boundary.
// Empty slices are considered aligned.
func IsAligned(buf []float64) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
