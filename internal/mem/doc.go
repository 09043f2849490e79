// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Element buffers are allocated on 64-byte boundaries so every buffer starts on
// a cache line (AVX-512 friendly when handed to SIMD code).
//
// # Growth
//
// Grow returns a fresh aligned buffer holding a copy of the live prefix of the
// old one. The old buffer is never written to, so a failed or abandoned growth
// leaves the caller's data intact.
package mem
