package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random int in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random value in [-1,1).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()*2 - 1
}

// GenerateValues generates n random values in [-1,1).
func (r *RNG) GenerateValues(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = r.Float64()
	}

	return values
}
