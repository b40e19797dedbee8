package gamemath

import "math/rand/v2"

// Uniform draws from [lo, hi) using rng.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Symmetric draws from [-r, r).
func Symmetric(rng *rand.Rand, r float64) float64 {
	return Uniform(rng, -r, r)
}
