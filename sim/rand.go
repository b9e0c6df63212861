package sim

import "math/rand/v2"

// Source supplies the uniform draws the engine needs. *rand.Rand from
// math/rand/v2 satisfies it; tests inject scripted sources.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. The same seed always yields the
// same price path.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
