package interfaces

// RandomSource provides uniformly distributed integers for weighted draws.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a non-negative pseudo-random number in [0, n). It panics if n <= 0.
	IntN(n int) int
}
