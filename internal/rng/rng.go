// Package rng is the entropy source behind deck shuffles.
package rng

// Generator produces uniform random ints. The deck pulls its shuffle seeds
// through this interface so tests can substitute something deterministic.
type Generator interface {
	// Intn returns a random number in [0, n)
	Intn(n int) int
}
