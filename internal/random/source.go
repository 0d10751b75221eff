// Package random provides the seeded randomness source used by the
// simulation. All stochastic behavior flows through a single Source so a
// session replayed from the same seed produces the same outcomes.
package random

import (
	"math/rand"
	"sync"
)

// Source is a seeded random number generator. It is safe for concurrent
// use; the simulation engine and the scheduler may roll from different
// goroutines.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with the given seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Between returns a uniform value in [lo, hi).
func (s *Source) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}

// IntBetween returns a uniform int in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Chance reports true with probability p. Values outside [0, 1] clamp to
// never or always.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice.
func Pick[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}
