package engine

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness the generator draws from. Implementations must be safe
// for concurrent use.
type Source interface {
	IntN(n int) int
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the runtime's goroutine-safe generator.
func DefaultSource() Source {
	return globalSource{}
}

// LockedSource is a seeded Source that serializes draws so it can be shared.
type LockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeededSource(seed uint64) *LockedSource {
	return &LockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func choice(src Source, items []string) string {
	return items[src.IntN(len(items))]
}

// uniform returns a value in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// sample picks k distinct elements without replacement. k is clamped to the
// population size; the input slice is left untouched.
func sample(src Source, population []string, k int) []string {
	if k > len(population) {
		k = len(population)
	}
	if k <= 0 {
		return nil
	}
	pool := make([]string, len(population))
	copy(pool, population)
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
