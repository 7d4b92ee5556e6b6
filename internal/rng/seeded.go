package rng

import "math/rand"

// Seeded is a deterministic generator for reproducible shuffles in tests
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
