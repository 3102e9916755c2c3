package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
)

// RandomSource is the randomness every reward roll draws from. Tests inject
// a deterministic implementation.
type RandomSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// lockedSource is a math/rand source safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a concurrency-safe source seeded with seed
func NewRandomSource(seed int64) RandomSource {
	return &lockedSource{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

type globalSource struct{}

// DefaultRandomSource draws from the package-level math/rand generator
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

func (globalSource) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	return RandomIntFrom(globalSource{}, min, max)
}

// RandomIntFrom returns a value between min and max (inclusive) drawn from src
func RandomIntFrom(src RandomSource, min, max int) int {
	if min >= max {
		return min
	}
	return src.Intn(max-min+1) + min
}

// Pick returns a uniformly chosen element of options
func Pick[T any](src RandomSource, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	return options[src.Intn(len(options))]
}

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// FixedSource returns values from a fixed list in order, cycling when
// exhausted. Each value is reduced modulo n.
type FixedSource struct {
	mu     sync.Mutex
	Values []int
	next   int
}

// NewFixedSource creates a FixedSource yielding values in order
func NewFixedSource(values ...int) *FixedSource {
	return &FixedSource{Values: values}
}

func (f *FixedSource) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Values) == 0 || n <= 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return ((v % n) + n) % n
}
