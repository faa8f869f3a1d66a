package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a seedable randomness source shared by the generators.
// Business randomness (prices, occupancy, references, ticket numbers)
// all flows through one Source so tests can fix the seed.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source seeded with seed. A zero seed means
// time-seeded, the production default.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// Between returns a random int in [min, max] inclusive. When the range
// is empty it returns min.
func (s *Source) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Pick returns one random character from alphabet.
func (s *Source) Pick(alphabet string) string {
	return string(alphabet[s.Intn(len(alphabet))])
}

// String returns n random characters drawn from alphabet.
func (s *Source) String(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.Intn(len(alphabet))]
	}
	return string(b)
}

const digits = "0123456789"

// Digits returns n random decimal digits.
func (s *Source) Digits(n int) string {
	return s.String(digits, n)
}
