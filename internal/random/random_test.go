package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := random.New(42)
	b := random.New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestBetweenInclusive(t *testing.T) {
	s := random.New(1)

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := s.Between(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.True(t, seen[3])
	assert.True(t, seen[5])
}

func TestBetweenEmptyRange(t *testing.T) {
	s := random.New(1)

	assert.Equal(t, 7, s.Between(7, 7))
	assert.Equal(t, 7, s.Between(7, 3))
}

func TestString(t *testing.T) {
	s := random.New(1)

	out := s.String("AB", 16)
	assert.Len(t, out, 16)
	for _, r := range out {
		assert.Contains(t, "AB", string(r))
	}
}

func TestDigits(t *testing.T) {
	s := random.New(1)

	out := s.Digits(10)
	assert.Regexp(t, `^\d{10}$`, out)
}

func TestPick(t *testing.T) {
	s := random.New(1)

	assert.Equal(t, "X", s.Pick("X"))
	assert.Contains(t, "ABC", s.Pick("ABC"))
}
