package primes_test

import (
	"testing"

	"hashtbl_code/primes"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// slow reference: try every candidate divisor
func isPrimeSpec(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeBoundaries(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		n        uint64
		expected bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{11, true},
		{25, false},
		{29, true},
	}

	for _, test := range tests {
		assert.Equal(test.expected, primes.IsPrime(test.n), "IsPrime(%d)", test.n)
	}
}

func TestNextPrime(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		n        uint64
		expected uint64
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{7, 11},
		{11, 13},
		{14, 17},
		{22, 23},
		{24, 29},
	}

	for _, test := range tests {
		assert.Equal(test.expected, primes.NextPrime(test.n), "NextPrime(%d)", test.n)
	}
}

func TestAtLeast(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(7), primes.AtLeast(7))
	assert.Equal(uint64(11), primes.AtLeast(8))
	assert.Equal(uint64(2), primes.AtLeast(0))
}

func TestIsPrimeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64Range(0, 5000).Draw(t, "n")
		assert.Equal(t, isPrimeSpec(n), primes.IsPrime(n), "IsPrime(%d)", n)
	})
}

func TestNextPrimeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		n := rapid.Uint64Range(0, 5000).Draw(t, "n")
		p := primes.NextPrime(n)

		assert.Greater(p, n)
		assert.True(isPrimeSpec(p), "NextPrime(%d) = %d is not prime", n, p)
		// nothing between n and p is prime
		for m := n + 1; m < p; m++ {
			assert.False(isPrimeSpec(m), "skipped prime %d", m)
		}
	})
}
