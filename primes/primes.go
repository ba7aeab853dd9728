package primes

// IsPrime reports whether n is prime, by trial division with every integer
// from 2 up to the square root of n.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	for d := uint64(2); d <= n/d; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n uint64) uint64 {
	var p = n + 1
	for !IsPrime(p) {
		p++
	}
	return p
}

// AtLeast returns n if it is prime and NextPrime(n) otherwise.
func AtLeast(n uint64) uint64 {
	if IsPrime(n) {
		return n
	}
	return NextPrime(n)
}
