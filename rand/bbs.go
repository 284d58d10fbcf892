package rand

import "fmt"

// BlumBlumShub is the quadratic residue generator x' = x^2 mod pq. With the
// modulus sizes this package accepts it is a teaching generator, not a
// cryptographic one; the construction constraints are still enforced
// because violating them silently degrades the period.
type BlumBlumShub struct {
	m, x uint64
}

// NewBlumBlumShub validates the prime pair and the seed: p and q must be
// distinct primes congruent to 3 mod 4 with pq below 2^32, and the seed
// must be neither 0, 1, nor a multiple of either factor.
func NewBlumBlumShub(p, q, seed uint64) (BlumBlumShub, error) {
	switch {
	case p == q:
		return BlumBlumShub{}, fmt.Errorf(
			"%w: prime factors are equal", ErrInvalidParam,
		)
	case p%4 != 3 || q%4 != 3:
		return BlumBlumShub{}, fmt.Errorf(
			"%w: factors (%d, %d) must both be 3 mod 4",
			ErrInvalidParam, p, q,
		)
	case p > (1<<32)/q:
		return BlumBlumShub{}, fmt.Errorf(
			"%w: modulus %d*%d exceeds 2^32", ErrInvalidParam, p, q,
		)
	case !isPrime(p) || !isPrime(q):
		return BlumBlumShub{}, fmt.Errorf(
			"%w: factors (%d, %d) must both be prime",
			ErrInvalidParam, p, q,
		)
	}

	m := p * q
	x := seed % m
	switch {
	case x == 0 || x == 1:
		return BlumBlumShub{}, fmt.Errorf(
			"%w: seed %d is a fixed point of squaring mod %d",
			ErrInvalidParam, seed, m,
		)
	case x%p == 0 || x%q == 0:
		return BlumBlumShub{}, fmt.Errorf(
			"%w: seed %d shares a factor with the modulus %d",
			ErrInvalidParam, seed, m,
		)
	}

	return BlumBlumShub{m: m, x: x}, nil
}

func (g BlumBlumShub) Step() (State, float64) {
	g.x = g.x * g.x % g.m
	return g, float64(g.x+1) / float64(g.m+2)
}

// isPrime is trial division. The 2^32 modulus cap keeps the scan short.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
