package rand

import (
	"fmt"
	"math"
)

// LCG is the classic linear congruential generator
// x' = (a*x + b) mod m. Variates are mapped through (x'+1)/(m+2) so the
// endpoints of (0, 1) stay excluded even for the extreme states.
type LCG struct {
	a, b, m uint64
	x       uint64
}

// NewLCG validates the recurrence parameters and returns the initial state.
// The product a*(m-1) must fit in a uint64, which covers every
// parametrization anyone has a reason to use.
func NewLCG(a, b, m, seed uint64) (LCG, error) {
	switch {
	case m < 2 || m > 1<<62:
		return LCG{}, fmt.Errorf(
			"%w: modulus %d outside [2, 2^62]", ErrInvalidParam, m,
		)
	case a == 0:
		return LCG{}, fmt.Errorf("%w: multiplier is zero", ErrInvalidParam)
	case a > (math.MaxUint64-b)/m:
		return LCG{}, fmt.Errorf(
			"%w: a=%d, b=%d overflow modulus %d", ErrInvalidParam, a, b, m,
		)
	case seed >= m:
		return LCG{}, fmt.Errorf(
			"%w: seed %d not below modulus %d", ErrInvalidParam, seed, m,
		)
	}
	return LCG{a: a, b: b, m: m, x: seed}, nil
}

// NewLehmer is the multiplicative special case b = 0. A zero seed is a
// fixed point of the recurrence and is rejected.
func NewLehmer(a, m, seed uint64) (LCG, error) {
	if seed == 0 {
		return LCG{}, fmt.Errorf(
			"%w: multiplicative generator seeded with 0", ErrInvalidParam,
		)
	}
	return NewLCG(a, 0, m, seed)
}

// NewParkMiller is the minimal standard generator of Park and Miller:
// a = 16807, m = 2^31 - 1.
func NewParkMiller(seed uint64) (LCG, error) {
	return NewLehmer(16807, 2147483647, seed)
}

// NewRANDU is IBM's infamous RANDU: a = 65539, m = 2^31. Its triples fall
// on fifteen planes; it is kept for comparison studies, not for use.
func NewRANDU(seed uint64) (LCG, error) {
	return NewLehmer(65539, 1<<31, seed)
}

func (g LCG) Step() (State, float64) {
	g.x = (g.a*g.x + g.b) % g.m
	return g, float64(g.x+1) / float64(g.m+2)
}

const (
	whMod1 = 30269
	whMod2 = 30307
	whMod3 = 30323
)

// WichmannHill combines three small multiplicative lanes and sums their
// normalized outputs modulo 1. The lane periods are coprime, giving a
// combined period of about 7e12.
type WichmannHill struct {
	s1, s2, s3 uint32
}

// NewWichmannHill requires one nonzero seed per lane, each below its lane
// modulus.
func NewWichmannHill(s1, s2, s3 uint32) (WichmannHill, error) {
	ok := func(s, m uint32) bool { return s >= 1 && s < m }
	if !ok(s1, whMod1) || !ok(s2, whMod2) || !ok(s3, whMod3) {
		return WichmannHill{}, fmt.Errorf(
			"%w: lane seeds (%d, %d, %d) outside [1, %d)x[1, %d)x[1, %d)",
			ErrInvalidParam, s1, s2, s3, whMod1, whMod2, whMod3,
		)
	}
	return WichmannHill{s1, s2, s3}, nil
}

func (g WichmannHill) Step() (State, float64) {
	g.s1 = uint32(uint64(g.s1) * 171 % whMod1)
	g.s2 = uint32(uint64(g.s2) * 172 % whMod2)
	g.s3 = uint32(uint64(g.s3) * 170 % whMod3)
	u := float64(g.s1)/whMod1 + float64(g.s2)/whMod2 + float64(g.s3)/whMod3
	u -= math.Floor(u)
	// The lanes are never zero, so u can only hit 0.0 through floating
	// point coincidence. Step past it if it ever happens.
	if u == 0 {
		return g.Step()
	}
	return g, u
}
