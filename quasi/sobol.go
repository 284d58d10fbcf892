package quasi

import (
	"fmt"
	"sync"
)

const (
	// SobolMaxDim is the largest dimension count NewSobol accepts: the
	// first dimension plus the six tabulated primitive polynomials.
	SobolMaxDim = 7

	sobolBits = 32
)

// Primitive polynomial parameters per tabulated dimension: the degree, the
// interior coefficient mask, and the seed m-values of the direction vector
// recurrence. The first dimension needs none of these; its direction
// vectors are the plain bit weights 2^31, 2^30, ...
var (
	sobolDegree = [SobolMaxDim - 1]uint32{1, 2, 3, 3, 4, 4}
	sobolPoly   = [SobolMaxDim - 1]uint32{0, 1, 1, 2, 1, 4}
	sobolSeedM  = [SobolMaxDim - 1][]uint32{
		{1},
		{1, 1},
		{1, 3, 7},
		{1, 3, 3},
		{1, 1, 3, 13},
		{1, 1, 5, 9},
	}

	sobolOnce sync.Once
	sobolDirs [SobolMaxDim][sobolBits]uint32
)

// sobolInit expands the tabulated parameters into the shared direction
// vector table. The table is immutable after this runs.
func sobolInit() {
	for j := 0; j < sobolBits; j++ {
		sobolDirs[0][j] = 1 << (sobolBits - 1 - j)
	}

	for d := 1; d < SobolMaxDim; d++ {
		s, a, m := sobolDegree[d-1], sobolPoly[d-1], sobolSeedM[d-1]
		v := &sobolDirs[d]
		for j := uint32(0); j < s; j++ {
			v[j] = m[j] << (sobolBits - 1 - j)
		}
		for j := s; j < sobolBits; j++ {
			x := v[j-s] ^ v[j-s]>>s
			for k := uint32(1); k < s; k++ {
				if a>>(s-1-k)&1 == 1 {
					x ^= v[j-k]
				}
			}
			v[j] = x
		}
	}
}

// Sobol generates the first SobolMaxDim dimensions of the Sobol sequence
// by the Gray-code method: point i differs from point i-1 in exactly one
// direction vector per dimension, selected by the rightmost zero bit of
// i-1. The sequence starts at the origin by construction.
type Sobol struct {
	i uint32
	x []uint32
}

// NewSobol returns a Sobol sequence of the given dimension, positioned
// before its first point.
func NewSobol(dim int) (*Sobol, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d < 1", ErrInvalidParam, dim)
	}
	if dim > SobolMaxDim {
		return nil, fmt.Errorf(
			"%w: %d requested, %d available", ErrDimension, dim, SobolMaxDim,
		)
	}
	sobolOnce.Do(sobolInit)
	return &Sobol{x: make([]uint32, dim)}, nil
}

// Dim returns the dimension of the sequence's points.
func (s *Sobol) Dim() int { return len(s.x) }

// Next returns the next point of the sequence.
func (s *Sobol) Next() []float64 {
	p := make([]float64, len(s.x))
	s.NextAt(p)
	return p
}

// NextAt writes the next point into target, which must have length Dim.
// The first point is the origin; point i is point i-1 with the direction
// vector for bit rz(i-1) folded into each dimension.
func (s *Sobol) NextAt(target []float64) {
	if s.i > 0 {
		j := rightmostZero(s.i - 1)
		for d := range s.x {
			s.x[d] ^= sobolDirs[d][j]
		}
	}
	s.i++
	for d, x := range s.x {
		target[d] = float64(x) / float64(^uint32(0))
	}
}

// Reset rewinds the sequence to before its first point.
func (s *Sobol) Reset() {
	s.i = 0
	for d := range s.x {
		s.x[d] = 0
	}
}

// Gray returns the Gray code of n: consecutive arguments yield results
// differing in exactly one bit.
func Gray(n uint32) uint32 {
	return n ^ n>>1
}

// rightmostZero returns the index of the lowest clear bit of n. The
// all-ones word has no clear bit; the sequence index wraps before that can
// happen, but the guard beats an infinite loop if it ever does.
func rightmostZero(n uint32) uint32 {
	for j := uint32(0); j < sobolBits; j++ {
		if n>>j&1 == 0 {
			return j
		}
	}
	panic("quasi: no zero bit in sequence index")
}
