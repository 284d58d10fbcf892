/*package quasi provides the low-discrepancy sequences used for stratified
quantitative-finance sampling: Van der Corput radical inverses, Halton
sequences, Sobol sequences, and Latin Hypercube Sampling. Unlike the
pseudo random generators in the rand package these sequences are indexed
deterministic point sets; their value is even coverage of the unit cube,
not unpredictability.*/
package quasi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam wraps constructor-time parameter rejections.
	ErrInvalidParam = errors.New("invalid sequence parameter")
	// ErrDimension reports a dimension count beyond the tabulated data.
	ErrDimension = errors.New("dimension exceeds tabulated sequence data")
)

// Corput returns element i of the Van der Corput sequence in the given
// base: the base-b digits of i mirrored about the radix point. Corput(0, b)
// is 0. The base must be at least 2; smaller bases are a programmer error
// and panic.
func Corput(i, base uint32) float64 {
	if base < 2 {
		panic(fmt.Sprintf("quasi: van der Corput base %d < 2", base))
	}
	f, denom := 0.0, 1.0
	for ; i > 0; i /= base {
		denom *= float64(base)
		f += float64(i%base) / denom
	}
	return f
}

// halton bases: one prime per supported dimension.
var haltonBases = [...]uint32{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// HaltonMaxDim is the largest dimension count NewHalton accepts.
const HaltonMaxDim = len(haltonBases)

// Halton generalizes Van der Corput to several dimensions by running one
// radical inverse per dimension, each in its own prime base.
type Halton struct {
	bases []uint32
	i     uint32
}

// NewHalton returns a Halton sequence over the unit cube of the given
// dimension, positioned before its first point.
func NewHalton(dim int) (*Halton, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d < 1", ErrInvalidParam, dim)
	}
	if dim > HaltonMaxDim {
		return nil, fmt.Errorf(
			"%w: %d requested, %d available", ErrDimension, dim, HaltonMaxDim,
		)
	}
	return &Halton{bases: haltonBases[:dim]}, nil
}

// Dim returns the dimension of the sequence's points.
func (h *Halton) Dim() int { return len(h.bases) }

// Next returns the next point of the sequence.
func (h *Halton) Next() []float64 {
	p := make([]float64, len(h.bases))
	h.NextAt(p)
	return p
}

// NextAt writes the next point into target, which must have length Dim.
func (h *Halton) NextAt(target []float64) {
	h.i++
	for d, b := range h.bases {
		target[d] = Corput(h.i, b)
	}
}

// Reset rewinds the sequence to before its first point.
func (h *Halton) Reset() { h.i = 0 }
