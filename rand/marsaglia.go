package rand

import "fmt"

// word32Denom maps a full-range 32-bit word k to (k+1)/(2^32+2), keeping
// the variate strictly inside (0, 1).
const word32Denom = float64(1<<32) + 2

// MWC is Marsaglia's two-lane multiply-with-carry generator. Each lane
// keeps a 16-bit value and its carry packed into one 32-bit word:
//
//	z' = 36969*(z & 0xffff) + (z >> 16)
//	w' = 18000*(w & 0xffff) + (w >> 16)
//
// and the output word is (z' << 16) + w'.
type MWC struct {
	z, w uint32
}

// NewMWC seeds both lanes. A zero lane is absorbing and is rejected.
func NewMWC(z, w uint32) (MWC, error) {
	if z == 0 || w == 0 {
		return MWC{}, fmt.Errorf("%w: zero MWC lane seed", ErrInvalidParam)
	}
	return MWC{z: z, w: w}, nil
}

func (g MWC) Step() (State, float64) {
	g.z = 36969*(g.z&0xffff) + g.z>>16
	g.w = 18000*(g.w&0xffff) + g.w>>16
	k := g.z<<16 + g.w
	return g, (float64(k) + 1) / word32Denom
}

// ShiftRegister is Marsaglia's 3-shift register generator (SHR3), a single
// 32-bit xorshift word with shifts 17, 13, 5.
type ShiftRegister struct {
	x uint32
}

// NewShiftRegister rejects the zero seed, which the xorshift recurrence
// never leaves.
func NewShiftRegister(seed uint32) (ShiftRegister, error) {
	if seed == 0 {
		return ShiftRegister{}, fmt.Errorf(
			"%w: shift register seeded with 0", ErrInvalidParam,
		)
	}
	return ShiftRegister{x: seed}, nil
}

func (g ShiftRegister) Step() (State, float64) {
	g.x ^= g.x << 17
	g.x ^= g.x >> 13
	g.x ^= g.x << 5
	return g, (float64(g.x) + 1) / word32Denom
}
