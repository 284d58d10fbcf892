package rand

const (
	mtN = 624
	mtM = 397

	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff

	// Knuth's 69069 recurrence, used by the original 1999 seeding routine.
	mtSeedMul = 0x10DCD
)

// Twister is the 32-bit MT19937 Mersenne Twister. The state is a 624-word
// vector plus a read cursor. The vector is immutable once built: stepping
// across a twist boundary allocates a fresh vector instead of rewriting the
// old one, so retained states replay exactly. Between twists a step only
// advances the cursor, which keeps the generator O(1) amortized.
type Twister struct {
	mt  *[mtN]uint32
	mti int
}

// NewTwister builds the initial state vector from seed with the original
// sgenrand scheme: thread s' = 69069*s + 1 and pack the high 16 bits of
// two consecutive states into each word.
func NewTwister(seed uint32) Twister {
	mt := new([mtN]uint32)
	s := seed
	for i := range mt {
		mt[i] = s & 0xffff0000
		s = mtSeedMul*s + 1
		mt[i] |= s >> 16
		s = mtSeedMul*s + 1
	}
	return Twister{mt: mt, mti: mtN}
}

func (g Twister) Step() (State, float64) {
	if g.mti >= mtN {
		g.mt = mtTwist(g.mt)
		g.mti = 0
	}
	y := mtTemper(g.mt[g.mti])
	g.mti++
	// The variate divides the tempered word by 2^32-1, so exactly two
	// words map to the endpoints. Skip them to keep the output inside
	// (0, 1).
	if y == 0 || y == ^uint32(0) {
		return g.Step()
	}
	return g, float64(y) / float64(^uint32(0))
}

// mtTwist recomputes the full state vector. It works on a copy: the twist
// uses already-recomputed words for indices past N-M, so the update order
// of the classic in-place loop is preserved.
func mtTwist(src *[mtN]uint32) *[mtN]uint32 {
	mt := new([mtN]uint32)
	*mt = *src

	mag := [2]uint32{0, mtMatrixA}
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y := mt[kk]&mtUpperMask | mt[kk+1]&mtLowerMask
		mt[kk] = mt[kk+mtM] ^ y>>1 ^ mag[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y := mt[kk]&mtUpperMask | mt[kk+1]&mtLowerMask
		mt[kk] = mt[kk+mtM-mtN] ^ y>>1 ^ mag[y&1]
	}
	y := mt[mtN-1]&mtUpperMask | mt[0]&mtLowerMask
	mt[mtN-1] = mt[mtM-1] ^ y>>1 ^ mag[y&1]

	return mt
}

// mtTemper is the standard MT19937 output transform.
func mtTemper(y uint32) uint32 {
	y ^= y >> 11
	y ^= y << 7 & 0x9d2c5680
	y ^= y << 15 & 0xefc60000
	y ^= y >> 18
	return y
}
