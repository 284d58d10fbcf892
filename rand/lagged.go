package rand

import "fmt"

// LagOp is the combining operator of a lagged-history generator.
type LagOp int

const (
	Add LagOp = iota
	Sub
	Xor
)

func (op LagOp) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Xor:
		return "xor"
	}
	return "unknown"
}

// LaggedFibonacci generalizes the lagged Fibonacci family
// x_n = op(x_{n-j}, x_{n-k}) mod m. The state is two ordered history
// windows: ancient holds the k-j oldest values and recent the j newest,
// oldest first in both. Each step combines the two window heads, migrates
// the recent head to the ancient tail, and appends the new value to the
// recent tail, so the combined window length never changes.
type LaggedFibonacci struct {
	op              LagOp
	m               uint64
	ancient, recent []uint64
}

// NewLaggedFibonacci builds a generator from an explicit initial history of
// length k, oldest value first, with short lag j.
func NewLaggedFibonacci(op LagOp, j int, init []uint64, m uint64) (LaggedFibonacci, error) {
	k := len(init)
	switch {
	case op < Add || op > Xor:
		return LaggedFibonacci{}, fmt.Errorf(
			"%w: unknown lag operator %d", ErrInvalidParam, int(op),
		)
	case m < 2 || m > 1<<62:
		return LaggedFibonacci{}, fmt.Errorf(
			"%w: modulus %d outside [2, 2^62]", ErrInvalidParam, m,
		)
	case j <= 0 || j >= k:
		return LaggedFibonacci{}, fmt.Errorf(
			"%w: lag %d outside (0, %d)", ErrInvalidParam, j, k,
		)
	}
	for i, v := range init {
		if v >= m {
			return LaggedFibonacci{}, fmt.Errorf(
				"%w: history[%d] = %d not below modulus %d",
				ErrInvalidParam, i, v, m,
			)
		}
	}

	g := LaggedFibonacci{op: op, m: m}
	g.ancient = append([]uint64{}, init[:k-j]...)
	g.recent = append([]uint64{}, init[k-j:]...)
	return g, nil
}

// NewGFSR is the xor specialization over 32-bit words (a generalized
// feedback shift register).
func NewGFSR(j int, init []uint64) (LaggedFibonacci, error) {
	return NewLaggedFibonacci(Xor, j, init, 1<<32)
}

// NewSubtractive is the subtractive specialization with lags (24, 55) and
// modulus 2^31, the classic additive-family generator with period 2^55-1.
// The initial history is warmed up from seed with the 69069 recurrence.
func NewSubtractive(seed uint64) LaggedFibonacci {
	init := make([]uint64, 55)
	s := uint32(seed)
	for i := range init {
		s = mtSeedMul*s + 1
		init[i] = uint64(s >> 1)
	}
	g, err := NewLaggedFibonacci(Sub, 24, init, 1<<31)
	if err != nil {
		// The warmup satisfies every constructor constraint.
		panic(err)
	}
	return g
}

func (g LaggedFibonacci) Step() (State, float64) {
	r, a := g.recent[0], g.ancient[0]

	var v uint64
	switch g.op {
	case Add:
		v = (r + a) % g.m
	case Sub:
		v = (r + g.m - a) % g.m
	case Xor:
		v = (r ^ a) % g.m
	}

	ancient := make([]uint64, len(g.ancient))
	copy(ancient, g.ancient[1:])
	ancient[len(ancient)-1] = r

	recent := make([]uint64, len(g.recent))
	copy(recent, g.recent[1:])
	recent[len(recent)-1] = v

	g.ancient, g.recent = ancient, recent
	return g, float64(v+1) / float64(g.m+2)
}
