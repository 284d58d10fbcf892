/*package rand provides the pseudo random number generators used by the
randkit simulation engine: the linear congruential family, Marsaglia's
multiply-with-carry and 3-shift register generators, the Mersenne Twister,
lagged-history generators, and the Blum-Blum-Shub quadratic residue
generator.

Every generator is exposed through the same functional contract: a State
value whose Step method returns a successor State together with one uniform
variate on the open interval (0, 1). States are values. Stepping never
modifies the receiver, so a retained State can be replayed at any time and
will reproduce the same tail of the sequence bit for bit.

	st, err := rand.NewParkMiller(1)
	if err != nil { ... }
	st2, u := st.Step()

The stream package wraps a State in a pull-based sequence with the usual
Next/Take/Reset conveniences.
*/
package rand

import (
	"errors"
	"fmt"
)

// ErrInvalidParam wraps every constructor-time parameter rejection in this
// package.
var ErrInvalidParam = errors.New("invalid generator parameter")

// State is one point in a generator's orbit. Step is pure: the same State
// always produces the same successor and variate.
type State interface {
	Step() (State, float64)
}

// Named constructs a generator from its registry name using the stock
// parametrization for that algorithm. It is the constructor used by the
// command line tool; library callers normally use the per-algorithm
// constructors, which expose the full parameter surface.
func Named(name string, seed uint64) (State, error) {
	switch name {
	case "park-miller":
		return NewParkMiller(seed%2147483646 + 1)
	case "randu":
		return NewRANDU(seed%2147483647 | 1)
	case "wichmann-hill":
		s := seed%30000 + 1
		return NewWichmannHill(uint32(s), uint32(s), uint32(s))
	case "mwc":
		return NewMWC(uint32(seed)|1, uint32(seed>>32)|1)
	case "shift-register":
		return NewShiftRegister(uint32(seed) | 1)
	case "twister":
		return NewTwister(uint32(seed)), nil
	case "subtractive":
		return NewSubtractive(seed), nil
	case "bbs":
		// Stock prime pair; both are 3 mod 4 and their product fits in
		// 32 bits. The folded seed stays below the smaller prime, which
		// keeps it coprime to the modulus and clear of the idempotents.
		return NewBlumBlumShub(46027, 46051, seed%46021+2)
	}
	return nil, fmt.Errorf("%w: unknown generator %q", ErrInvalidParam, name)
}
