package dist

import (
	"errors"
	"fmt"
	"math"
)

// Source is a sequence of uniform variates on (0, 1). Consumers in this
// package never care which generator produced them.
type Source interface {
	Next() float64
}

// ErrRetryBudget reports a rejection loop that exhausted its retry
// ceiling instead of looping forever on a degenerate source.
var ErrRetryBudget = errors.New("rejection retry budget exhausted")

// DefaultMaxRetry is the retry ceiling used when a caller passes 0.
const DefaultMaxRetry = 10000

// BoxMuller consumes two uniforms and returns a pair of independent
// standard normal variates: r*cos(theta) and r*sin(theta) with
// r = sqrt(-2 ln x1), theta = 2 pi x2.
func BoxMuller(src Source) (float64, float64) {
	x1, x2 := src.Next(), src.Next()
	r := math.Sqrt(-2 * math.Log(x1))
	theta := 2 * math.Pi * x2
	return r * math.Cos(theta), r * math.Sin(theta)
}

// Polar is Marsaglia's transcendental-free variant of Box-Muller: sample
// (u, v) uniform on (-1, 1)^2 until 0 < u^2+v^2 < 1, then scale by
// sqrt(-2 ln s / s). Each attempt consumes two uniforms; maxRetry bounds
// the attempts (0 means DefaultMaxRetry). The acceptance probability is
// pi/4 per attempt, so the budget only trips on a broken source.
func Polar(src Source, maxRetry int) (float64, float64, error) {
	if maxRetry <= 0 {
		maxRetry = DefaultMaxRetry
	}
	for i := 0; i < maxRetry; i++ {
		u := 2*src.Next() - 1
		v := 2*src.Next() - 1
		s := u*u + v*v
		if s <= 0 || s >= 1 {
			continue
		}
		f := math.Sqrt(-2 * math.Log(s) / s)
		return u * f, v * f, nil
	}
	return 0, 0, fmt.Errorf("%w after %d attempts", ErrRetryBudget, maxRetry)
}

// Normals fills a slice with n standard normal variates via the polar
// method, using both outputs of each accepted pair.
func Normals(src Source, n, maxRetry int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i += 2 {
		a, b, err := Polar(src, maxRetry)
		if err != nil {
			return nil, err
		}
		out[i] = a
		if i+1 < n {
			out[i+1] = b
		}
	}
	return out, nil
}
