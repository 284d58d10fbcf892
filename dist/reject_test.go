package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantforge/randkit/rand"
	"github.com/quantforge/randkit/stats"
	"github.com/quantforge/randkit/stream"
)

func TestRejectionSamplerAcceptsFirstDraw(t *testing.T) {
	flat := func(x float64) float64 { return 1 }
	r, err := NewRejectionSampler(flat, 0, 1, 1, 0)
	require.NoError(t, err)

	// Candidate x = 0.3 with threshold y = 0.9 <= pdf(x) = 1: accepted on
	// the first attempt, consuming exactly two uniforms.
	src := &stubSource{vals: []float64{0.3, 0.9}}
	x, err := r.Sample(src)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x, 1e-15)
	assert.Equal(t, 2, src.i)
}

func TestRejectionSamplerRetriesUntilAccept(t *testing.T) {
	// pdf is zero on the left half of the support, so the candidate 0.2 is
	// rejected and 0.8 accepted.
	step := func(x float64) float64 {
		if x < 0.5 {
			return 0
		}
		return 1
	}
	r, err := NewRejectionSampler(step, 0, 1, 1, 0)
	require.NoError(t, err)

	src := &stubSource{vals: []float64{0.2, 0.5, 0.8, 0.5}}
	x, err := r.Sample(src)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x, 1e-15)
	assert.Equal(t, 4, src.i)
}

func TestRejectionSamplerBudgetExhausted(t *testing.T) {
	zero := func(x float64) float64 { return 0 }
	r, err := NewRejectionSampler(zero, 0, 1, 1, 16)
	require.NoError(t, err)

	st := rand.NewTwister(1)
	_, err = r.Sample(stream.New(st))
	assert.ErrorIs(t, err, ErrRetryBudget)
}

func TestRejectionSamplerValidation(t *testing.T) {
	flat := func(x float64) float64 { return 1 }

	_, err := NewRejectionSampler(nil, 0, 1, 1, 0)
	assert.Error(t, err)

	_, err = NewRejectionSampler(flat, 1, 1, 1, 0)
	assert.Error(t, err)

	_, err = NewRejectionSampler(flat, 0, 1, 0, 0)
	assert.Error(t, err)
}

// Sampling the triangular density 2x on [0, 1] should reproduce its first
// two moments: mean 2/3, variance 1/18.
func TestRejectionSamplerTriangularMoments(t *testing.T) {
	tri := func(x float64) float64 { return 2 * x }
	r, err := NewRejectionSampler(tri, 0, 1, 2, 0)
	require.NoError(t, err)

	st := rand.NewTwister(777)
	xs, err := r.SampleN(stream.New(st), 100000)
	require.NoError(t, err)

	assert.InDelta(t, 2.0/3, stats.Mean(xs), 0.005)
	assert.InDelta(t, 1.0/18, stats.Variance(xs), 0.005)
	assert.InDelta(t, math.Sqrt(1.0/18), stats.StdDev(xs), 0.005)
}
