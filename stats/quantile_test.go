package stats

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileMatchesSortedRank(t *testing.T) {
	xs := sample(t, 53, 2001)

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	for _, p := range []float64{0, 0.01, 0.25, 0.5, 0.75, 0.95, 0.99, 1} {
		rank := int(p * float64(len(xs)))
		if rank == len(xs) {
			rank--
		}
		assert.Equal(t, sorted[rank], Quantile(xs, p), "p = %g", p)
	}
}

func TestQuantileLeavesInputAlone(t *testing.T) {
	xs := []float64{5, 3, 9, 1, 7}
	_ = Quantile(xs, 0.5)
	assert.Equal(t, []float64{5, 3, 9, 1, 7}, xs)
}

func TestMedianSmallInputs(t *testing.T) {
	assert.Equal(t, 4.0, Median([]float64{9, 4, 1}))
	assert.Equal(t, 2.0, Median([]float64{2, 1}))
	assert.Equal(t, 8.0, Median([]float64{8}))
}

func TestQuantileDegenerateInputs(t *testing.T) {
	assert.True(t, math.IsNaN(Quantile(nil, 0.5)))
	assert.True(t, math.IsNaN(Quantile([]float64{1}, -0.1)))
	assert.True(t, math.IsNaN(Quantile([]float64{1}, 1.1)))
}

func BenchmarkQuantile(b *testing.B) {
	xs := make([]float64, 10000)
	for i := range xs {
		xs[i] = float64(i * 7919 % 10000)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Quantile(xs, 0.95)
	}
}
