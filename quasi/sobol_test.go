package quasi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayCode(t *testing.T) {
	want := []uint32{0, 1, 3, 2, 6, 7, 5, 4}
	for n, g := range want {
		assert.Equal(t, g, Gray(uint32(n)))
	}
}

func TestGrayCodeNeighborsDifferInOneBit(t *testing.T) {
	for n := uint32(1); n < 4096; n++ {
		diff := Gray(n) ^ Gray(n-1)
		if diff&(diff-1) != 0 {
			t.Fatalf("Gray(%d) and Gray(%d) differ in more than one bit", n-1, n)
		}
	}
}

func TestSobolGoldenFirstDimension(t *testing.T) {
	seq, err := NewSobol(1)
	require.NoError(t, err)

	want := []float64{
		0, 0.5, 0.75, 0.25, 0.375, 0.875, 0.625, 0.125, 0.1875, 0.6875,
	}
	for i, w := range want {
		p := seq.Next()
		assert.InDelta(t, w, p[0], 1e-9, "point %d", i)
	}
}

func TestSobolSecondDimension(t *testing.T) {
	seq, err := NewSobol(2)
	require.NoError(t, err)

	want := []float64{0, 0.5, 0.25, 0.75, 0.375, 0.875, 0.125, 0.625}
	for i, w := range want {
		p := seq.Next()
		assert.InDelta(t, w, p[1], 1e-9, "point %d", i)
	}
}

func TestSobolReset(t *testing.T) {
	seq, err := NewSobol(3)
	require.NoError(t, err)

	first := make([][]float64, 16)
	for i := range first {
		first[i] = seq.Next()
	}
	seq.Reset()
	for i := range first {
		assert.Equal(t, first[i], seq.Next())
	}
}

func TestSobolDimensionErrors(t *testing.T) {
	_, err := NewSobol(0)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = NewSobol(SobolMaxDim + 1)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = NewSobol(SobolMaxDim)
	assert.NoError(t, err)
}

// Each dimension of the first 2^k points hits every multiple of 2^-k
// exactly once. This is the defining uniformity property of the sequence.
func TestSobolStratification(t *testing.T) {
	const k, n = 6, 64

	seq, err := NewSobol(SobolMaxDim)
	require.NoError(t, err)

	counts := make([][n]int, SobolMaxDim)
	p := make([]float64, SobolMaxDim)
	for i := 0; i < n; i++ {
		seq.NextAt(p)
		for d, x := range p {
			cell := int(x * n)
			if cell == n {
				cell--
			}
			counts[d][cell]++
		}
	}
	for d := range counts {
		for cell, c := range counts[d] {
			if c != 1 {
				t.Fatalf("dimension %d cell %d hit %d times", d, cell, c)
			}
		}
	}
}

func TestRightmostZero(t *testing.T) {
	assert.Equal(t, uint32(0), rightmostZero(0))
	assert.Equal(t, uint32(1), rightmostZero(1))
	assert.Equal(t, uint32(0), rightmostZero(2))
	assert.Equal(t, uint32(3), rightmostZero(7))
	assert.Panics(t, func() { rightmostZero(^uint32(0)) })
}

func BenchmarkSobolNextAt(b *testing.B) {
	seq, err := NewSobol(SobolMaxDim)
	if err != nil {
		b.Fatal(err)
	}
	p := make([]float64, SobolMaxDim)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq.NextAt(p)
	}
}
