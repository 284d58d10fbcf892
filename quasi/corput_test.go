package quasi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorputBase2(t *testing.T) {
	cases := []struct {
		i    uint32
		want float64
	}{
		{0, 0}, {1, 0.5}, {2, 0.25}, {3, 0.75}, {11, 0.8125},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Corput(c.i, 2), 1e-15, "index %d", c.i)
	}
}

func TestCorputBase3(t *testing.T) {
	assert.InDelta(t, 1.0/3, Corput(1, 3), 1e-15)
	assert.InDelta(t, 2.0/3, Corput(2, 3), 1e-15)
	assert.InDelta(t, 1.0/9, Corput(3, 3), 1e-15)
}

func TestCorputPanicsOnBadBase(t *testing.T) {
	assert.Panics(t, func() { Corput(5, 1) })
}

func TestHaltonFirstDimensionIsCorputBase2(t *testing.T) {
	h, err := NewHalton(3)
	require.NoError(t, err)

	for i := uint32(1); i <= 20; i++ {
		p := h.Next()
		assert.InDelta(t, Corput(i, 2), p[0], 1e-15)
		assert.InDelta(t, Corput(i, 3), p[1], 1e-15)
		assert.InDelta(t, Corput(i, 5), p[2], 1e-15)
	}
}

func TestHaltonReset(t *testing.T) {
	h, err := NewHalton(2)
	require.NoError(t, err)

	first := make([][]float64, 5)
	for i := range first {
		first[i] = h.Next()
	}
	h.Reset()
	for i := range first {
		assert.Equal(t, first[i], h.Next())
	}
}

func TestHaltonDimensionErrors(t *testing.T) {
	_, err := NewHalton(0)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = NewHalton(HaltonMaxDim + 1)
	assert.ErrorIs(t, err, ErrDimension)

	_, err = NewHalton(HaltonMaxDim)
	assert.NoError(t, err)
}
