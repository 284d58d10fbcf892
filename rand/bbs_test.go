package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlumBlumShubGolden(t *testing.T) {
	st, err := NewBlumBlumShub(11, 19, 3)
	require.NoError(t, err)

	want := []float64{10.0 / 211, 82.0 / 211, 83.0 / 211}
	got := take(t, st, 3)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-15)
	}
}

func TestBlumBlumShubValidation(t *testing.T) {
	cases := []struct {
		name       string
		p, q, seed uint64
	}{
		{"equal factors", 11, 11, 3},
		{"p not 3 mod 4", 13, 19, 3},
		{"q not 3 mod 4", 11, 17, 3},
		{"p composite", 15, 19, 3},
		{"seed zero", 11, 19, 0},
		{"seed one", 11, 19, 1},
		{"seed multiple of p", 11, 19, 22},
		{"seed multiple of q", 11, 19, 19},
		{"modulus overflow", 4294967291, 46027, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBlumBlumShub(c.p, c.q, c.seed)
			assert.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestBlumBlumShubLargerModulus(t *testing.T) {
	st, err := NewBlumBlumShub(46027, 46051, 12345)
	require.NoError(t, err)

	var u float64
	var s State = st
	for i := 0; i < 10000; i++ {
		s, u = s.Step()
		if u <= 0 || u >= 1 {
			t.Fatalf("variate %g outside (0,1) at step %d", u, i)
		}
	}
}
