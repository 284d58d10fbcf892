package quasi

import (
	"fmt"
	"sort"
)

// Source supplies the uniform jitter consumed by the Latin Hypercube
// sampler. stream.Stream satisfies it; so does any deterministic stub.
type Source interface {
	Next() float64
}

// Hypercube draws n points in the d-dimensional unit cube by Latin
// Hypercube Sampling. Per dimension it draws n jitters from src, ranks
// them, and maps draw i to (rank_i + jitter_i)/n: the ranks form a random
// permutation of the n equal-width partitions of (0, 1), so every
// dimension has exactly one sample per partition.
func Hypercube(n, d int, src Source) ([][]float64, error) {
	if n < 1 || d < 1 {
		return nil, fmt.Errorf(
			"%w: %d samples in %d dimensions", ErrInvalidParam, n, d,
		)
	}

	points := make([][]float64, n)
	for i := range points {
		points[i] = make([]float64, d)
	}

	jit := make([]float64, n)
	idx := make([]int, n)
	for dim := 0; dim < d; dim++ {
		for i := range jit {
			jit[i] = src.Next()
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return jit[idx[a]] < jit[idx[b]] })
		for pos, i := range idx {
			points[i][dim] = (float64(pos) + jit[i]) / float64(n)
		}
	}
	return points, nil
}
