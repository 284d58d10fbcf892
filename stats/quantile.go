package stats

import "math"

// Quantile returns the element of xs at the empirical quantile p in [0, 1]
// without fully sorting the input: it runs quickselect over a scratch copy,
// discarding one partition half per round. O(n) expected. Empty input or a
// p outside [0, 1] yields NaN.
func Quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 || p < 0 || p > 1 {
		return math.NaN()
	}
	rank := int(p * float64(len(xs)))
	if rank == len(xs) {
		rank--
	}
	scratch := make([]float64, len(xs))
	copy(scratch, xs)
	return selectRank(scratch, rank)
}

// Median is the p = 0.5 quantile.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}

// selectRank returns the value with the given 0-based ascending rank,
// permuting xs as it narrows in.
func selectRank(xs []float64, rank int) float64 {
	for len(xs) > 3 {
		piv := partition(xs)
		switch {
		case rank < piv:
			xs = xs[:piv]
		case rank > piv:
			xs, rank = xs[piv+1:], rank-piv-1
		default:
			return xs[piv]
		}
	}
	insertionSort(xs)
	return xs[rank]
}

// partition splits xs around a median-of-three pivot and returns the
// pivot's final index: everything left of it is smaller, everything right
// of it at least as large.
func partition(xs []float64) int {
	n := len(xs)
	lo, mid, hi := 0, n/2, n-1
	if xs[mid] < xs[lo] {
		xs[mid], xs[lo] = xs[lo], xs[mid]
	}
	if xs[hi] < xs[lo] {
		xs[hi], xs[lo] = xs[lo], xs[hi]
	}
	if xs[hi] < xs[mid] {
		xs[hi], xs[mid] = xs[mid], xs[hi]
	}
	pivot := xs[mid]
	xs[mid], xs[hi-1] = xs[hi-1], xs[mid]

	i := lo
	for j := lo; j < hi-1; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[hi-1] = xs[hi-1], xs[i]
	return i
}

func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
