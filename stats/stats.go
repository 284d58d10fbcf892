/*package stats supplies the handful of descriptive-statistics primitives
the rest of the engine consumes: mean, sample variance, covariance,
correlation, and a one-pass summary over a slice of variates. It depends
only on slices of float64; the generators upstream are irrelevant here.*/
package stats

import "math"

// Mean returns the arithmetic mean of xs, or NaN for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the unbiased sample variance of xs. Slices shorter than
// two elements have no sample variance and yield NaN.
func Variance(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mu := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - mu
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// Covariance returns the unbiased sample covariance of the paired samples
// xs and ys. Mismatched or too-short inputs yield NaN.
func Covariance(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return math.NaN()
	}
	mx, my := Mean(xs), Mean(ys)
	sum := 0.0
	for i := range xs {
		sum += (xs[i] - mx) * (ys[i] - my)
	}
	return sum / float64(len(xs)-1)
}

// Correlation returns the Pearson correlation of the paired samples.
func Correlation(xs, ys []float64) float64 {
	return Covariance(xs, ys) / (StdDev(xs) * StdDev(ys))
}

// Summary is a one-pass description of a sample.
type Summary struct {
	N        int
	Min, Max float64
	Mean     float64
	Variance float64
}

// Summarize computes a Summary of xs.
func Summarize(xs []float64) Summary {
	s := Summary{
		N:        len(xs),
		Min:      math.Inf(1),
		Max:      math.Inf(-1),
		Mean:     Mean(xs),
		Variance: Variance(xs),
	}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	return s
}
