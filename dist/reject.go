package dist

import "fmt"

// RejectionSampler draws from an arbitrary density on [xmin, xmax] by
// acceptance-rejection under a flat envelope of height pdfMax: propose x
// uniform on the interval and y uniform on [0, pdfMax], accept iff
// y <= pdf(x). The caller must guarantee pdfMax >= max pdf on the
// interval; undershooting it skews the output rather than failing.
type RejectionSampler struct {
	pdf        func(float64) float64
	xmin, xmax float64
	pdfMax     float64
	maxRetry   int
}

// NewRejectionSampler validates the envelope. maxRetry 0 selects
// DefaultMaxRetry.
func NewRejectionSampler(
	pdf func(float64) float64, xmin, xmax, pdfMax float64, maxRetry int,
) (*RejectionSampler, error) {
	switch {
	case pdf == nil:
		return nil, fmt.Errorf("dist: nil pdf")
	case !(xmax > xmin):
		return nil, fmt.Errorf(
			"dist: empty support [%g, %g]", xmin, xmax,
		)
	case !(pdfMax > 0):
		return nil, fmt.Errorf("dist: envelope height %g <= 0", pdfMax)
	}
	if maxRetry <= 0 {
		maxRetry = DefaultMaxRetry
	}
	return &RejectionSampler{
		pdf: pdf, xmin: xmin, xmax: xmax, pdfMax: pdfMax, maxRetry: maxRetry,
	}, nil
}

// Sample draws one value, consuming two uniforms per attempt. It returns
// ErrRetryBudget if nothing is accepted within the retry ceiling, which
// indicates an envelope far above the density mass.
func (r *RejectionSampler) Sample(src Source) (float64, error) {
	for i := 0; i < r.maxRetry; i++ {
		x := r.xmin + (r.xmax-r.xmin)*src.Next()
		y := r.pdfMax * src.Next()
		if y <= r.pdf(x) {
			return x, nil
		}
	}
	return 0, fmt.Errorf(
		"%w after %d attempts", ErrRetryBudget, r.maxRetry,
	)
}

// SampleN draws n values.
func (r *RejectionSampler) SampleN(src Source, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		x, err := r.Sample(src)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}
