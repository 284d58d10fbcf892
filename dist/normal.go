/*package dist converts uniform variates into normally distributed ones.
It contains the two classic transform methods (Box-Muller and Marsaglia's
polar variant), a generic rejection sampler for arbitrary bounded
densities, and closed-form approximations of the standard normal CDF and
its inverse.

The package is agnostic to where its uniforms come from: everything
consumes a Source, which stream.Stream satisfies.*/
package dist

import "math"

// Normal CDF coefficients of Abramowitz & Stegun formula 26.2.17.
const (
	asK  = 0.2316419
	asB1 = 0.319381530
	asB2 = -0.356563782
	asB3 = 1.781477937
	asB4 = -1.821255978
	asB5 = 1.330274429
)

// NormalCDF approximates the standard normal distribution function with
// the Abramowitz-Stegun 26.2.17 polynomial. The absolute error is below
// 7.5e-8 everywhere.
func NormalCDF(x float64) float64 {
	if x < 0 {
		return 1 - NormalCDF(-x)
	}
	k := 1 / (1 + asK*x)
	poly := k * (asB1 + k*(asB2+k*(asB3+k*(asB4+k*asB5))))
	pdf := math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
	return 1 - pdf*poly
}

// Beasley-Springer rational approximation for the central region
// |p - 0.5| <= 0.42, with Moro's log-log polynomial in the tails.
var (
	bsA = [4]float64{
		2.50662823884, -18.61500062529, 41.39119773534, -25.44106049637,
	}
	bsB = [4]float64{
		-8.47351093090, 23.08336743743, -21.06224101826, 3.13082909833,
	}
	moroC = [9]float64{
		0.3374754822726147, 0.9761690190917186, 0.1607979714918209,
		0.0276438810333863, 0.0038405729373609, 0.0003951896511919,
		0.0000321767881768, 0.0000002888167364, 0.0000003960315187,
	}
)

// NormalInvCDF approximates the standard normal quantile function by the
// Beasley-Springer-Moro method: a rational fit on the central region and a
// polynomial in log(-log(p)) past |p - 0.5| = 0.42. Arguments outside
// (0, 1) yield NaN.
func NormalInvCDF(p float64) float64 {
	if !(p > 0 && p < 1) {
		return math.NaN()
	}

	u := p - 0.5
	if math.Abs(u) <= 0.42 {
		r := u * u
		num := u * (bsA[0] + r*(bsA[1]+r*(bsA[2]+r*bsA[3])))
		den := 1 + r*(bsB[0]+r*(bsB[1]+r*(bsB[2]+r*bsB[3])))
		return num / den
	}

	r := p
	if u > 0 {
		r = 1 - p
	}
	s := math.Log(-math.Log(r))
	x := moroC[0]
	t := 1.0
	for _, c := range moroC[1:] {
		t *= s
		x += c * t
	}
	if u < 0 {
		return -x
	}
	return x
}
