package value

import (
	"math"

	"github.com/csa-go/csa/geometry"
)

// Gaussian returns a value set weighting (i, j) by a Gaussian falloff
// of metric(i, j): exp(-d^2 / (2*sigma^2)) below cutoff, zero beyond
// it. It is typically multiplied into a random mask's probability
// value set (RandomValueSet) to get distance-dependent connection
// probability.
func Gaussian(sigma, cutoff float64, metric geometry.Metric) Set {
	sigma22 := 2 * sigma * sigma
	return Generic(func(i, j int) float64 {
		d := metric(i, j)
		if d >= cutoff {
			return 0
		}
		return math.Exp(-d * d / sigma22)
	})
}
