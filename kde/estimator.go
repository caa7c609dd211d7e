package kde

import (
	"math"

	"github.com/uyouii/posterior-shades/quantile"
)

func init() {
	quantile.Register("kde", Estimator{})
}

// Estimator smooths every column with a gaussian kde before reading the
// quantile off its cdf. Tails reach cut bandwidths past the sample, so
// p=0 and p=1 fall outside the observed range.
type Estimator struct {
	BwAdjust float64
	Cut      float64
}

// Quantile returns NaN on failure, QuantileErr tells why.
func (e Estimator) Quantile(p float64, sorted []float64) float64 {
	v, err := e.QuantileErr(p, sorted)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (e Estimator) QuantileErr(p float64, sorted []float64) (float64, error) {
	k, err := NewKDEUnivariate(sorted, nil, e.BwAdjust, e.Cut)
	if err != nil {
		return math.NaN(), err
	}
	q, err := k.Quantile(p)
	if err != nil {
		return math.NaN(), err
	}
	return q.Value, nil
}
