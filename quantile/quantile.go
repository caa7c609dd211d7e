package quantile

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/utils"
	"gonum.org/v1/gonum/stat"
)

// Estimator computes the p-quantile of a non-empty sample sorted ascending.
// NaN is returned when no quantile can be computed.
type Estimator interface {
	Quantile(p float64, sorted []float64) float64
}

// CheckedEstimator reports why a quantile could not be computed.
type CheckedEstimator interface {
	Estimator
	QuantileErr(p float64, sorted []float64) (float64, error)
}

// Compute prefers QuantileErr when e has one, otherwise a NaN result is
// turned into ErrorInvalidValue.
func Compute(e Estimator, p float64, sorted []float64) (float64, error) {
	if checked, ok := e.(CheckedEstimator); ok {
		return checked.QuantileErr(p, sorted)
	}
	v := e.Quantile(p, sorted)
	if math.IsNaN(v) {
		return v, errors.Wrapf(common.ErrorInvalidValue, "no p=%v quantile for %d values", p, len(sorted))
	}
	return v, nil
}

// PlottingPosition is the continuous Hyndman-Fan family, the k-th order
// statistic sits at plotting position (k - Alpha) / (n + 1 - Alpha - Beta).
type PlottingPosition struct {
	Alpha float64
	Beta  float64
}

var (
	// Cunnane gives approximately unbiased quantiles for any distribution
	Cunnane        = PlottingPosition{Alpha: 0.4, Beta: 0.4}
	Linear         = PlottingPosition{Alpha: 1, Beta: 1}
	Weibull        = PlottingPosition{Alpha: 0, Beta: 0}
	MedianUnbiased = PlottingPosition{Alpha: 1.0 / 3, Beta: 1.0 / 3}
	Hazen          = PlottingPosition{Alpha: 0.5, Beta: 0.5}

	Default Estimator = Cunnane
)

func (e PlottingPosition) Quantile(p float64, sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	m := e.Alpha + p*(1-e.Alpha-e.Beta)
	aleph := float64(n)*p + m
	k := int(math.Floor(utils.Clamp(aleph, 1, float64(n-1))))
	gamma := utils.Clamp(aleph-float64(k), 0, 1)
	return (1-gamma)*sorted[k-1] + gamma*sorted[k]
}

// Gonum delegates to stat.Quantile with unit weights.
type Gonum struct {
	Kind stat.CumulantKind
}

func (e Gonum) Quantile(p float64, sorted []float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	return stat.Quantile(p, e.Kind, sorted, nil)
}

var namedEstimators = map[string]Estimator{
	"cunnane":         Cunnane,
	"linear":          Linear,
	"weibull":         Weibull,
	"median-unbiased": MedianUnbiased,
	"hazen":           Hazen,
	"empirical":       Gonum{Kind: stat.Empirical},
	"lininterp":       Gonum{Kind: stat.LinInterp},
}

// Register adds a named estimator, used to plug estimators living in other
// packages into ByName.
func Register(name string, e Estimator) {
	namedEstimators[strings.ToLower(name)] = e
}

func ByName(name string) (Estimator, error) {
	if name == "" {
		return Default, nil
	}
	e, ok := namedEstimators[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(common.ErrorUnknownEstimator, "%q", name)
	}
	return e, nil
}

func Valid(q float64) bool {
	return !math.IsNaN(q) && q >= 0 && q <= 1
}
