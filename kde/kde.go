package kde

import (
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Attach the density estimate to the KDEUnivariate class.
type KDEUnivariate struct {
	Weights []float64

	gridSize int

	// An adjustment factor for the bw. Bandwidth becomes bw * adjust.
	bwAdjust float64

	// Defines the length of the grid past the lowest and highest values
	// of x so that the kernel goes to zero. The end points are
	// ``min(x) - cut * bw`` and ``max(x) + cut * bw``.
	cut float64

	// endogenous variable, sorted
	Endog []float64

	density    []model.Density
	cdf        []model.Cdf
	grid       []float64
	bw         float64
	fited      bool
	degenerate bool
	kernel     *GaussianKernel
}

func NewKDEUnivariate(endog []float64, weights []float64,
	bwAdjust float64, cut float64) (*KDEUnivariate, error) {
	if len(endog) == 0 {
		return nil, errors.Wrap(common.ErrorEmptyData, "kde needs at least one value")
	}

	if len(weights) == 0 {
		weights = InitOnes(len(endog))
	} else if len(weights) != len(endog) {
		return nil, errors.Wrapf(common.ErrorInvalidValue,
			"kde got %d weights for %d values", len(weights), len(endog))
	}

	if bwAdjust <= 0 {
		bwAdjust = KdeDefaultBwAdjust
	}
	if cut <= 0 {
		cut = KdeDefaultCut
	}

	endog, weights = sortWithWeights(endog, weights)

	kde := &KDEUnivariate{
		Weights:  weights,
		gridSize: KdeGridSize,
		bwAdjust: bwAdjust,
		cut:      cut,
		Endog:    endog,
	}

	return kde, nil
}

func (kde *KDEUnivariate) Kdensity() ([]model.Density, float64) {
	if kde.fited {
		return kde.density, kde.bw
	}

	kernel := NewGaussianKernel()
	bandWidth := NewNormalReferenceBandWidth(kernel)

	bw := bandWidth.BandWidth(kde.Endog) * kde.bwAdjust
	kde.fited = true
	if bw <= 0 || math.IsNaN(bw) {
		// single value or no spread, the distribution is a point mass
		kde.degenerate = true
		kde.density = []model.Density{{X: kde.Endog[0], Value: math.Inf(1)}}
		return kde.density, 0
	}
	kernel.SetH(bw)

	a := floats.Min(kde.Endog) - kde.cut*bw
	b := floats.Max(kde.Endog) + kde.cut*bw
	grid := linspace(a, b, kde.gridSize)

	matrix := make([][]float64, len(grid))
	for i := 0; i < len(grid); i++ {
		matrix[i] = make([]float64, len(kde.Endog))
		for j := 0; j < len(kde.Endog); j++ {
			matrix[i][j] = (kde.Endog[j] - grid[i]) / bw
		}
	}

	matrix = kernel.EvaluateMatrix(matrix)

	q := floats.Sum(kde.Weights)

	res := make([]model.Density, len(grid))
	for i := 0; i < len(grid); i++ {
		res[i] = model.Density{
			X:     grid[i],
			Value: floats.Dot(matrix[i], kde.Weights) / (q * bw),
		}
	}

	kde.density = res
	kde.bw = bw
	kde.grid = grid
	kde.kernel = kernel
	kde.kernel.SetWeights(kde.Weights)

	return res, bw
}

// Cdf integrates the density cell by cell over the grid with the trapezoid
// rule and rescales the result so the last point is exactly 1.
func (kde *KDEUnivariate) Cdf() ([]model.Cdf, error) {
	if !kde.fited {
		kde.Kdensity()
	}

	if len(kde.cdf) > 0 {
		return kde.cdf, nil
	}

	if kde.degenerate {
		kde.cdf = []model.Cdf{{X: kde.Endog[0], Value: 1}}
		return kde.cdf, nil
	}

	dens := make([]float64, len(kde.density))
	for i, d := range kde.density {
		dens[i] = d.Value
	}

	res := make([]model.Cdf, 0, len(kde.grid))
	res = append(res, model.Cdf{X: kde.grid[0], Value: 0})

	var cumSum float64
	for i := 1; i < len(kde.grid); i++ {
		cumSum += integrate.Trapezoidal(kde.grid[i-1:i+1], dens[i-1:i+1])
		res = append(res, model.Cdf{
			X:     kde.grid[i],
			Value: cumSum,
		})
	}

	if cumSum <= 0 || math.IsNaN(cumSum) {
		return nil, errors.Wrap(common.ErrorInvalidValue, "kde density integrates to zero")
	}
	for i := range res {
		res[i].Value /= cumSum
	}

	kde.cdf = res
	return res, nil
}

func (kde *KDEUnivariate) Quantile(p float64) (*model.QuantileValue, error) {
	cdf, err := kde.Cdf()
	if err != nil {
		return nil, err
	}

	if p <= cdf[0].Value {
		return &model.QuantileValue{
			Quantile: p,
			Value:    cdf[0].X,
		}, nil
	}

	if p >= cdf[len(cdf)-1].Value {
		return &model.QuantileValue{
			Quantile: p,
			Value:    cdf[len(cdf)-1].X,
		}, nil
	}

	for i := 1; i < len(cdf); i++ {
		if cdf[i].Value > p {
			lowerX, lowerP := cdf[i-1].X, cdf[i-1].Value
			upperX, upperP := cdf[i].X, cdf[i].Value
			value := lowerX + (upperX-lowerX)*(p-lowerP)/(upperP-lowerP)
			return &model.QuantileValue{
				Quantile: p,
				Value:    value,
			}, nil
		}
	}
	return &model.QuantileValue{
		Quantile: p,
		Value:    cdf[len(cdf)-1].X,
	}, nil
}
