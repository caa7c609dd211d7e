package quantile

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/posterior-shades/common"
	"gonum.org/v1/gonum/stat"
)

func TestPlottingPosition(t *testing.T) {
	tests := []struct {
		name      string
		estimator PlottingPosition
		p         float64
		sorted    []float64
		want      float64
	}{
		{name: "cunnane median odd", estimator: Cunnane, p: 0.5, sorted: []float64{0, 1, 2}, want: 1},
		{name: "cunnane median even", estimator: Cunnane, p: 0.5, sorted: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "cunnane min", estimator: Cunnane, p: 0, sorted: []float64{0, 1, 2}, want: 0},
		{name: "cunnane max", estimator: Cunnane, p: 1, sorted: []float64{0, 1, 2}, want: 2},
		{name: "cunnane lower quartile", estimator: Cunnane, p: 0.25, sorted: []float64{1, 2, 3, 4}, want: 1.45},
		{name: "linear lower quartile", estimator: Linear, p: 0.25, sorted: []float64{1, 2, 3, 4}, want: 1.75},
		{name: "linear max", estimator: Linear, p: 1, sorted: []float64{1, 2, 3, 4}, want: 4},
		{name: "hazen median", estimator: Hazen, p: 0.5, sorted: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "weibull lower quartile", estimator: Weibull, p: 0.25, sorted: []float64{1, 2, 3, 4}, want: 1.25},
		{name: "single value", estimator: Cunnane, p: 0.9, sorted: []float64{7}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.estimator.Quantile(tt.p, tt.sorted)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEmptySampleIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Cunnane.Quantile(0.5, nil)))
	assert.True(t, math.IsNaN(Gonum{Kind: stat.Empirical}.Quantile(0.5, nil)))
}

func TestMonotoneInP(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	sample := make([]float64, 30)
	for i := range sample {
		sample[i] = r.ExpFloat64()
	}
	sort.Float64s(sample)

	estimators := map[string]Estimator{
		"cunnane":   Cunnane,
		"linear":    Linear,
		"hazen":     Hazen,
		"empirical": Gonum{Kind: stat.Empirical},
		"lininterp": Gonum{Kind: stat.LinInterp},
	}
	for name, e := range estimators {
		t.Run(name, func(t *testing.T) {
			prev := math.Inf(-1)
			for i := 0; i <= 100; i++ {
				p := float64(i) / 100
				got := e.Quantile(p, sample)
				assert.GreaterOrEqual(t, got, prev, "p=%v", p)
				assert.GreaterOrEqual(t, got, sample[0])
				assert.LessOrEqual(t, got, sample[len(sample)-1])
				prev = got
			}
		})
	}
}

func TestGonumEmpirical(t *testing.T) {
	got := Gonum{Kind: stat.Empirical}.Quantile(0.5, []float64{1, 2, 3, 4})
	assert.Equal(t, 2.0, got)
}

func TestByName(t *testing.T) {
	e, err := ByName("")
	require.NoError(t, err)
	assert.Equal(t, Default, e)

	e, err = ByName("Linear")
	require.NoError(t, err)
	assert.Equal(t, Linear, e)

	_, err = ByName("nope")
	assert.True(t, errors.Is(err, common.ErrorUnknownEstimator))

	Register("Fixed", Weibull)
	e, err = ByName("fixed")
	require.NoError(t, err)
	assert.Equal(t, Weibull, e)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(0))
	assert.True(t, Valid(1))
	assert.False(t, Valid(-0.01))
	assert.False(t, Valid(math.NaN()))
}

type checkedWeibull struct {
	PlottingPosition
	err error
}

func (e checkedWeibull) QuantileErr(p float64, sorted []float64) (float64, error) {
	return e.Quantile(p, sorted), e.err
}

func TestCompute(t *testing.T) {
	v, err := Compute(Cunnane, 0.5, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = Compute(Cunnane, 0.5, nil)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))

	failure := errors.New("cannot estimate")
	_, err = Compute(checkedWeibull{PlottingPosition: Weibull, err: failure}, 0.5, []float64{1, 2})
	assert.Equal(t, failure, err)

	v, err = Compute(checkedWeibull{PlottingPosition: Weibull}, 0.25, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.25, v, 1e-12)
}
