package kde

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/quantile"
)

func TestKdeQuantileSymmetric(t *testing.T) {
	k, err := NewKDEUnivariate([]float64{2, -1, 0, 1, -2}, nil, 1, 3)
	require.NoError(t, err)

	median, err := k.Quantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, median.Value, 1e-3)
	assert.Equal(t, 0.5, median.Quantile)

	lower, err := k.Quantile(0.1)
	require.NoError(t, err)
	upper, err := k.Quantile(0.9)
	require.NoError(t, err)
	assert.Less(t, lower.Value, median.Value)
	assert.Greater(t, upper.Value, median.Value)
	assert.InDelta(t, -lower.Value, upper.Value, 1e-3)
}

func TestKdeCdfNormalised(t *testing.T) {
	k, err := NewKDEUnivariate([]float64{1, 2, 2.5, 4, 7}, nil, 0, 0)
	require.NoError(t, err)

	cdf, err := k.Cdf()
	require.NoError(t, err)
	require.Len(t, cdf, KdeGridSize)
	assert.Equal(t, 0.0, cdf[0].Value)
	assert.InDelta(t, 1.0, cdf[len(cdf)-1].Value, 1e-12)
	for i := 1; i < len(cdf); i++ {
		assert.GreaterOrEqual(t, cdf[i].Value, cdf[i-1].Value)
	}
}

func TestKdeSortsWeightsWithValues(t *testing.T) {
	k, err := NewKDEUnivariate([]float64{3, 1, 2}, []float64{30, 10, 20}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, k.Endog)
	assert.Equal(t, []float64{10, 20, 30}, k.Weights)
}

func TestKdeDegenerate(t *testing.T) {
	for _, values := range [][]float64{{3}, {3, 3, 3}} {
		k, err := NewKDEUnivariate(values, nil, 1, 3)
		require.NoError(t, err)
		for _, p := range []float64{0, 0.5, 1} {
			q, err := k.Quantile(p)
			require.NoError(t, err)
			assert.Equal(t, 3.0, q.Value)
		}
	}
}

func TestKdeInvalidInput(t *testing.T) {
	_, err := NewKDEUnivariate(nil, nil, 1, 3)
	assert.True(t, errors.Is(err, common.ErrorEmptyData))

	_, err = NewKDEUnivariate([]float64{1, 2}, []float64{1}, 1, 3)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
}

func TestEstimatorRegistered(t *testing.T) {
	e, err := quantile.ByName("kde")
	require.NoError(t, err)

	got := e.Quantile(0.5, []float64{-2, -1, 0, 1, 2})
	assert.InDelta(t, 0, got, 1e-3)
	assert.Equal(t, 5.0, Estimator{}.Quantile(0.3, []float64{5}))
}

func largeSample(n int) []float64 {
	r := rand.New(rand.NewSource(42))
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = r.NormFloat64()
	}
	sort.Float64s(sample)
	return sample
}

func TestKdeLargeSampleGridCapped(t *testing.T) {
	sample := largeSample(5000)

	start := time.Now()
	k, err := NewKDEUnivariate(sample, nil, 1, 3)
	require.NoError(t, err)
	cdf, err := k.Cdf()
	require.NoError(t, err)
	require.Len(t, cdf, KdeGridSize)

	median, err := k.Quantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, median.Value, 0.1)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestEstimatorQuantileErr(t *testing.T) {
	_, err := Estimator{}.QuantileErr(0.5, nil)
	assert.True(t, errors.Is(err, common.ErrorEmptyData))

	v, err := Estimator{}.QuantileErr(0.5, []float64{-1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-3)
}

func BenchmarkEstimatorQuantile(b *testing.B) {
	sample := largeSample(2000)
	e := Estimator{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Quantile(0.5, sample)
	}
}
