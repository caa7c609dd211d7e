package chain

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/shade"
)

func TestReadCSV(t *testing.T) {
	input := `# slope, intercept
1.0, 0.5
2, -1

0.5,0
`
	rows, err := ReadCSV(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.5}, {2, -1}, {0.5, 0}}, rows)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a number", input: "1,2\n3,abc\n"},
		{name: "ragged rows", input: "1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(tt.input))
			assert.True(t, errors.Is(err, common.ErrorInvalidValue), "err = %v", err)
		})
	}
}

func TestPolynomial(t *testing.T) {
	assert.Equal(t, 7.0, Polynomial([]float64{2, 1})(3))
	assert.Equal(t, 10.0, Polynomial([]float64{1, 0, 1})(3))
	assert.Equal(t, 0.0, Polynomial(nil)(3))
}

func TestPredictAndLinspace(t *testing.T) {
	x := Linspace(0, 1, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, x, 1e-12)
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))

	assert.InDeltaSlice(t, []float64{1, 1.5, 2, 2.5, 3}, Predict(x, []float64{2, 1}), 1e-12)
}

func TestFill(t *testing.T) {
	x := Linspace(0, 2, 3)
	s := shade.New(x, nil, nil)

	rows := [][]float64{{1, 0}, {1, 1}, {1, 2}}
	require.NoError(t, Fill(context.Background(), s, rows))
	assert.Equal(t, 3, s.Len())

	median, err := s.Quantile(0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, median, 1e-12)
}
