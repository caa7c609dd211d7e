// Package chain turns rows of sampled model parameters into candidate
// curves for a shade.
package chain

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/shade"
	"github.com/uyouii/posterior-shades/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// ReadCSV reads one parameter vector per row. Lines starting with '#' are
// comments, every row must have the same number of columns.
func ReadCSV(ctx context.Context, r io.Reader) ([][]float64, error) {
	logger := utils.GetLogger(ctx)

	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	rows := [][]float64{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(common.ErrorInvalidValue, "read chain: %v", err)
		}

		line, _ := reader.FieldPos(0)
		row := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(common.ErrorInvalidValue, "line %d column %d: %q", line, i+1, field)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	logger.Debug("read chain", zap.Int("rows", len(rows)))
	return rows, nil
}

// Polynomial evaluates params as polynomial coefficients, highest degree
// first, so [a, b] is a*x + b.
func Polynomial(params []float64) func(float64) float64 {
	return func(x float64) float64 {
		res := 0.0
		for _, c := range params {
			res = res*x + c
		}
		return res
	}
}

func Predict(x []float64, params []float64) []float64 {
	f := Polynomial(params)
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = f(v)
	}
	return res
}

func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, stop)
}

// Fill adds the prediction of every row to s.
func Fill(ctx context.Context, s *shade.Shade, rows [][]float64) error {
	logger := utils.GetLogger(ctx)

	x := s.X()
	for i, params := range rows {
		if err := s.Add(Predict(x, params)); err != nil {
			logger.Error("add prediction failed", zap.Int("row", i), zap.Error(err))
			return err
		}
	}

	logger.Info("chain added", zap.Int("curves", s.Len()), zap.Int("points", len(x)))
	return nil
}
