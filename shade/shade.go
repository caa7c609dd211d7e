// Package shade draws the spread of many candidate predictions, for
// example one curve per sample of a posterior chain, as a median line and a
// shaded band between two pointwise quantiles.
//
//	x := chain.Linspace(0, 1, 100)
//	s := shade.New(x, nil, nil)
//	for _, c := range samples {
//		s.Add(chain.Predict(x, c))
//	}
//	s.Band(canvas, shade.DefaultHalfWidth, nil)
//	s.Line(canvas, nil)
//
// A Shade is not safe for concurrent use, callers adding curves from
// several goroutines must synchronise themselves.
package shade

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/model"
	"github.com/uyouii/posterior-shades/quantile"
	"github.com/uyouii/posterior-shades/surface"
	"github.com/uyouii/posterior-shades/utils"
)

// 0.5 +- 0.341 covers one sigma of a normal distribution
const DefaultHalfWidth = 0.341

type Shade struct {
	x  []float64
	ys [][]float64

	shadeStyle model.Style
	lineStyle  model.Style
	estimator  quantile.Estimator
}

func New(x []float64, shadeStyle, lineStyle model.Style) *Shade {
	return &Shade{
		x:          utils.CopyFloats(x),
		ys:         [][]float64{},
		shadeStyle: shadeStyle.Clone(),
		lineStyle:  lineStyle.Clone(),
		estimator:  quantile.Default,
	}
}

// Add appends one candidate curve, it must have one finite value per x.
func (s *Shade) Add(y []float64) error {
	if len(y) != len(s.x) {
		return errors.Wrapf(common.ErrorLengthMismatch,
			"curve %d has %d points, x has %d", len(s.ys), len(y), len(s.x))
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(common.ErrorInvalidValue,
				"curve %d has non-finite value %v at position %d", len(s.ys), v, i)
		}
	}
	s.ys = append(s.ys, utils.CopyFloats(y))
	return nil
}

func (s *Shade) SetShadeStyle(style model.Style) {
	s.shadeStyle = style.Clone()
}

func (s *Shade) SetLineStyle(style model.Style) {
	s.lineStyle = style.Clone()
}

// SetEstimator pins the quantile estimator, nil restores quantile.Default.
func (s *Shade) SetEstimator(e quantile.Estimator) {
	if e == nil {
		e = quantile.Default
	}
	s.estimator = e
}

func (s *Shade) X() []float64 {
	return utils.CopyFloats(s.x)
}

// Curves returns copies of the added curves in insertion order.
func (s *Shade) Curves() [][]float64 {
	res := make([][]float64, len(s.ys))
	for i, y := range s.ys {
		res[i] = utils.CopyFloats(y)
	}
	return res
}

func (s *Shade) Len() int {
	return len(s.ys)
}

func (s *Shade) ShadeStyle() model.Style {
	return s.shadeStyle.Clone()
}

func (s *Shade) LineStyle() model.Style {
	return s.lineStyle.Clone()
}

// Quantile returns the q-quantile at every x position, each position only
// looks at the values the curves have there.
func (s *Shade) Quantile(q float64) ([]float64, error) {
	if len(s.ys) == 0 {
		return nil, common.ErrorEmptyData
	}
	if !quantile.Valid(q) {
		return nil, errors.Wrapf(common.ErrorInvalidQuantile, "q=%v", q)
	}

	res := make([]float64, len(s.x))
	column := make([]float64, len(s.ys))
	for i := range s.x {
		for j, y := range s.ys {
			column[j] = y[i]
		}
		sort.Float64s(column)
		v, err := quantile.Compute(s.estimator, q, column)
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		res[i] = v
	}
	return res, nil
}

func (s *Shade) QuantileCurve(q float64) (*model.QuantileCurve, error) {
	y, err := s.Quantile(q)
	if err != nil {
		return nil, err
	}
	return &model.QuantileCurve{
		Quantile: q,
		X:        s.X(),
		Y:        y,
	}, nil
}

// QuantileAt is the q-quantile at position i only.
func (s *Shade) QuantileAt(q float64, i int) (*model.QuantileValue, error) {
	if i < 0 || i >= len(s.x) {
		return nil, errors.Wrapf(common.ErrorInvalidValue, "position %d out of [0, %d)", i, len(s.x))
	}
	if len(s.ys) == 0 {
		return nil, common.ErrorEmptyData
	}
	if !quantile.Valid(q) {
		return nil, errors.Wrapf(common.ErrorInvalidQuantile, "q=%v", q)
	}

	column := make([]float64, len(s.ys))
	for j, y := range s.ys {
		column[j] = y[i]
	}
	sort.Float64s(column)
	v, err := quantile.Compute(s.estimator, q, column)
	if err != nil {
		return nil, errors.Wrapf(err, "position %d", i)
	}
	return &model.QuantileValue{
		Quantile: q,
		Value:    v,
	}, nil
}

// BandCurves returns the 0.5-halfWidth and 0.5+halfWidth quantile curves.
func (s *Shade) BandCurves(halfWidth float64) ([]float64, []float64, error) {
	if !(halfWidth >= 0 && halfWidth <= 0.5) {
		return nil, nil, errors.Wrapf(common.ErrorInvalidQuantile, "half width %v out of [0, 0.5]", halfWidth)
	}
	lo, err := s.Quantile(0.5 - halfWidth)
	if err != nil {
		return nil, nil, err
	}
	hi, err := s.Quantile(0.5 + halfWidth)
	if err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

// Band fills the region between the 0.5-halfWidth and 0.5+halfWidth
// quantiles. overrides win over the stored shade style.
func (s *Shade) Band(canvas surface.Surface, halfWidth float64, overrides model.Style) (surface.Handle, error) {
	lo, hi, err := s.BandCurves(halfWidth)
	if err != nil {
		return nil, err
	}
	return canvas.FillBetween(s.X(), lo, hi, s.shadeStyle.Merge(overrides))
}

// Line plots the pointwise median. overrides win over the stored line style.
func (s *Shade) Line(canvas surface.Surface, overrides model.Style) (surface.Handle, error) {
	mid, err := s.Quantile(0.5)
	if err != nil {
		return nil, err
	}
	return canvas.Plot(s.X(), mid, s.lineStyle.Merge(overrides))
}
