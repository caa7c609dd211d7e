package surface

import (
	"image/color"

	"github.com/pkg/errors"
	"github.com/uyouii/posterior-shades/common"
	"github.com/uyouii/posterior-shades/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	StyleColor     = "color"
	StyleFaceColor = "facecolor"
	StyleEdgeColor = "edgecolor"
	StyleAlpha     = "alpha"
	StyleLineWidth = "linewidth"
	StyleDashes    = "dashes"
	StyleLabel     = "label"
)

var (
	defaultFillColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	defaultLineColor = color.NRGBA{A: 0xff}
)

// Gonum draws on a gonum.org/v1/plot canvas. FillBetween returns a
// *plotter.Polygon and Plot a *plotter.Line.
type Gonum struct {
	canvas *plot.Plot
}

func NewGonum(title, xLabel, yLabel string) *Gonum {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return &Gonum{canvas: p}
}

func (g *Gonum) Canvas() *plot.Plot {
	return g.canvas
}

// Save writes the canvas, the image format follows the file extension.
func (g *Gonum) Save(width, height vg.Length, path string) error {
	return g.canvas.Save(width, height, path)
}

func (g *Gonum) FillBetween(x, lo, hi []float64, style model.Style) (Handle, error) {
	if len(lo) != len(x) || len(hi) != len(x) {
		return nil, errors.Wrapf(common.ErrorLengthMismatch,
			"fill between got x=%d lo=%d hi=%d", len(x), len(lo), len(hi))
	}
	opts, err := parseStyle(style, StyleColor, StyleFaceColor, StyleEdgeColor,
		StyleAlpha, StyleLineWidth, StyleLabel)
	if err != nil {
		return nil, err
	}

	// walk the lower curve forward and the upper one back to close the ring
	ring := make(plotter.XYs, 0, 2*len(x))
	for i := range x {
		ring = append(ring, plotter.XY{X: x[i], Y: lo[i]})
	}
	for i := len(x) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: x[i], Y: hi[i]})
	}

	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, errors.Wrap(err, "build band polygon")
	}

	fill := defaultFillColor
	if opts.face != nil {
		fill = *opts.face
	} else if opts.color != nil {
		fill = *opts.color
	}
	if opts.alpha != nil {
		fill = withAlpha(fill, *opts.alpha)
	}
	poly.Color = fill

	poly.LineStyle.Width = 0
	if opts.edge != nil {
		poly.LineStyle.Color = *opts.edge
		poly.LineStyle.Width = vg.Points(1)
	}
	if opts.width != nil {
		poly.LineStyle.Width = vg.Points(*opts.width)
	}

	g.canvas.Add(poly)
	if opts.label != "" {
		g.canvas.Legend.Add(opts.label, poly)
	}
	return poly, nil
}

func (g *Gonum) Plot(x, y []float64, style model.Style) (Handle, error) {
	if len(y) != len(x) {
		return nil, errors.Wrapf(common.ErrorLengthMismatch, "plot got x=%d y=%d", len(x), len(y))
	}
	opts, err := parseStyle(style, StyleColor, StyleAlpha, StyleLineWidth, StyleDashes, StyleLabel)
	if err != nil {
		return nil, err
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "build median line")
	}

	c := defaultLineColor
	if opts.color != nil {
		c = *opts.color
	}
	if opts.alpha != nil {
		c = withAlpha(c, *opts.alpha)
	}
	line.LineStyle.Color = c
	if opts.width != nil {
		line.LineStyle.Width = vg.Points(*opts.width)
	}
	if opts.dashes != nil {
		dash := vg.Points(*opts.dashes)
		line.LineStyle.Dashes = []vg.Length{dash, dash}
	}

	g.canvas.Add(line)
	if opts.label != "" {
		g.canvas.Legend.Add(opts.label, line)
	}
	return line, nil
}

type styleOptions struct {
	color  *color.NRGBA
	face   *color.NRGBA
	edge   *color.NRGBA
	alpha  *float64
	width  *float64
	dashes *float64
	label  string
}

func parseStyle(style model.Style, allowed ...string) (*styleOptions, error) {
	allowedSet := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}

	opts := &styleOptions{}
	for _, key := range style.Keys() {
		if !allowedSet[key] {
			return nil, errors.Wrapf(common.ErrorInvalidStyle, "unsupported option %q", key)
		}
		value := style[key]

		switch key {
		case StyleColor, StyleFaceColor, StyleEdgeColor:
			s, ok := value.Str()
			if !ok {
				return nil, errors.Wrapf(common.ErrorInvalidStyle, "%s must be a string, got %s", key, value.Kind())
			}
			c, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			switch key {
			case StyleColor:
				opts.color = &c
			case StyleFaceColor:
				opts.face = &c
			default:
				opts.edge = &c
			}
		case StyleAlpha, StyleLineWidth, StyleDashes:
			f, ok := value.Number()
			if !ok {
				return nil, errors.Wrapf(common.ErrorInvalidStyle, "%s must be a number, got %s", key, value.Kind())
			}
			switch key {
			case StyleAlpha:
				if f < 0 || f > 1 {
					return nil, errors.Wrapf(common.ErrorInvalidStyle, "alpha %v out of [0, 1]", f)
				}
				opts.alpha = &f
			case StyleLineWidth:
				if f < 0 {
					return nil, errors.Wrapf(common.ErrorInvalidStyle, "negative linewidth %v", f)
				}
				opts.width = &f
			default:
				if f <= 0 {
					return nil, errors.Wrapf(common.ErrorInvalidStyle, "dashes must be positive, got %v", f)
				}
				opts.dashes = &f
			}
		case StyleLabel:
			s, ok := value.Str()
			if !ok {
				return nil, errors.Wrapf(common.ErrorInvalidStyle, "label must be a string, got %s", value.Kind())
			}
			opts.label = s
		}
	}
	return opts, nil
}
