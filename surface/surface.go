// Package surface holds the plotting surfaces a shade draws on.
package surface

import "github.com/uyouii/posterior-shades/model"

// Handle is whatever the surface created for a call, opaque to callers.
type Handle interface{}

type Surface interface {
	// FillBetween draws the region between lo and hi over the x domain.
	FillBetween(x, lo, hi []float64, style model.Style) (Handle, error)
	// Plot draws a single curve over the x domain.
	Plot(x, y []float64, style model.Style) (Handle, error)
}
