package surface

import (
	"github.com/uyouii/posterior-shades/model"
	"github.com/uyouii/posterior-shades/utils"
)

type CallKind int

const (
	FillBetweenCall CallKind = 1
	PlotCall        CallKind = 2
)

type Call struct {
	Kind  CallKind
	X     []float64
	Lower []float64 // unused for PlotCall
	Upper []float64 // the curve for PlotCall
	Style model.Style
}

// Recorder keeps every call in memory instead of drawing. Err, when set, is
// returned from every call.
type Recorder struct {
	Calls []*Call
	Err   error
}

func NewRecorder() *Recorder {
	return &Recorder{Calls: []*Call{}}
}

func (r *Recorder) FillBetween(x, lo, hi []float64, style model.Style) (Handle, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	call := &Call{
		Kind:  FillBetweenCall,
		X:     utils.CopyFloats(x),
		Lower: utils.CopyFloats(lo),
		Upper: utils.CopyFloats(hi),
		Style: style.Clone(),
	}
	r.Calls = append(r.Calls, call)
	return call, nil
}

func (r *Recorder) Plot(x, y []float64, style model.Style) (Handle, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	call := &Call{
		Kind:  PlotCall,
		X:     utils.CopyFloats(x),
		Upper: utils.CopyFloats(y),
		Style: style.Clone(),
	}
	r.Calls = append(r.Calls, call)
	return call, nil
}

func (r *Recorder) Last() (*Call, bool) {
	if len(r.Calls) == 0 {
		return nil, false
	}
	return r.Calls[len(r.Calls)-1], true
}
