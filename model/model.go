package model

import "fmt"

type Density struct {
	X     float64
	Value float64
}

type Cdf struct {
	X     float64
	Value float64
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

func (v *QuantileValue) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("q%v=%v", v.Quantile, v.Value)
}

// QuantileCurve is a pointwise quantile over the shared x grid.
type QuantileCurve struct {
	Quantile float64   `json:"q"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

func (c *QuantileCurve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Y)
}

func (c *QuantileCurve) At(i int) *QuantileValue {
	return &QuantileValue{
		Quantile: c.Quantile,
		Value:    c.Y[i],
	}
}
