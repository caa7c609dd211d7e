package utils

import "math"

func Clamp(v, lower, upper float64) float64 {
	return math.Min(math.Max(v, lower), upper)
}

func CopyFloats(src []float64) []float64 {
	if src == nil {
		return nil
	}
	res := make([]float64, len(src))
	copy(res, src)
	return res
}
