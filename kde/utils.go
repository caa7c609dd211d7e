package kde

import "gonum.org/v1/gonum/floats"

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

func linspace(start, stop float64, num int) []float64 {
	if num < 2 {
		return []float64{start}
	}
	grid := make([]float64, num)
	return floats.Span(grid, start, stop)
}

func InitOnes(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 1
	}
	return res
}

// sortWithWeights sorts a copy of x ascending and moves weights along with it.
func sortWithWeights(x, weights []float64) ([]float64, []float64) {
	sorted := make([]float64, len(x))
	copy(sorted, x)
	inds := make([]int, len(x))
	floats.Argsort(sorted, inds)

	sortedWeights := make([]float64, len(weights))
	for i, idx := range inds {
		sortedWeights[i] = weights[idx]
	}
	return sorted, sortedWeights
}
