package dataset

import (
	"math/rand/v2"
)

// GenerateX produces n evenly spaced x values starting at start.
func GenerateX(n int, start, step float64) []float64 {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, start+step*float64(i))
	}
	return x
}

// GenerateLineY evaluates slope*x + intercept over the input values.
func GenerateLineY(x []float64, slope, intercept float64) []float64 {
	y := make([]float64, 0, len(x))
	for i := 0; i < len(x); i++ {
		y = append(y, slope*x[i]+intercept)
	}
	return y
}

// GenerateNoise produces n normally distributed values scaled by
// noiseScale.
func GenerateNoise(n int, noiseScale float64) []float64 {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*noiseScale)
	}
	return y
}

// GenerateLine builds a sample set on a noiseless line, convenient for
// exercising estimators against a known slope and intercept.
func GenerateLine(n int, start, step, slope, intercept float64) (*SampleSet, error) {
	x := GenerateX(n, start, step)
	y := GenerateLineY(x, slope, intercept)
	return New(x, y)
}
