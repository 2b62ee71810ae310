// Package stats provides the summary statistics backing the line fit
// estimators. All reductions accumulate serially in index order so that a
// fit over the same samples always rounds the same way.
package stats

import (
	"errors"
	"fmt"
)

var (
	ErrNoData      = errors.New("no data points")
	ErrLenMismatch = errors.New("input slices have different lengths")
)

// Mean returns the arithmetic mean of vals.
func Mean(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrNoData
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), nil
}

// MeanProduct returns the mean of the elementwise products of x and y.
func MeanProduct(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("x has length %d, but y has length %d, %w", len(x), len(y), ErrLenMismatch)
	}
	if len(x) == 0 {
		return 0, ErrNoData
	}

	sum := 0.0
	for i := 0; i < len(x); i++ {
		sum += x[i] * y[i]
	}
	return sum / float64(len(x)), nil
}

// MeanSquares returns the mean of the squared values of x.
func MeanSquares(x []float64) (float64, error) {
	return MeanProduct(x, x)
}

// Variance returns the population variance of x computed from centered
// differences. The centering makes the result insensitive to a constant
// shift of the input.
func Variance(x []float64) (float64, error) {
	mean, err := Mean(x)
	if err != nil {
		return 0, err
	}

	ss := 0.0
	for _, v := range x {
		diff := v - mean
		ss += diff * diff
	}
	return ss / float64(len(x)), nil
}

// Spread returns the difference between the largest and smallest value of x.
func Spread(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrNoData
	}

	minVal := x[0]
	maxVal := x[0]
	for _, v := range x[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal - minVal, nil
}
