// Package estimator is a collection of slope/intercept line fit
// implementations sharing the same ordinary least squares solution but
// differing in how the computation rounds. MomentsOLS evaluates the
// moments-of-products formula, CenteredOLS evaluates the centered-sums
// formula, and QROLS solves the normal problem through a QR factorization.
package estimator

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// MinSamples is the smallest number of observations that still determines
// a line.
const MinSamples = 2

// Model is a line fit estimator producing a slope and intercept for
// y = slope*x + intercept.
type Model interface {
	Fit(x, y []float64) error
	Predict(x []float64) ([]float64, error)
	Score(x, y []float64) (float64, error)
	Slope() float64
	Intercept() float64
}

// validateTrainingData checks the shared fit preconditions. All x values
// being identical makes the slope denominator exactly zero in every
// formula, so it is rejected here before any estimator divides by it.
func validateTrainingData(x, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return ErrNoTrainingData
	}
	if len(x) != len(y) {
		return fmt.Errorf("x has length %d, but y has length %d, %w", len(x), len(y), ErrLenMismatch)
	}
	if len(x) < MinSamples {
		return fmt.Errorf("got %d samples, %w", len(x), ErrInsufficientSamples)
	}

	distinct := false
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return ErrZeroVariance
	}
	return nil
}

// evalLine evaluates slope*x + intercept over the input samples.
func evalLine(slope, intercept float64, x []float64) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = slope*v + intercept
	}
	return res
}

// scoreLine computes the coefficient of determination of a fitted line
// against the observed values.
func scoreLine(m Model, x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0.0, fmt.Errorf("x has length %d, but y has length %d, %w", len(x), len(y), ErrLenMismatch)
	}
	predicted, err := m.Predict(x)
	if err != nil {
		return 0.0, err
	}
	return stat.RSquaredFrom(predicted, y, nil), nil
}
