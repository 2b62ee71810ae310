package estimator

import (
	"fmt"

	"github.com/nmlab/go-linefit/stats"
)

// MomentsOLS computes the least squares line from raw second moments,
//
//	slope = (mean(xy) - mean(x)*mean(y)) / (mean(x^2) - mean(x)^2)
//
// The denominator subtracts two quantities of order mean(x)^2, so when the
// x values share a large common baseline the true variance term is buried
// under cancellation noise of order mean(x)^2 times the machine epsilon.
// The fit still returns a finite answer in that regime, only its accuracy
// degrades. CenteredOLS is the shift-robust alternative.
type MomentsOLS struct {
	slope     float64
	intercept float64
	fitted    bool
}

// NewMomentsOLS initializes a moments-of-products least squares model
// ready for fitting.
func NewMomentsOLS() *MomentsOLS {
	return &MomentsOLS{}
}

// Fit the line according to the given training data.
func (m *MomentsOLS) Fit(x, y []float64) error {
	if err := validateTrainingData(x, y); err != nil {
		return err
	}

	meanX, err := stats.Mean(x)
	if err != nil {
		return fmt.Errorf("unable to compute mean of x, %w", err)
	}
	meanY, err := stats.Mean(y)
	if err != nil {
		return fmt.Errorf("unable to compute mean of y, %w", err)
	}
	meanXY, err := stats.MeanProduct(x, y)
	if err != nil {
		return fmt.Errorf("unable to compute mean of x*y, %w", err)
	}
	meanXX, err := stats.MeanSquares(x)
	if err != nil {
		return fmt.Errorf("unable to compute mean of x^2, %w", err)
	}

	denom := meanXX - meanX*meanX
	if denom == 0 {
		return ErrZeroVariance
	}

	m.slope = (meanXY - meanX*meanY) / denom
	m.intercept = meanY - m.slope*meanX
	m.fitted = true
	return nil
}

// Predict evaluates the fitted line over the input samples.
func (m *MomentsOLS) Predict(x []float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return evalLine(m.slope, m.intercept, x), nil
}

// Score returns the coefficient of determination of the fit against the
// given samples.
func (m *MomentsOLS) Score(x, y []float64) (float64, error) {
	if !m.fitted {
		return 0.0, ErrNotFitted
	}
	return scoreLine(m, x, y)
}

// Slope returns the fitted slope.
func (m *MomentsOLS) Slope() float64 {
	return m.slope
}

// Intercept returns the fitted intercept.
func (m *MomentsOLS) Intercept() float64 {
	return m.intercept
}
