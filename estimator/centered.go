package estimator

import (
	"fmt"

	"github.com/nmlab/go-linefit/stats"
)

// CenteredOLS computes the least squares line from centered sums,
//
//	slope = sum((x-meanX)*(y-meanY)) / sum((x-meanX)^2)
//
// Each term subtracts values of comparable magnitude before squaring, so a
// constant baseline added to every x cancels inside the individual
// differences. The result is stable under large offsets up to rounding at
// the scale of the spread of x.
type CenteredOLS struct {
	slope     float64
	intercept float64
	fitted    bool
}

// NewCenteredOLS initializes a centered-sums least squares model ready for
// fitting.
func NewCenteredOLS() *CenteredOLS {
	return &CenteredOLS{}
}

// Fit the line according to the given training data.
func (c *CenteredOLS) Fit(x, y []float64) error {
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

	var sxy, sxx float64
	for i := 0; i < len(x); i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxy += dx * dy
		sxx += dx * dx
	}
	if sxx == 0 {
		return ErrZeroVariance
	}

	c.slope = sxy / sxx
	c.intercept = meanY - c.slope*meanX
	c.fitted = true
	return nil
}

// Predict evaluates the fitted line over the input samples.
func (c *CenteredOLS) Predict(x []float64) ([]float64, error) {
	if !c.fitted {
		return nil, ErrNotFitted
	}
	return evalLine(c.slope, c.intercept, x), nil
}

// Score returns the coefficient of determination of the fit against the
// given samples.
func (c *CenteredOLS) Score(x, y []float64) (float64, error) {
	if !c.fitted {
		return 0.0, ErrNotFitted
	}
	return scoreLine(c, x, y)
}

// Slope returns the fitted slope.
func (c *CenteredOLS) Slope() float64 {
	return c.slope
}

// Intercept returns the fitted intercept.
func (c *CenteredOLS) Intercept() float64 {
	return c.intercept
}
