package estimator

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QROptions represents input options to run the QR least squares fit
type QROptions struct {
	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool
}

// Validate runs basic validation on QR options
func (o *QROptions) Validate() (*QROptions, error) {
	if o == nil {
		o = NewDefaultQROptions()
	}
	return o, nil
}

// NewDefaultQROptions returns a default set of QR least squares options
func NewDefaultQROptions() *QROptions {
	return &QROptions{
		FitIntercept: true,
	}
}

// QROLS computes the least squares line through a QR factorization of the
// design matrix. It serves as an independent reference for the closed-form
// moments and centered estimators.
type QROLS struct {
	opt *QROptions

	slope     float64
	intercept float64
	fitted    bool
}

// NewQROLS initializes a QR least squares model ready for fitting
func NewQROLS(opt *QROptions) (*QROLS, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &QROLS{
		opt: opt,
	}, nil
}

// Fit the line according to the given training data.
func (o *QROLS) Fit(x, y []float64) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if err := validateTrainingData(x, y); err != nil {
		return err
	}

	m := len(x)
	n := 1

	xCopy := make([]float64, m)
	copy(xCopy, x)
	var design mat.Matrix = mat.NewDense(m, 1, xCopy)

	if o.opt.FitIntercept {
		ones := make([]float64, m)
		floats.AddConst(1.0, ones)
		onesMx := mat.NewDense(1, m, ones)
		xT := design.T()

		var xWithOnes mat.Dense
		xWithOnes.Stack(onesMx, xT)
		design = xWithOnes.T()
		_, n = design.Dims()
	}

	yCopy := make([]float64, m)
	copy(yCopy, y)
	target := mat.NewDense(1, m, yCopy)

	qr := new(mat.QR)
	qr.Factorize(design)

	q := new(mat.Dense)
	r := new(mat.Dense)

	qr.QTo(q)
	qr.RTo(r)
	yq := new(mat.Dense)
	yq.Mul(target, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	if o.opt.FitIntercept {
		o.intercept = c[0]
		o.slope = c[1]
	} else {
		o.intercept = 0.0
		o.slope = c[0]
	}
	o.fitted = true
	return nil
}

// Predict evaluates the fitted line over the input samples.
func (o *QROLS) Predict(x []float64) ([]float64, error) {
	if !o.fitted {
		return nil, ErrNotFitted
	}
	return evalLine(o.slope, o.intercept, x), nil
}

// Score returns the coefficient of determination of the fit against the
// given samples.
func (o *QROLS) Score(x, y []float64) (float64, error) {
	if !o.fitted {
		return 0.0, ErrNotFitted
	}
	return scoreLine(o, x, y)
}

// Slope returns the fitted slope.
func (o *QROLS) Slope() float64 {
	return o.slope
}

// Intercept returns the fitted intercept.
func (o *QROLS) Intercept() float64 {
	return o.intercept
}
