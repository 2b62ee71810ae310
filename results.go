package linefit

// Estimator labels used in results and reports.
const (
	EstimatorMoments  = "moments"
	EstimatorCentered = "centered"
	EstimatorQR       = "qr"
)

// Estimate holds the fit of a single estimator over one rendition of the
// sample set.
type Estimate struct {
	// Estimator is the label of the fitting formula used.
	Estimator string `json:"estimator"`
	// Offset is the baseline that was added to every x value before
	// fitting. Zero means the data was fit as provided.
	Offset float64 `json:"offset"`

	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`

	// R2 is the coefficient of determination of the fit.
	R2 float64 `json:"r2"`
	// MSE is the mean squared error of the fit.
	MSE float64 `json:"mse"`
}

// Summary condenses the comparison into the discrepancy figures of
// interest.
type Summary struct {
	// ReferenceSlope is the centered fit slope on the unshifted data.
	ReferenceSlope float64 `json:"reference_slope"`

	// StableMaxRelDiff is the largest relative slope difference between
	// the reference and the fits expected to agree with it: the moments
	// fit without offset and the centered fit with offset.
	StableMaxRelDiff float64 `json:"stable_max_rel_diff"`

	// MomentsOffsetRelDiff is the relative slope difference between the
	// moments fit on offset data and the reference.
	MomentsOffsetRelDiff float64 `json:"moments_offset_rel_diff"`

	// Agrees reports whether all offset-robust fits match the reference
	// within the configured tolerance.
	Agrees bool `json:"agrees"`

	// CancellationRatio estimates the fraction of the moments denominator
	// that is cancellation noise: mean(x+offset)^2 times the machine
	// epsilon over the variance of x. As it approaches 1 the moments fit
	// retains no trustworthy digits.
	CancellationRatio float64 `json:"cancellation_ratio"`
}

// Results holds the four comparison fits, the optional QR reference fit,
// and the discrepancy summary.
type Results struct {
	Offset    float64    `json:"offset"`
	Estimates []Estimate `json:"estimates"`
	Reference *Estimate  `json:"reference,omitempty"`
	Summary   Summary    `json:"summary"`
}

// Estimate returns the fit for the given estimator label and offset state,
// or nil if absent.
func (r *Results) Estimate(estimator string, withOffset bool) *Estimate {
	for i := range r.Estimates {
		e := &r.Estimates[i]
		if e.Estimator != estimator {
			continue
		}
		if withOffset == (e.Offset != 0) {
			return e
		}
	}
	return nil
}
