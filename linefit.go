// Package linefit compares two algebraically equivalent least squares line
// fit formulas to expose the catastrophic cancellation one of them suffers
// when the x values carry a large constant baseline.
package linefit

import (
	"errors"
	"fmt"
	"math"

	"github.com/nmlab/go-linefit/dataset"
	"github.com/nmlab/go-linefit/estimator"
	"github.com/nmlab/go-linefit/stats"
)

var (
	ErrNegativeTolerance = errors.New("agreement tolerance must not be negative")
	ErrResLenMismatch    = errors.New("predicted and actual have different lengths")
	ErrNoFitResults      = errors.New("no fit results, run Compare first")
)

// epsilon is the distance between 1.0 and the next larger float64.
const epsilon = 0x1p-52

// Comparator fits the moments and centered estimators on the same data
// with and without a baseline offset and reports the discrepancy between
// the resulting slopes.
type Comparator struct {
	opt *Options

	fitBase    *dataset.SampleSet
	fitShifted *dataset.SampleSet
	fitResults *Results
}

// New creates a new instance of a Comparator using the provided options.
// If no options are provided a default is used.
func New(opt *Options) (*Comparator, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Comparator{
		opt: opt,
	}, nil
}

// Compare fits both estimators to the input samples as provided and again
// after adding offset uniformly to every x value, producing four slope
// estimates. A data set that already carries a baseline can be compared
// against its centered rendition by passing a negative offset. The three
// offset-robust fits are expected to agree with each other near machine
// precision while the moments fit over offset data may silently drift.
func (c *Comparator) Compare(x, y []float64, offset float64) (*Results, error) {
	base, err := dataset.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create sample set, %w", err)
	}
	shifted := base.WithOffset(offset)

	momentsBase, err := fitEstimate(estimator.NewMomentsOLS(), EstimatorMoments, base, 0)
	if err != nil {
		return nil, err
	}
	momentsShifted, err := fitEstimate(estimator.NewMomentsOLS(), EstimatorMoments, shifted, offset)
	if err != nil {
		return nil, err
	}
	centeredBase, err := fitEstimate(estimator.NewCenteredOLS(), EstimatorCentered, base, 0)
	if err != nil {
		return nil, err
	}
	centeredShifted, err := fitEstimate(estimator.NewCenteredOLS(), EstimatorCentered, shifted, offset)
	if err != nil {
		return nil, err
	}

	res := &Results{
		Offset:    offset,
		Estimates: []Estimate{momentsBase, momentsShifted, centeredBase, centeredShifted},
	}

	if c.opt.IncludeReference {
		qr, err := estimator.NewQROLS(nil)
		if err != nil {
			return nil, fmt.Errorf("unable to initialize reference estimator, %w", err)
		}
		ref, err := fitEstimate(qr, EstimatorQR, base, 0)
		if err != nil {
			return nil, err
		}
		res.Reference = &ref
	}

	summary, err := c.summarize(centeredBase, momentsBase, centeredShifted, momentsShifted, base, shifted)
	if err != nil {
		return nil, err
	}
	res.Summary = summary

	c.fitBase = base
	c.fitShifted = shifted
	c.fitResults = res
	return res, nil
}

func fitEstimate(model estimator.Model, label string, ds *dataset.SampleSet, offset float64) (Estimate, error) {
	if err := model.Fit(ds.X, ds.Y); err != nil {
		return Estimate{}, fmt.Errorf("unable to fit %s estimator, %w", label, err)
	}
	r2, err := model.Score(ds.X, ds.Y)
	if err != nil {
		return Estimate{}, fmt.Errorf("unable to score %s estimator, %w", label, err)
	}
	predicted, err := model.Predict(ds.X)
	if err != nil {
		return Estimate{}, fmt.Errorf("unable to predict with %s estimator, %w", label, err)
	}
	mse, err := MSE(predicted, ds.Y)
	if err != nil {
		return Estimate{}, fmt.Errorf("unable to compute mean squared error of %s estimator, %w", label, err)
	}

	return Estimate{
		Estimator: label,
		Offset:    offset,
		Slope:     model.Slope(),
		Intercept: model.Intercept(),
		R2:        r2,
		MSE:       mse,
	}, nil
}

func (c *Comparator) summarize(centeredBase, momentsBase, centeredShifted, momentsShifted Estimate, base, shifted *dataset.SampleSet) (Summary, error) {
	s := Summary{
		ReferenceSlope: centeredBase.Slope,
	}
	s.StableMaxRelDiff = math.Max(
		RelativeDifference(momentsBase.Slope, s.ReferenceSlope),
		RelativeDifference(centeredShifted.Slope, s.ReferenceSlope),
	)
	s.MomentsOffsetRelDiff = RelativeDifference(momentsShifted.Slope, s.ReferenceSlope)
	s.Agrees = s.StableMaxRelDiff <= c.opt.AgreementTolerance

	meanShifted, err := stats.Mean(shifted.X)
	if err != nil {
		return Summary{}, fmt.Errorf("unable to compute mean of offset x, %w", err)
	}
	variance, err := stats.Variance(base.X)
	if err != nil {
		return Summary{}, fmt.Errorf("unable to compute variance of x, %w", err)
	}
	if variance > 0 {
		s.CancellationRatio = meanShifted * meanShifted * epsilon / variance
	}
	return s, nil
}

// TrainingData returns the unshifted sample set of the last comparison.
func (c *Comparator) TrainingData() *dataset.SampleSet {
	return c.fitBase
}

// ShiftedData returns the offset sample set of the last comparison.
func (c *Comparator) ShiftedData() *dataset.SampleSet {
	return c.fitShifted
}

// FitResults returns the results of the last comparison.
func (c *Comparator) FitResults() *Results {
	return c.fitResults
}
