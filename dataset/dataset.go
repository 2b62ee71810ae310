// Package dataset holds paired (x, y) observations for line fitting along
// with helpers to shift, generate, and load them.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrNoData             = errors.New("no observations")
	ErrDatasetLenMismatch = errors.New("x values have a different length than y values")
)

// SampleSet represents a set of paired observations. Both slices are always
// of the same length.
type SampleSet struct {
	X []float64
	Y []float64
}

// New returns an instance of a SampleSet given x and y value slices. The
// input slices are copied so later mutation of the caller's data does not
// leak into the set.
func New(x, y []float64) (*SampleSet, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrNoData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf(
			"x values have length of %d, but y values has a length of %d, %w",
			len(x), len(y), ErrDatasetLenMismatch,
		)
	}

	xSeries := make([]float64, len(x))
	ySeries := make([]float64, len(y))
	copy(xSeries, x)
	copy(ySeries, y)
	return &SampleSet{
		X: xSeries,
		Y: ySeries,
	}, nil
}

// Len returns the number of observation pairs.
func (s *SampleSet) Len() int {
	return len(s.X)
}

// Copy returns a deep copy of the sample set.
func (s *SampleSet) Copy() *SampleSet {
	xSeries := make([]float64, len(s.X))
	ySeries := make([]float64, len(s.Y))
	copy(xSeries, s.X)
	copy(ySeries, s.Y)
	return &SampleSet{
		X: xSeries,
		Y: ySeries,
	}
}

// WithOffset returns a copy of the sample set with the baseline added
// uniformly to every x value. The y values are untouched.
func (s *SampleSet) WithOffset(baseline float64) *SampleSet {
	shifted := s.Copy()
	floats.AddConst(baseline, shifted.X)
	return shifted
}
