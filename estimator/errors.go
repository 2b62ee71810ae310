package estimator

import (
	"errors"
)

var (
	ErrNoOptions           = errors.New("no initialized estimator options")
	ErrNoTrainingData      = errors.New("no training data")
	ErrLenMismatch         = errors.New("x and y have different lengths")
	ErrInsufficientSamples = errors.New("need at least 2 samples to fit a line")
	ErrZeroVariance        = errors.New("x values have zero variance leaving the slope denominator undefined")
	ErrNotFitted           = errors.New("estimator has not been fitted")
)
