package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Observations from a narrow band of x values. Adding scenarioOffset to
// every x value leaves the underlying line intact but pushes the raw
// moments formula into catastrophic cancellation.
var (
	scenarioX = []float64{
		0.440225, 0.450230, 0.460235, 0.470241, 0.480245,
		0.490251, 0.500256, 0.510261, 0.520266, 0.530271,
	}
	scenarioY = []float64{
		568.1473, 568.4774, 568.7626, 569.0398, 569.234,
		569.5013, 569.8461, 570.1536, 570.3557, 570.6171,
	}
)

const (
	scenarioOffset = 770656.892832
	scenarioSlope  = 27.2693
)

func withOffset(x []float64, baseline float64) []float64 {
	shifted := make([]float64, len(x))
	for i, v := range x {
		shifted[i] = v + baseline
	}
	return shifted
}

func testModel(t *testing.T, model Model, x, y []float64, slope, intercept, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, slope, model.Slope(), tol)
	assert.InDelta(t, intercept, model.Intercept(), tol)

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol)
}

func testFitErrors(t *testing.T, newModel func() Model) {
	testData := map[string]struct {
		x   []float64
		y   []float64
		err error
	}{
		"no data":       {nil, nil, ErrNoTrainingData},
		"len mismatch":  {[]float64{1, 2}, []float64{1}, ErrLenMismatch},
		"single sample": {[]float64{1}, []float64{1}, ErrInsufficientSamples},
		"identical x":   {[]float64{1, 1, 1}, []float64{4, 5, 6}, ErrZeroVariance},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			err := newModel().Fit(td.x, td.y)
			assert.ErrorIs(t, err, td.err)
		})
	}
}

func testNotFitted(t *testing.T, model Model) {
	_, err := model.Predict([]float64{1, 2})
	assert.ErrorIs(t, err, ErrNotFitted)

	_, err = model.Score([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrNotFitted)
}
