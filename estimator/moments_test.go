package estimator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMomentsOLSFit(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		x         []float64
		y         []float64
		slope     float64
		intercept float64
	}{
		"exact line": {
			x:         []float64{0, 1, 2, 3, 4},
			y:         []float64{2, 5, 8, 11, 14},
			slope:     3.0,
			intercept: 2.0,
		},
		"two points": {
			x:         []float64{1, 3},
			y:         []float64{-1, 3},
			slope:     2.0,
			intercept: -3.0,
		},
		"negative slope": {
			x:         []float64{-2, -1, 0, 1, 2},
			y:         []float64{5, 4.5, 4, 3.5, 3},
			slope:     -0.5,
			intercept: 4.0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			testModel(t, NewMomentsOLS(), td.x, td.y, td.slope, td.intercept, tol)
		})
	}
}

func TestMomentsOLSFitErrors(t *testing.T) {
	testFitErrors(t, func() Model { return NewMomentsOLS() })
}

func TestMomentsOLSNotFitted(t *testing.T) {
	testNotFitted(t, NewMomentsOLS())
}

func TestMomentsOLSOffsetSensitivity(t *testing.T) {
	base := NewMomentsOLS()
	require.Nil(t, base.Fit(scenarioX, scenarioY))
	assert.InDelta(t, scenarioSlope, base.Slope(), 1e-3)

	shifted := NewMomentsOLS()
	require.Nil(t, shifted.Fit(withOffset(scenarioX, scenarioOffset), scenarioY))

	// the fit silently returns a finite but wrong slope, off by far more
	// than rounding at the scale of the spread of x would allow
	assert.False(t, math.IsNaN(shifted.Slope()))
	assert.False(t, math.IsInf(shifted.Slope(), 0))
	assert.Greater(t, math.Abs(shifted.Slope()-scenarioSlope), 0.1)
}
