package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenteredOLSFit(t *testing.T) {
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
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			testModel(t, NewCenteredOLS(), td.x, td.y, td.slope, td.intercept, tol)
		})
	}
}

func TestCenteredOLSFitErrors(t *testing.T) {
	testFitErrors(t, func() Model { return NewCenteredOLS() })
}

func TestCenteredOLSNotFitted(t *testing.T) {
	testNotFitted(t, NewCenteredOLS())
}

func TestCenteredOLSOffsetInvariance(t *testing.T) {
	base := NewCenteredOLS()
	require.Nil(t, base.Fit(scenarioX, scenarioY))
	assert.InDelta(t, scenarioSlope, base.Slope(), 1e-3)

	offsets := map[string]float64{
		"small":             1e3,
		"negative":          -5e5,
		"large":             1e6,
		"scenario baseline": scenarioOffset,
	}
	for name, offset := range offsets {
		t.Run(name, func(t *testing.T) {
			shifted := NewCenteredOLS()
			require.Nil(t, shifted.Fit(withOffset(scenarioX, offset), scenarioY))
			assert.InEpsilon(t, base.Slope(), shifted.Slope(), 1e-6)
		})
	}
}

func TestCenteredOLSMatchesMoments(t *testing.T) {
	// without a baseline the two formulas agree to near machine precision
	centered := NewCenteredOLS()
	require.Nil(t, centered.Fit(scenarioX, scenarioY))

	moments := NewMomentsOLS()
	require.Nil(t, moments.Fit(scenarioX, scenarioY))

	assert.InEpsilon(t, centered.Slope(), moments.Slope(), 1e-9)
	assert.InEpsilon(t, centered.Intercept(), moments.Intercept(), 1e-9)
}
