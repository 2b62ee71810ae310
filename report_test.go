package linefit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsReport(t *testing.T) {
	comp, err := New(nil)
	require.Nil(t, err)

	res, err := comp.Compare(scenarioX, scenarioY, scenarioOffset)
	require.Nil(t, err)

	var b strings.Builder
	require.Nil(t, res.Report(&b))
	report := b.String()

	assert.Contains(t, report, EstimatorMoments)
	assert.Contains(t, report, EstimatorCentered)
	assert.Contains(t, report, EstimatorQR)
	assert.Contains(t, report, "reference slope: 27.269339")
	assert.Contains(t, report, "agree: true")

	assert.Equal(t, report, res.String())
}
