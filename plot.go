package linefit

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineXYSeries generates an echart multi-line chart for some arbitrary
// x/value combination. Each series in y must have the same length as the
// input x slice.
func LineXYSeries(title string, seriesName []string, x []float64, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	xAxis := make([]string, 0, len(x))
	for _, v := range x {
		xAxis = append(xAxis, fmt.Sprintf("%g", v))
	}

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(xAxis)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// PlotTo uses the Apache Echarts library to render the last comparison:
// the fitted lines over the unshifted data, the fitted lines over the
// offset data, and the offset fit residuals.
func (c *Comparator) PlotTo(w io.Writer) error {
	if c.fitResults == nil {
		return ErrNoFitResults
	}
	res := c.fitResults
	base := c.fitBase
	shifted := c.fitShifted

	momentsBase := res.Estimate(EstimatorMoments, false)
	centeredBase := res.Estimate(EstimatorCentered, false)
	momentsShifted := res.Estimate(EstimatorMoments, true)
	centeredShifted := res.Estimate(EstimatorCentered, true)

	page := components.NewPage()
	page.AddCharts(
		LineXYSeries(
			"Line Fit",
			[]string{"Data", "Moments", "Centered"},
			base.X,
			[][]float64{
				base.Y,
				predictLine(momentsBase, base.X),
				predictLine(centeredBase, base.X),
			},
		),
	)

	// a zero offset leaves nothing separate to chart for the shifted fits
	if momentsShifted != nil && centeredShifted != nil {
		momentsPred := predictLine(momentsShifted, shifted.X)
		centeredPred := predictLine(centeredShifted, shifted.X)
		page.AddCharts(
			LineXYSeries(
				fmt.Sprintf("Line Fit With Offset %g", res.Offset),
				[]string{"Data", "Moments", "Centered"},
				shifted.X,
				[][]float64{shifted.Y, momentsPred, centeredPred},
			),
			LineXYSeries(
				"Fit Residuals With Offset",
				[]string{"Moments", "Centered"},
				shifted.X,
				[][]float64{
					residuals(momentsPred, shifted.Y),
					residuals(centeredPred, shifted.Y),
				},
			),
		)
	}

	return page.Render(w)
}

// PlotComparison renders the comparison charts of the last Compare call to
// an html file at the given path.
func (c *Comparator) PlotComparison(path string) error {
	if c.fitResults == nil {
		return ErrNoFitResults
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return c.PlotTo(file)
}

func predictLine(e *Estimate, x []float64) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = e.Slope*v + e.Intercept
	}
	return res
}

func residuals(predicted, actual []float64) []float64 {
	res := make([]float64, len(actual))
	for i := range actual {
		res[i] = actual[i] - predicted[i]
	}
	return res
}
