package linefit

import (
	"fmt"
	"io"
	"strings"
)

// Report writes a human readable comparison table followed by the
// discrepancy summary.
func (r *Results) Report(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "line fit comparison with baseline offset %g\n\n", r.Offset)
	fmt.Fprintf(&b, "%-10s %18s %14s %20s %10s\n", "estimator", "offset", "slope", "intercept", "r2")

	rows := make([]Estimate, 0, len(r.Estimates)+1)
	rows = append(rows, r.Estimates...)
	if r.Reference != nil {
		rows = append(rows, *r.Reference)
	}
	for _, e := range rows {
		fmt.Fprintf(&b, "%-10s %18.6f %14.6f %20.6f %10.6f\n", e.Estimator, e.Offset, e.Slope, e.Intercept, e.R2)
	}

	fmt.Fprintf(&b, "\nreference slope: %.6f\n", r.Summary.ReferenceSlope)
	fmt.Fprintf(&b, "offset-robust fits max relative difference: %.3e (agree: %t)\n", r.Summary.StableMaxRelDiff, r.Summary.Agrees)
	fmt.Fprintf(&b, "moments fit with offset relative difference: %.3e\n", r.Summary.MomentsOffsetRelDiff)
	fmt.Fprintf(&b, "cancellation ratio: %.3e\n", r.Summary.CancellationRatio)

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the report as a string.
func (r *Results) String() string {
	var b strings.Builder
	// strings.Builder writes never fail
	_ = r.Report(&b)
	return b.String()
}
