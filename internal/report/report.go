// Package report summarizes resolved sample series for presentation.
package report

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one resolved series.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	P05    float64
	P50    float64
	P95    float64
}

// Summarize computes the summary of samples. The input is not modified.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	s := Summary{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P05:   stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P50:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// String renders the summary on one line for CLI output.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4g sd=%.4g p5=%.4g p50=%.4g p95=%.4g",
		s.Count, s.Mean, s.StdDev, s.P05, s.P50, s.P95)
}
