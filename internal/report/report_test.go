package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	samples := []float64{5, 1, 3, 2, 4}
	s := Summarize(samples)

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 1.5811, s.StdDev, 1e-4)
	assert.Equal(t, 1.0, s.P05)
	assert.Equal(t, 3.0, s.P50)
	assert.Equal(t, 5.0, s.P95)

	assert.Equal(t, []float64{5, 1, 3, 2, 4}, samples, "input must not be reordered")
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]float64{7})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 7.0, s.Mean)
	assert.Zero(t, s.StdDev)
	assert.Equal(t, 7.0, s.P50)
}

func TestSummaryString(t *testing.T) {
	s := Summary{Count: 100, Mean: 3.25, StdDev: 0.5, P05: 2.5, P50: 3.2, P95: 4.1}
	assert.Equal(t, "n=100 mean=3.25 sd=0.5 p5=2.5 p50=3.2 p95=4.1", s.String())
}
