package tree

import "fmt"

// Sample is a resolved numeric result: a scalar for purely deterministic
// subtrees, or a series of draws once a stochastic node has been reached.
type Sample struct {
	values []float64
	series bool
}

// Scalar wraps a deterministic scalar result.
func Scalar(v float64) Sample {
	return Sample{values: []float64{v}}
}

// Series wraps a sample series. The slice is retained, not copied, so a
// cached series keeps its identity across resolutions.
func Series(values []float64) Sample {
	return Sample{values: values, series: true}
}

// IsScalar reports whether the result is a single deterministic value.
func (s Sample) IsScalar() bool {
	return !s.series
}

// Float returns the scalar value. It panics on a series.
func (s Sample) Float() float64 {
	if s.series {
		panic("tree: Float called on a sample series")
	}
	return s.values[0]
}

// Values returns the underlying series, or a single-element slice for a
// scalar. For a cached series this is the cached array itself.
func (s Sample) Values() []float64 {
	return s.values
}

// Len reports the number of values.
func (s Sample) Len() int {
	return len(s.values)
}

// Expand returns a series of exactly n values: a scalar is repeated n
// times, a series must already have length n.
func (s Sample) Expand(n int) ([]float64, error) {
	if !s.series {
		out := make([]float64, n)
		for i := range out {
			out[i] = s.values[0]
		}
		return out, nil
	}
	if len(s.values) != n {
		return nil, fmt.Errorf("tree: series has %d samples, want %d", len(s.values), n)
	}
	return s.values, nil
}

func applyUnary(fn func(float64) float64, s Sample) Sample {
	if !s.series {
		return Scalar(fn(s.values[0]))
	}
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = fn(v)
	}
	return Series(out)
}

// applyBinary applies fn elementwise, broadcasting a scalar operand over a
// series operand. Two series must have equal lengths.
func applyBinary(fn func(a, b float64) float64, a, b Sample) (Sample, error) {
	switch {
	case !a.series && !b.series:
		return Scalar(fn(a.values[0], b.values[0])), nil
	case !a.series:
		out := make([]float64, len(b.values))
		for i, v := range b.values {
			out[i] = fn(a.values[0], v)
		}
		return Series(out), nil
	case !b.series:
		out := make([]float64, len(a.values))
		for i, v := range a.values {
			out[i] = fn(v, b.values[0])
		}
		return Series(out), nil
	}
	if len(a.values) != len(b.values) {
		return Sample{}, fmt.Errorf("tree: operand series lengths differ: %d vs %d", len(a.values), len(b.values))
	}
	out := make([]float64, len(a.values))
	for i := range out {
		out[i] = fn(a.values[i], b.values[i])
	}
	return Series(out), nil
}
