package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	s := Scalar(3.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 3.5, s.Float())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []float64{3.5}, s.Values())
}

func TestSeries(t *testing.T) {
	values := []float64{1, 2, 3}
	s := Series(values)
	assert.False(t, s.IsScalar())
	assert.Equal(t, 3, s.Len())
	assert.Same(t, &values[0], &s.Values()[0], "series must retain the slice")
	assert.Panics(t, func() { s.Float() })
}

func TestExpand(t *testing.T) {
	t.Run("scalar repeats", func(t *testing.T) {
		out, err := Scalar(2).Expand(4)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 2, 2, 2}, out)
	})

	t.Run("matching series passes through", func(t *testing.T) {
		values := []float64{1, 2, 3}
		out, err := Series(values).Expand(3)
		require.NoError(t, err)
		assert.Same(t, &values[0], &out[0])
	})

	t.Run("mismatched series errors", func(t *testing.T) {
		_, err := Series([]float64{1, 2, 3}).Expand(5)
		assert.ErrorContains(t, err, "3 samples, want 5")
	})
}

func TestApplyBinary(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }

	t.Run("scalar with scalar", func(t *testing.T) {
		got, err := applyBinary(add, Scalar(2), Scalar(3))
		require.NoError(t, err)
		assert.True(t, got.IsScalar())
		assert.Equal(t, 5.0, got.Float())
	})

	t.Run("scalar broadcasts over series", func(t *testing.T) {
		got, err := applyBinary(add, Scalar(10), Series([]float64{1, 2}))
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 12}, got.Values())

		got, err = applyBinary(add, Series([]float64{1, 2}), Scalar(10))
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 12}, got.Values())
	})

	t.Run("series with series elementwise", func(t *testing.T) {
		got, err := applyBinary(add, Series([]float64{1, 2}), Series([]float64{10, 20}))
		require.NoError(t, err)
		assert.Equal(t, []float64{11, 22}, got.Values())
	})

	t.Run("length mismatch errors", func(t *testing.T) {
		_, err := applyBinary(add, Series([]float64{1, 2}), Series([]float64{1, 2, 3}))
		assert.ErrorContains(t, err, "lengths differ")
	})
}

func TestApplyUnary(t *testing.T) {
	neg := func(v float64) float64 { return -v }

	assert.Equal(t, -2.0, applyUnary(neg, Scalar(2)).Float())
	assert.Equal(t, []float64{-1, -2}, applyUnary(neg, Series([]float64{1, 2})).Values())
}
