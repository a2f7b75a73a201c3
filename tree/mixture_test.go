package tree

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Telofy/swungdash/evalctx"
)

func TestStratify(t *testing.T) {
	for _, tc := range []struct{ n, k int }{
		{10, 1}, {10, 2}, {10, 3}, {10, 7}, {10, 10}, {1000, 3},
	} {
		counts := stratify(tc.n, tc.k)
		require.Len(t, counts, tc.k)

		total := 0
		for _, c := range counts {
			total += c
			assert.GreaterOrEqual(t, c, tc.n/tc.k)
			assert.LessOrEqual(t, c, tc.n/tc.k+1)
		}
		assert.Equal(t, tc.n, total, "n=%d k=%d", tc.n, tc.k)
	}
}

func TestMixtureResolve(t *testing.T) {
	t.Run("total draws match the budget exactly", func(t *testing.T) {
		mix := NewMixture(
			NewDistribution("a", fixedSampler(1), nil, nil),
			NewDistribution("b", fixedSampler(2), nil, nil),
			NewDistribution("c", fixedSampler(3), nil, nil),
		)
		ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(10)))

		got, err := mix.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Len())
	})

	t.Run("scalar components expand to their share", func(t *testing.T) {
		mix := NewMixture(Const(5), Const(7))
		ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(10)))

		got, err := mix.Resolve(ctx)
		require.NoError(t, err)
		require.Equal(t, 10, got.Len())

		fives, sevens := 0, 0
		for _, v := range got.Values() {
			switch v {
			case 5:
				fives++
			case 7:
				sevens++
			default:
				t.Fatalf("unexpected draw %v", v)
			}
		}
		assert.Equal(t, 5, fives)
		assert.Equal(t, 5, sevens)
	})

	t.Run("draws stay grouped in component order", func(t *testing.T) {
		mix := NewMixture(Const(1), Const(2))
		ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(6)))

		got, err := mix.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 1, 1, 2, 2, 2}, got.Values())
	})

	t.Run("second resolve reuses the cached series", func(t *testing.T) {
		sampler := &countingSampler{}
		mix := NewMixture(NewDistribution("normal", sampler.sample, []float64{2, 0.1}, nil), Const(5))
		ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(10)))

		first, err := mix.Resolve(ctx)
		require.NoError(t, err)
		second, err := mix.Resolve(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, sampler.calls)
		assert.Same(t, &first.Values()[0], &second.Values()[0])
	})

	t.Run("more components than draws skips the unallocated", func(t *testing.T) {
		components := make([]any, 10)
		for i := range components {
			components[i] = Const(float64(i))
		}
		mix := NewMixture(components...)
		ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(3)))

		got, err := mix.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Len())
	})
}

func TestMixtureKeyBlanksComponentBudgets(t *testing.T) {
	sampler := &countingSampler{}
	mix := NewMixture(
		NewDistribution("normal", sampler.sample, []float64{2, 0.1}, nil),
		NewDistribution("normal", sampler.sample, []float64{0, 0.1}, nil),
	)
	ctx := evalctx.Install(context.Background(), evalctx.New(evalctx.WithSampleCount(100)))

	key := mix.Key(ctx)
	assert.Equal(t, 100, key.SampleCount)
	assert.Equal(t, "normal(2,0.1)|normal(0,0.1)", key.Nested,
		"component keys must not carry their own budgets")
}

func TestMixtureString(t *testing.T) {
	sampler := &countingSampler{}
	mix := NewMixture(
		NewDistribution("normal", sampler.sample, []float64{2, 0.1}, nil),
		NewDistribution("normal", sampler.sample, []float64{0, 0.1}, nil),
	)
	assert.Equal(t, "Mixture([normal(2, 0.1), normal(0, 0.1)])", mix.String())
	assert.Equal(t, "weight", mix.Named("weight").String())
}

func TestNewMixturePanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewMixture() })
}

func fixedSampler(v float64) SampleFunc {
	return func(size int, _ []float64, _ map[string]float64) ([]float64, error) {
		out := make([]float64, size)
		for i := range out {
			out[i] = v
		}
		return out, nil
	}
}
