package tree

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/Telofy/swungdash/evalctx"
	"github.com/Telofy/swungdash/internal/ctxlog"
)

// Mixture wraps an ordered sequence of component values, resolved by
// stratified sampling: the budget is split over the components as evenly as
// possible, the remainder assigned one extra draw at a time, and the
// allocation shuffled so no component is positionally favored.
type Mixture struct {
	meta
	components []Node
}

// NewMixture lifts the given components into a mixture. At least one
// component is required.
func NewMixture(components ...any) *Mixture {
	if len(components) == 0 {
		panic("tree: mixture needs at least one component")
	}
	nodes := make([]Node, len(components))
	for i, c := range components {
		nodes[i] = asOperand(c)
	}
	return &Mixture{components: nodes}
}

// Named sets the display name and returns the mixture.
func (m *Mixture) Named(name string) *Mixture {
	m.name = name
	return m
}

// Components returns a copy of the ordered component nodes.
func (m *Mixture) Components() []Node {
	return append([]Node(nil), m.components...)
}

// Key combines the component keys under the mixture's own sampling budget.
// Each component key has its sample-count field blanked: the mixture's
// budget, not the component's, governs how many draws each contributes.
func (m *Mixture) Key(ctx context.Context) evalctx.CacheKey {
	ec := evalctx.From(ctx)
	nested := make([]evalctx.CacheKey, len(m.components))
	for i, component := range m.components {
		nested[i] = component.Key(ctx).WithoutSampleCount()
	}
	return evalctx.NestedKey("mixture", ec.SampleCount, nested...)
}

// Resolve performs stratified sampling across the components and
// concatenates the results, with the same caching behavior as Distribution.
func (m *Mixture) Resolve(ctx context.Context) (Sample, error) {
	ec := evalctx.From(ctx)
	key := m.Key(ctx)
	if ec.Cacheable(true) {
		if cached, ok := ec.Cache.Lookup(key); ok {
			ctxlog.FromContext(ctx).Debug("Mixture cache hit.", "key", key.String())
			return Series(cached), nil
		}
	}
	samples, err := m.sample(ctx)
	if err != nil {
		return Sample{}, err
	}
	if ec.Cacheable(true) {
		ec.Cache.Store(key, samples)
	}
	return Series(samples), nil
}

// sample resolves every component under a nested scope holding its
// allocated share of the budget and concatenates the results in component
// order. Components allocated zero draws are skipped.
func (m *Mixture) sample(ctx context.Context) ([]float64, error) {
	ec := evalctx.From(ctx)
	counts := stratify(ec.SampleCount, len(m.components))
	out := make([]float64, 0, ec.SampleCount)
	for i, component := range m.components {
		if counts[i] == 0 {
			continue
		}
		scoped, _ := evalctx.Scope(ctx, evalctx.WithSampleCount(counts[i]))
		resolved, err := component.Resolve(scoped)
		if err != nil {
			return nil, err
		}
		series, err := resolved.Expand(counts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, series...)
	}
	return out, nil
}

// stratify splits n draws over k components: n/k each, the remainder
// assigned one draw at a time, then shuffled. The counts always sum to
// exactly n.
func stratify(n, k int) []int {
	counts := make([]int, k)
	for i := range counts {
		counts[i] = n / k
	}
	for i := 0; i < n%k; i++ {
		counts[i]++
	}
	rand.Shuffle(len(counts), func(i, j int) {
		counts[i], counts[j] = counts[j], counts[i]
	})
	return counts
}

func (m *Mixture) String() string {
	if m.name != "" {
		return m.name
	}
	parts := make([]string, len(m.components))
	for i, component := range m.components {
		parts[i] = component.String()
	}
	return "Mixture([" + strings.Join(parts, ", ") + "])"
}
