package tree

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/Telofy/swungdash/evalctx"
	"github.com/Telofy/swungdash/internal/ctxlog"
)

// SampleFunc draws size samples given a distribution's declared positional
// and keyword arguments. It must be pure with respect to its arguments
// aside from randomness.
type SampleFunc func(size int, args []float64, kwargs map[string]float64) ([]float64, error)

// Distribution wraps a sampling function with fixed arguments. It is
// constant by declaration: a distribution never depends on the tracer on
// its own. Sampling is the expensive part of resolution, so distributions
// are where caching happens.
type Distribution struct {
	meta
	fn     SampleFunc
	fnName string
	args   []float64
	kwargs map[string]float64
}

// NewDistribution builds a stochastic leaf. fnName identifies the sampler
// in cache keys and display output; two distributions built independently
// from the same fnName and arguments share cached draws.
func NewDistribution(fnName string, fn SampleFunc, args []float64, kwargs map[string]float64) *Distribution {
	if fn == nil {
		panic("tree: distribution needs a sampling function")
	}
	if fnName == "" {
		panic("tree: distribution needs a function name")
	}
	return &Distribution{
		meta:   meta{constancy: ConstancyConstant},
		fn:     fn,
		fnName: fnName,
		args:   args,
		kwargs: kwargs,
	}
}

// Named sets the display name and returns the distribution.
func (d *Distribution) Named(name string) *Distribution {
	d.name = name
	return d
}

// Key fingerprints the sampler invocation under the active sampling budget.
func (d *Distribution) Key(ctx context.Context) evalctx.CacheKey {
	ec := evalctx.From(ctx)
	return evalctx.KeyFor(d.fnName, d.args, d.kwargs, ec.SampleCount)
}

// Resolve draws sample-count values from the sampling function, reusing the
// cached series when this structural key was already resolved under the
// active context. Sampler failures propagate unmodified and leave nothing
// cached for the key.
func (d *Distribution) Resolve(ctx context.Context) (Sample, error) {
	ec := evalctx.From(ctx)
	key := d.Key(ctx)
	if ec.Cacheable(true) {
		if cached, ok := ec.Cache.Lookup(key); ok {
			ctxlog.FromContext(ctx).Debug("Distribution cache hit.", "key", key.String())
			return Series(cached), nil
		}
	}
	samples, err := d.fn(ec.SampleCount, d.args, d.kwargs)
	if err != nil {
		return Sample{}, err
	}
	if ec.Cacheable(true) {
		ec.Cache.Store(key, samples)
	}
	ctxlog.FromContext(ctx).Debug("Distribution sampled.", "key", key.String(), "count", len(samples))
	return Series(samples), nil
}

func (d *Distribution) String() string {
	if d.name != "" {
		return d.name
	}
	parts := make([]string, 0, len(d.args)+len(d.kwargs))
	for _, a := range d.args {
		parts = append(parts, strconv.FormatFloat(a, 'g', -1, 64))
	}
	names := make([]string, 0, len(d.kwargs))
	for name := range d.kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, name+"="+strconv.FormatFloat(d.kwargs[name], 'g', -1, 64))
	}
	return d.fnName + "(" + strings.Join(parts, ", ") + ")"
}
