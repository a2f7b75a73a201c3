package evalctx

import (
	"sort"
	"strconv"
	"strings"
)

// CacheKey is a structural fingerprint of a node: sampler identity,
// canonical argument rendering, the sample count active when the node was
// resolved, and the keys of any nested sub-nodes. Two independently built
// but structurally identical subtrees therefore produce equal keys and
// share cached results within one Context.
type CacheKey struct {
	Function    string
	Args        string
	KWArgs      string
	SampleCount int
	Nested      string
}

// KeyFor builds the key of a stochastic leaf: a sampler invocation with
// fixed arguments under the given sampling budget.
func KeyFor(function string, args []float64, kwargs map[string]float64, sampleCount int) CacheKey {
	return CacheKey{
		Function:    function,
		Args:        formatArgs(args),
		KWArgs:      formatKwargs(kwargs),
		SampleCount: sampleCount,
	}
}

// NestedKey builds the key of a composite node from its children's keys.
func NestedKey(function string, sampleCount int, nested ...CacheKey) CacheKey {
	parts := make([]string, len(nested))
	for i, k := range nested {
		parts[i] = k.String()
	}
	return CacheKey{
		Function:    function,
		SampleCount: sampleCount,
		Nested:      strings.Join(parts, "|"),
	}
}

// ScalarKey fingerprints a raw numeric value.
func ScalarKey(v float64) CacheKey {
	return CacheKey{Args: formatFloat(v)}
}

// WithoutSampleCount blanks the key's own sample-count field. Mixtures use
// this on component keys because the mixture's budget, not the component's,
// governs how many draws each component contributes.
func (k CacheKey) WithoutSampleCount() CacheKey {
	k.SampleCount = 0
	return k
}

// String renders the key canonically for nesting into parent keys.
func (k CacheKey) String() string {
	var b strings.Builder
	b.WriteString(k.Function)
	b.WriteByte('(')
	b.WriteString(k.Args)
	if k.KWArgs != "" {
		b.WriteByte(';')
		b.WriteString(k.KWArgs)
	}
	b.WriteByte(')')
	if k.SampleCount != 0 {
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(k.SampleCount))
	}
	if k.Nested != "" {
		b.WriteByte('[')
		b.WriteString(k.Nested)
		b.WriteByte(']')
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = formatFloat(a)
	}
	return strings.Join(parts, ",")
}

func formatKwargs(kwargs map[string]float64) string {
	if len(kwargs) == 0 {
		return ""
	}
	names := make([]string, 0, len(kwargs))
	for name := range kwargs {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + formatFloat(kwargs[name])
	}
	return strings.Join(parts, ",")
}
