package tree

import (
	"context"
	"fmt"

	"github.com/Telofy/swungdash/evalctx"
)

// Node is a lazily resolvable element of a model tree. Resolve converts the
// node (and its subtree) into numeric output under the evaluation context
// carried by ctx; Key is its structural cache fingerprint under the same
// context.
type Node interface {
	Resolve(ctx context.Context) (Sample, error)
	Key(ctx context.Context) evalctx.CacheKey
	fmt.Stringer
}

// Part is a node as listed by Walk, with its analyzed constancy exposed.
type Part interface {
	Node
	Name() string
	Constancy() Constancy
}

// Constancy classifies whether a node's resolved value depends on the
// tracer's current binding.
type Constancy int

const (
	// ConstancyUnknown means constancy analysis has not reached the node.
	ConstancyUnknown Constancy = iota
	// ConstancyConstant marks nodes independent of the tracer.
	ConstancyConstant
	// ConstancyVariable marks nodes that vary with the tracer.
	ConstancyVariable
)

// Known reports whether analysis has assigned a definite classification.
func (c Constancy) Known() bool {
	return c != ConstancyUnknown
}

// Constant reports whether the node was classified as tracer-independent.
func (c Constancy) Constant() bool {
	return c == ConstancyConstant
}

func (c Constancy) String() string {
	switch c {
	case ConstancyConstant:
		return "constant"
	case ConstancyVariable:
		return "variable"
	}
	return "unknown"
}

// meta carries the display name and analyzed constancy shared by the
// listable node variants.
type meta struct {
	name      string
	constancy Constancy
}

// Name returns the display name, empty when unnamed.
func (m *meta) Name() string {
	return m.name
}

// Constancy returns the analyzed classification.
func (m *meta) Constancy() Constancy {
	return m.constancy
}

func (m *meta) mark(c Constancy) {
	m.constancy = c
}

// marker is implemented by nodes whose constancy is written in place.
type marker interface {
	mark(Constancy)
}

// Model builds a tree over the given tracer. It is invoked exactly once per
// traversal and must only construct nodes.
type Model func(tracer *Value) (Node, error)

// Resolve evaluates node, installing a default evaluation context when ctx
// carries none so that a single cache spans the whole resolution.
func Resolve(ctx context.Context, node Node) (Sample, error) {
	ctx, _ = evalctx.Ensure(ctx)
	return node.Resolve(ctx)
}

// AsModel wraps an already built subtree as a function of concrete tracer
// values: each call rebinds the tracer and returns the same root for
// resolution. The tracer must be the one the subtree was built over.
func AsModel(part Node, tracer *Value) func(x float64) Node {
	return func(x float64) Node {
		tracer.Bind(x)
		return part
	}
}
