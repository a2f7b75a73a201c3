package tree

import (
	"context"
	"strconv"

	"github.com/Telofy/swungdash/evalctx"
)

// Value wraps either a raw scalar or another node. It is the variant the
// builder functions return and the tracer is an instance of. A Value is
// immutable after construction except for its constancy field, written once
// by analysis, and the tracer's scalar, rebound between evaluations.
type Value struct {
	meta
	node Node // nil when the value is a raw scalar
	raw  float64
}

// Const wraps a raw scalar.
func Const(v float64) *Value {
	return &Value{raw: v}
}

// Wrap wraps another node for indirection.
func Wrap(n Node) *Value {
	if n == nil {
		panic("tree: cannot wrap a nil node")
	}
	return &Value{node: n}
}

// NewTracer returns a fresh tracer: the distinguished value standing for
// the model's independent variable, initially bound to zero. Every model
// invocation gets its own tracer so rebinding one never aliases another
// model's tree.
func NewTracer() *Value {
	return &Value{meta: meta{name: "x"}}
}

// Named sets the display name and returns the value.
func (v *Value) Named(name string) *Value {
	v.name = name
	return v
}

// Bind rebinds a scalar value; it is how the tracer moves across
// evaluations. Rebinding a wrapping value is a programming error.
func (v *Value) Bind(x float64) {
	if v.node != nil {
		panic("tree: only scalar values can be rebound")
	}
	v.raw = x
}

// Resolve returns the raw scalar, or resolves the wrapped node.
func (v *Value) Resolve(ctx context.Context) (Sample, error) {
	if v.node != nil {
		return v.node.Resolve(ctx)
	}
	return Scalar(v.raw), nil
}

// Key passes through to the wrapped node, or fingerprints the raw scalar.
func (v *Value) Key(ctx context.Context) evalctx.CacheKey {
	if v.node != nil {
		return v.node.Key(ctx)
	}
	return evalctx.ScalarKey(v.raw)
}

func (v *Value) String() string {
	if v.name != "" {
		return v.name
	}
	if v.node != nil {
		return v.node.String()
	}
	return strconv.FormatFloat(v.raw, 'g', -1, 64)
}

// Fluent forms of the builder functions, for chaining off an existing value.

func (v *Value) Add(other any) *Value      { return Add(v, other) }
func (v *Value) Sub(other any) *Value      { return Sub(v, other) }
func (v *Value) Mul(other any) *Value      { return Mul(v, other) }
func (v *Value) Div(other any) *Value      { return Div(v, other) }
func (v *Value) FloorDiv(other any) *Value { return FloorDiv(v, other) }
func (v *Value) Mod(other any) *Value      { return Mod(v, other) }
func (v *Value) Pow(other any) *Value      { return Pow(v, other) }
func (v *Value) Lt(other any) *Value       { return Lt(v, other) }
func (v *Value) Le(other any) *Value       { return Le(v, other) }
func (v *Value) Eq(other any) *Value       { return Eq(v, other) }
func (v *Value) Ne(other any) *Value       { return Ne(v, other) }
func (v *Value) Ge(other any) *Value       { return Ge(v, other) }
func (v *Value) Gt(other any) *Value       { return Gt(v, other) }
func (v *Value) Neg() *Value               { return Neg(v) }
func (v *Value) Pos() *Value               { return Pos(v) }
func (v *Value) Abs() *Value               { return Abs(v) }
