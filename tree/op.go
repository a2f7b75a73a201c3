package tree

import (
	"context"
	"fmt"
	"math"

	"github.com/Telofy/swungdash/evalctx"
)

// Op identifies one entry of the operation table.
type Op int

const (
	OpNeg Op = iota
	OpPos
	OpAbs
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpLt
	OpLe
	OpEq
	OpNe
	OpGe
	OpGt
)

type opSpec struct {
	name   string
	format string
	unary  bool
	apply  func(this, other float64) float64
}

// Comparison results follow the numeric convention: 1 for true, 0 for false.
func fromBool(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var opTable = map[Op]opSpec{
	OpNeg: {name: "neg", format: "-%s", unary: true, apply: func(a, _ float64) float64 { return -a }},
	OpPos: {name: "pos", format: "%s", unary: true, apply: func(a, _ float64) float64 { return a }},
	OpAbs: {name: "abs", format: "abs(%s)", unary: true, apply: func(a, _ float64) float64 { return math.Abs(a) }},

	OpAdd:      {name: "add", format: "(%s + %s)", apply: func(a, b float64) float64 { return a + b }},
	OpSub:      {name: "sub", format: "(%s - %s)", apply: func(a, b float64) float64 { return a - b }},
	OpMul:      {name: "mul", format: "(%s * %s)", apply: func(a, b float64) float64 { return a * b }},
	OpDiv:      {name: "div", format: "(%s / %s)", apply: func(a, b float64) float64 { return a / b }},
	OpFloorDiv: {name: "floordiv", format: "(%s // %s)", apply: func(a, b float64) float64 { return math.Floor(a / b) }},
	OpMod:      {name: "mod", format: "(%s %% %s)", apply: math.Mod},
	OpPow:      {name: "pow", format: "(%s ** %s)", apply: math.Pow},

	OpLt: {name: "lt", format: "(%s < %s)", apply: func(a, b float64) float64 { return fromBool(a < b) }},
	OpLe: {name: "le", format: "(%s <= %s)", apply: func(a, b float64) float64 { return fromBool(a <= b) }},
	OpEq: {name: "eq", format: "(%s == %s)", apply: func(a, b float64) float64 { return fromBool(a == b) }},
	OpNe: {name: "ne", format: "(%s != %s)", apply: func(a, b float64) float64 { return fromBool(a != b) }},
	OpGe: {name: "ge", format: "(%s >= %s)", apply: func(a, b float64) float64 { return fromBool(a >= b) }},
	OpGt: {name: "gt", format: "(%s > %s)", apply: func(a, b float64) float64 { return fromBool(a > b) }},
}

// Operation binds a pure function from the table to one or two operands.
// It is immutable once built; the second operand is nil for unary
// operations. Operations are only constructed through the builder
// functions, which wrap each one in a Value.
type Operation struct {
	op    Op
	this  Node
	other Node
}

func newOperation(op Op, this, other Node) *Operation {
	spec, ok := opTable[op]
	if !ok {
		panic(fmt.Sprintf("tree: unknown operation %d", int(op)))
	}
	if this == nil {
		panic(fmt.Sprintf("tree: %s built without a left operand", spec.name))
	}
	if spec.unary {
		if other != nil {
			panic(fmt.Sprintf("tree: %s is unary but got a second operand", spec.name))
		}
	} else if other == nil {
		panic(fmt.Sprintf("tree: %s built without a right operand", spec.name))
	}
	return &Operation{op: op, this: this, other: other}
}

// Resolve resolves the operand(s) and applies the operation's function
// elementwise. Operations are never cached: arithmetic is cheap, caching
// lives at the stochastic leaves.
func (o *Operation) Resolve(ctx context.Context) (Sample, error) {
	spec := opTable[o.op]
	this, err := o.this.Resolve(ctx)
	if err != nil {
		return Sample{}, err
	}
	if o.other == nil {
		return applyUnary(func(v float64) float64 { return spec.apply(v, 0) }, this), nil
	}
	other, err := o.other.Resolve(ctx)
	if err != nil {
		return Sample{}, err
	}
	return applyBinary(spec.apply, this, other)
}

// Key combines the operation's identity with its operands' keys.
func (o *Operation) Key(ctx context.Context) evalctx.CacheKey {
	spec := opTable[o.op]
	if o.other == nil {
		return evalctx.NestedKey(spec.name, 0, o.this.Key(ctx))
	}
	return evalctx.NestedKey(spec.name, 0, o.this.Key(ctx), o.other.Key(ctx))
}

// String reconstructs the operator composition with explicit parentheses.
func (o *Operation) String() string {
	spec := opTable[o.op]
	if spec.unary {
		return fmt.Sprintf(spec.format, o.this)
	}
	return fmt.Sprintf(spec.format, o.this, o.other)
}

// asOperand lifts a builder argument into a node. Raw numbers become
// constant values; anything already resolvable participates directly.
func asOperand(v any) Node {
	switch x := v.(type) {
	case Node:
		return x
	case float64:
		return Const(x)
	case float32:
		return Const(float64(x))
	case int:
		return Const(float64(x))
	case int64:
		return Const(float64(x))
	case nil:
		panic("tree: nil operand")
	default:
		panic(fmt.Sprintf("tree: cannot use %T as an operand", v))
	}
}

func unaryOp(op Op, a any) *Value {
	return Wrap(newOperation(op, asOperand(a), nil))
}

func binaryOp(op Op, a, b any) *Value {
	return Wrap(newOperation(op, asOperand(a), asOperand(b)))
}

// Builder functions. Each constructs a new Value wrapping an Operation;
// operands may be nodes or raw numbers.

// Add returns a value computing a + b.
func Add(a, b any) *Value { return binaryOp(OpAdd, a, b) }

// Sub returns a value computing a - b.
func Sub(a, b any) *Value { return binaryOp(OpSub, a, b) }

// Mul returns a value computing a * b.
func Mul(a, b any) *Value { return binaryOp(OpMul, a, b) }

// Div returns a value computing a / b.
func Div(a, b any) *Value { return binaryOp(OpDiv, a, b) }

// FloorDiv returns a value computing floor(a / b).
func FloorDiv(a, b any) *Value { return binaryOp(OpFloorDiv, a, b) }

// Mod returns a value computing the floating-point remainder of a / b.
func Mod(a, b any) *Value { return binaryOp(OpMod, a, b) }

// Pow returns a value computing a ** b.
func Pow(a, b any) *Value { return binaryOp(OpPow, a, b) }

// Lt returns a value computing a < b as 0 or 1.
func Lt(a, b any) *Value { return binaryOp(OpLt, a, b) }

// Le returns a value computing a <= b as 0 or 1.
func Le(a, b any) *Value { return binaryOp(OpLe, a, b) }

// Eq returns a value computing a == b as 0 or 1.
func Eq(a, b any) *Value { return binaryOp(OpEq, a, b) }

// Ne returns a value computing a != b as 0 or 1.
func Ne(a, b any) *Value { return binaryOp(OpNe, a, b) }

// Ge returns a value computing a >= b as 0 or 1.
func Ge(a, b any) *Value { return binaryOp(OpGe, a, b) }

// Gt returns a value computing a > b as 0 or 1.
func Gt(a, b any) *Value { return binaryOp(OpGt, a, b) }

// Neg returns a value computing -a.
func Neg(a any) *Value { return unaryOp(OpNeg, a) }

// Pos returns a value computing +a.
func Pos(a any) *Value { return unaryOp(OpPos, a) }

// Abs returns a value computing |a|.
func Abs(a any) *Value { return unaryOp(OpAbs, a) }
