// Package script compiles textual model expressions into lazy trees. The
// arithmetic and comparison operators are overridden to construct tree
// nodes instead of computing numbers, so
//
//	vars.weight * x**2 + vars.bias / 5
//
// builds the same tree the builder functions in package tree would. The
// tracer is bound to x; named nodes passed at compile time are reachable
// under vars. Unary negation over nodes is spelled neg(...), absolute value
// abs(...).
package script

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/Telofy/swungdash/tree"
)

// Env is the compile and run environment of a model expression.
type Env struct {
	X    *tree.Value          `expr:"x"`
	Vars map[string]tree.Node `expr:"vars"`

	Add func(a, b any) *tree.Value `expr:"add"`
	Sub func(a, b any) *tree.Value `expr:"sub"`
	Mul func(a, b any) *tree.Value `expr:"mul"`
	Div func(a, b any) *tree.Value `expr:"div"`
	Mod func(a, b any) *tree.Value `expr:"mod"`
	Pow func(a, b any) *tree.Value `expr:"pow"`
	Lt  func(a, b any) *tree.Value `expr:"lt"`
	Le  func(a, b any) *tree.Value `expr:"le"`
	Eq  func(a, b any) *tree.Value `expr:"eq"`
	Ne  func(a, b any) *tree.Value `expr:"ne"`
	Ge  func(a, b any) *tree.Value `expr:"ge"`
	Gt  func(a, b any) *tree.Value `expr:"gt"`
	Neg func(a any) *tree.Value    `expr:"neg"`
	Abs func(a any) *tree.Value    `expr:"abs"`
}

func newEnv(tracer *tree.Value, vars map[string]tree.Node) Env {
	return Env{
		X:    tracer,
		Vars: vars,
		Add:  tree.Add,
		Sub:  tree.Sub,
		Mul:  tree.Mul,
		Div:  tree.Div,
		Mod:  tree.Mod,
		Pow:  tree.Pow,
		Lt:   tree.Lt,
		Le:   tree.Le,
		Eq:   tree.Eq,
		Ne:   tree.Ne,
		Ge:   tree.Ge,
		Gt:   tree.Gt,
		Neg:  tree.Neg,
		Abs:  tree.Abs,
	}
}

func options() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.Operator("+", "add"),
		expr.Operator("-", "sub"),
		expr.Operator("*", "mul"),
		expr.Operator("/", "div"),
		expr.Operator("%", "mod"),
		expr.Operator("**", "pow"),
		expr.Operator("^", "pow"),
		expr.Operator("<", "lt"),
		expr.Operator("<=", "le"),
		expr.Operator("==", "eq"),
		expr.Operator("!=", "ne"),
		expr.Operator(">=", "ge"),
		expr.Operator(">", "gt"),
	}
}

// Compile turns src into a model over the named nodes in vars. The returned
// model constructs a fresh tree each time it is invoked, binding the given
// tracer to x.
func Compile(src string, vars map[string]tree.Node) (tree.Model, error) {
	program, err := expr.Compile(src, options()...)
	if err != nil {
		return nil, fmt.Errorf("script: compiling %q: %w", src, err)
	}
	if vars == nil {
		vars = map[string]tree.Node{}
	}
	return func(tracer *tree.Value) (tree.Node, error) {
		out, err := expr.Run(program, newEnv(tracer, vars))
		if err != nil {
			return nil, fmt.Errorf("script: running %q: %w", src, err)
		}
		return lift(src, out)
	}, nil
}

// lift converts the expression result into a model node; pure numeric
// expressions fold to constants.
func lift(src string, out any) (tree.Node, error) {
	switch v := out.(type) {
	case tree.Node:
		return v, nil
	case float64:
		return tree.Const(v), nil
	case int:
		return tree.Const(float64(v)), nil
	}
	return nil, fmt.Errorf("script: %q produced %T, want a model node or number", src, out)
}
