package tree

// MarkConstancy classifies every node reachable from root as constant
// (independent of the tracer) or variable, writing each node's constancy
// field in place. A node whose classification is already known (including
// distributions, which are constant by declaration) is not descended into
// again, so the pass is memoized by the fields it writes.
func MarkConstancy(root Node, tracer *Value) {
	markOperand(root, tracer)
}

// markOperand classifies n and records the result on the node when it can
// carry one (operations cannot; their enclosing value does).
func markOperand(n Node, tracer *Value) Constancy {
	c := classify(n, tracer)
	if m, ok := n.(marker); ok {
		m.mark(c)
	}
	return c
}

func classify(n Node, tracer *Value) Constancy {
	switch v := n.(type) {
	case *Value:
		if v == tracer {
			return ConstancyVariable
		}
		if v.constancy.Known() {
			return v.constancy
		}
		switch inner := v.node.(type) {
		case nil:
			return ConstancyConstant
		case *Operation:
			c := markOperand(inner.this, tracer)
			if inner.other == nil {
				return c
			}
			return combine(c, markOperand(inner.other, tracer))
		default:
			return markOperand(inner, tracer)
		}
	case *Distribution:
		if v.constancy.Known() {
			return v.constancy
		}
		return ConstancyConstant
	case *Mixture:
		if v.constancy.Known() {
			return v.constancy
		}
		all := ConstancyConstant
		for _, component := range v.components {
			if markOperand(component, tracer) == ConstancyVariable {
				all = ConstancyVariable
			}
		}
		return all
	}
	return ConstancyConstant
}

func combine(a, b Constancy) Constancy {
	if a == ConstancyConstant && b == ConstancyConstant {
		return ConstancyConstant
	}
	return ConstancyVariable
}
