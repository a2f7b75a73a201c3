package tree

// Walk invokes model with a fresh private tracer, runs constancy analysis
// over the built tree, and returns the ordered part listing together with
// the tracer. Callers can rebind the returned tracer (see AsModel) without
// affecting any other model's tree, because no two Walk calls share one.
// The first listed part is the model's root.
func Walk(model Model) ([]Part, *Value, error) {
	tracer := NewTracer()
	root, err := model(tracer)
	if err != nil {
		return nil, nil, err
	}
	MarkConstancy(root, tracer)
	return walk(root), tracer, nil
}

// walk lists a subtree in structural order: a distribution is terminal, a
// mixture precedes its components' listings, a value precedes its wrapped
// content, and an operation contributes only its operands' listings.
func walk(n Node) []Part {
	switch v := n.(type) {
	case *Distribution:
		return []Part{v}
	case *Mixture:
		parts := []Part{v}
		for _, component := range v.components {
			parts = append(parts, walk(component)...)
		}
		return parts
	case *Value:
		parts := []Part{v}
		if v.node != nil {
			parts = append(parts, walk(v.node)...)
		}
		return parts
	case *Operation:
		parts := walk(v.this)
		if v.other != nil {
			parts = append(parts, walk(v.other)...)
		}
		return parts
	}
	return nil
}
