// Package tree implements lazy expression trees over stochastic and
// deterministic values, the core of swungdash's estimation models.
//
// A model is a function from a tracer value (the independent variable) to a
// root Node. Building the tree is pure construction: the builder functions
// (Add, Mul, Pow, ...) wrap their operands in Operation nodes without
// computing anything. Resolution walks the tree under the evaluation context
// carried by a context.Context, drawing sample series at stochastic leaves
// (Distribution, Mixture) and caching those draws by structural key; plain
// arithmetic is cheap and re-evaluated every time.
//
// Two analysis passes work on an already-built tree without forcing
// resolution: MarkConstancy classifies each node as tracer-dependent or
// constant, and Walk lists a model's parts in structural order for
// introspection or visualization.
package tree
