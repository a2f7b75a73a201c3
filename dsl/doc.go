// Package dsl provides the named distribution constructors used to build
// estimation models. Each constructor returns a stochastic tree leaf backed
// by a gonum sampler; a kind registry maps configuration names like
// "normal" or "uniform" to the same constructors for declarative model
// files.
//
// Parameter validation happens inside the sampling functions, so invalid
// parameters surface as sampling failures when the node is resolved, not
// when it is built.
package dsl
