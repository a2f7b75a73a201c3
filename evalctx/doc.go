// Package evalctx carries the sampling configuration and memoization cache
// that govern resolving a model tree: the sampling budget, the cache of
// already-drawn sample series, and the rule deciding which nodes may use it.
//
// The evaluation context rides inside a context.Context, so configuration
// follows the flow of control without being threaded through every node
// explicitly. Nested scopes are derived copies: the parent context is never
// mutated, which makes restoring it on scope exit (normal or panicking)
// structural rather than procedural, and keeps concurrent flows isolated the
// same way context.Context itself does.
package evalctx
