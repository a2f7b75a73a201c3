package evalctx

import (
	"context"
	"fmt"
)

// DefaultSampleCount is the sampling budget used when no context was ever
// established for the current flow.
const DefaultSampleCount = 1000

// Rule selects when resolved stochastic results may be cached.
type Rule string

const (
	// RuleNever disables the cache entirely.
	RuleNever Rule = "never"
	// RuleConstant caches only nodes that are constant, i.e. independent of
	// the tracer. This is the default.
	RuleConstant Rule = "constant"
	// RuleAlways caches every resolved stochastic node.
	RuleAlways Rule = "always"
)

// ParseRule validates a rule name coming from configuration.
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case RuleNever, RuleConstant, RuleAlways:
		return Rule(s), nil
	}
	return "", fmt.Errorf("evalctx: unknown cache rule %q", s)
}

// Context is the sampling configuration active for one resolution flow.
//
// A Context is not synchronized. It is owned by a single flow of control;
// nested scopes within that flow run strictly sequentially, so no locking is
// needed. Callers that deliberately hand one Context to several goroutines
// must provide their own synchronization.
type Context struct {
	SampleCount int
	Rule        Rule
	Cache       *Cache
}

// New returns a default context (sample count 1000, empty cache, rule
// "constant") with the given overrides applied.
func New(opts ...Option) *Context {
	c := &Context{
		SampleCount: DefaultSampleCount,
		Rule:        RuleConstant,
		Cache:       NewCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cacheable reports whether a node with the given constancy may consult and
// populate the cache under the current rule.
func (c *Context) Cacheable(constant bool) bool {
	switch c.Rule {
	case RuleNever:
		return false
	case RuleAlways:
		return true
	default:
		return constant
	}
}

// Option overrides a single field of a new or derived context.
type Option func(*Context)

// WithSampleCount overrides the sampling budget. The budget must be
// positive; caching is only coherent relative to a definite budget.
func WithSampleCount(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("evalctx: sample count must be positive, got %d", n))
	}
	return func(c *Context) { c.SampleCount = n }
}

// WithRule overrides the cache rule.
func WithRule(r Rule) Option {
	return func(c *Context) { c.Rule = r }
}

// WithCache replaces the cache instead of sharing the enclosing scope's.
func WithCache(cache *Cache) Option {
	if cache == nil {
		panic("evalctx: cache override must not be nil")
	}
	return func(c *Context) { c.Cache = cache }
}

// key is an unexported type to prevent collisions with context keys from
// other packages.
type key struct{}

var contextKey = key{}

// Install returns a context.Context carrying ec as the active evaluation
// context.
func Install(ctx context.Context, ec *Context) context.Context {
	return context.WithValue(ctx, contextKey, ec)
}

// From returns the evaluation context active in ctx. If none was ever
// installed it returns a fresh default, so resolution always has a definite
// configuration to work with.
func From(ctx context.Context) *Context {
	if ec, ok := ctx.Value(contextKey).(*Context); ok {
		return ec
	}
	return New()
}

// Ensure returns ctx with an evaluation context installed, creating and
// installing a default one when absent. Top-level resolution entry points
// use this so a single cache spans the whole call.
func Ensure(ctx context.Context) (context.Context, *Context) {
	if ec, ok := ctx.Value(contextKey).(*Context); ok {
		return ctx, ec
	}
	ec := New()
	return Install(ctx, ec), ec
}

// Scope begins a nested evaluation scope: a shallow copy of the current
// context with the given overrides. Fields that are not overridden keep the
// same references as the enclosing scope, so in particular the cache is
// shared unless WithCache is given. The enclosing context is untouched;
// callers exit the scope by returning to code that still holds the parent
// ctx, which restores the previous configuration exactly even when the
// scoped work panics.
func Scope(ctx context.Context, opts ...Option) (context.Context, *Context) {
	child := *From(ctx)
	for _, opt := range opts {
		opt(&child)
	}
	return Install(ctx, &child), &child
}
