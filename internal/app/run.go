package app

import (
	"context"
	"fmt"

	"github.com/Telofy/swungdash/dsl"
	"github.com/Telofy/swungdash/evalctx"
	"github.com/Telofy/swungdash/internal/config"
	"github.com/Telofy/swungdash/internal/ctxlog"
	"github.com/Telofy/swungdash/internal/report"
	"github.com/Telofy/swungdash/script"
	"github.com/Telofy/swungdash/tree"
)

// Run resolves every model block in the loaded file and writes the part
// listing plus a sample summary per tracer value.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scope, err := a.buildScope()
	if err != nil {
		return err
	}
	a.logger.Debug("Named nodes constructed.", "count", len(scope))

	ec, err := a.evaluationContext(cfg)
	if err != nil {
		return err
	}
	ctx = evalctx.Install(ctx, ec)
	a.logger.Debug("Evaluation context installed.",
		"sample_count", ec.SampleCount, "cache_rule", string(ec.Rule))

	if len(a.config.Models) == 0 {
		a.logger.Warn("No model blocks found, nothing to evaluate.")
		return nil
	}
	for _, m := range a.config.Models {
		if err := a.runModel(ctx, m, scope); err != nil {
			return fmt.Errorf("model %q: %w", m.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildScope constructs the named nodes declared by the distribution and
// mixture blocks. Mixtures may reference distributions and mixtures
// declared before them.
func (a *App) buildScope() (map[string]tree.Node, error) {
	scope := make(map[string]tree.Node)
	for _, d := range a.config.Distributions {
		if _, exists := scope[d.Name]; exists {
			return nil, fmt.Errorf("duplicate name %q", d.Name)
		}
		dist, err := dsl.New(d.Kind, d.Args...)
		if err != nil {
			return nil, fmt.Errorf("distribution %q: %w", d.Name, err)
		}
		scope[d.Name] = dist.Named(d.Name)
	}
	for _, m := range a.config.Mixtures {
		if _, exists := scope[m.Name]; exists {
			return nil, fmt.Errorf("duplicate name %q", m.Name)
		}
		components := make([]any, len(m.Components))
		for i, name := range m.Components {
			node, ok := scope[name]
			if !ok {
				return nil, fmt.Errorf("mixture %q: unknown component %q", m.Name, name)
			}
			components[i] = node
		}
		scope[m.Name] = dsl.Mixture(components...).Named(m.Name)
	}
	return scope, nil
}

// evaluationContext merges the file's settings with CLI overrides.
func (a *App) evaluationContext(cfg *Config) (*evalctx.Context, error) {
	var opts []evalctx.Option

	sampleCount := a.config.Settings.SampleCount
	if cfg.SampleCount > 0 {
		sampleCount = cfg.SampleCount
	}
	if sampleCount < 0 {
		return nil, fmt.Errorf("sample_count must be positive, got %d", sampleCount)
	}
	if sampleCount > 0 {
		opts = append(opts, evalctx.WithSampleCount(sampleCount))
	}

	ruleName := a.config.Settings.CacheRule
	if cfg.CacheRule != "" {
		ruleName = cfg.CacheRule
	}
	if ruleName != "" {
		rule, err := evalctx.ParseRule(ruleName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, evalctx.WithRule(rule))
	}

	return evalctx.New(opts...), nil
}

// runModel compiles, inspects and resolves one model block.
func (a *App) runModel(ctx context.Context, m *config.EstimationModel, scope map[string]tree.Node) error {
	model, err := script.Compile(m.Expression, scope)
	if err != nil {
		return err
	}
	parts, tracer, err := tree.Walk(model)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return fmt.Errorf("expression built an empty tree")
	}

	fmt.Fprintf(a.outW, "model %q: %s\n", m.Name, m.Expression)
	for _, part := range parts {
		fmt.Fprintf(a.outW, "  [%s] %s\n", part.Constancy(), part)
	}

	// The first listed part is the root of the built tree.
	evaluate := tree.AsModel(parts[0], tracer)
	over := m.Over
	if len(over) == 0 {
		over = []float64{0}
	}
	for _, x := range over {
		resolved, err := tree.Resolve(ctx, evaluate(x))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "  x=%v: %s\n", x, report.Summarize(resolved.Values()))
	}
	return nil
}
