package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/Telofy/swungdash/internal/config"
	"github.com/Telofy/swungdash/internal/schema"
)

// translate folds one decoded file into the agnostic model. Later files may
// add blocks and override settings set by earlier files.
func translate(f *schema.File, model *config.Model) error {
	if f.Settings != nil {
		if f.Settings.SampleCount != 0 {
			model.Settings.SampleCount = f.Settings.SampleCount
		}
		if f.Settings.CacheRule != "" {
			model.Settings.CacheRule = f.Settings.CacheRule
		}
	}
	for _, d := range f.Distributions {
		args, err := evalArgs(d.Args)
		if err != nil {
			return fmt.Errorf("distribution %q: %w", d.Name, err)
		}
		model.Distributions = append(model.Distributions, &config.Distribution{
			Name: d.Name,
			Kind: d.Kind,
			Args: args,
		})
	}
	for _, m := range f.Mixtures {
		model.Mixtures = append(model.Mixtures, &config.Mixture{
			Name:       m.Name,
			Components: m.Components,
		})
	}
	for _, m := range f.Models {
		model.Models = append(model.Models, &config.EstimationModel{
			Name:       m.Name,
			Expression: m.Expression,
			Over:       m.Over,
		})
	}
	return nil
}

// evalArgs evaluates an args expression to a list of numbers. Arguments may
// be constant arithmetic; no variables are in scope.
func evalArgs(expr hcl.Expression) ([]float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating args: %w", diags)
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("args must be a list of numbers, got %s", val.Type().FriendlyName())
	}
	var args []float64
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.Number {
			return nil, fmt.Errorf("args elements must be numbers, got %s", elem.Type().FriendlyName())
		}
		f, _ := elem.AsBigFloat().Float64()
		args = append(args, f)
	}
	return args, nil
}
