// Package schema defines the HCL shapes of a swungdash model file.
package schema

import "github.com/hashicorp/hcl/v2"

// Settings configures the evaluation context for every model in the file.
type Settings struct {
	SampleCount int    `hcl:"sample_count,optional"`
	CacheRule   string `hcl:"cache_rule,optional"`
}

// Distribution declares a named stochastic leaf, e.g.
//
//	distribution "bias" {
//	  kind = "uniform"
//	  args = [100, 200]
//	}
//
// Args is kept as an expression so arguments may be written as constant
// arithmetic, e.g. args = [100, 2 * 100].
type Distribution struct {
	Name string         `hcl:"name,label"`
	Kind string         `hcl:"kind"`
	Args hcl.Expression `hcl:"args"`
}

// Mixture declares a named mixture over previously declared components.
type Mixture struct {
	Name       string   `hcl:"name,label"`
	Components []string `hcl:"components"`
}

// Model declares an estimation model: an expression over the declared names
// (reachable under vars) and the tracer x, plus the tracer values to
// evaluate it at.
type Model struct {
	Name       string    `hcl:"name,label"`
	Expression string    `hcl:"expression"`
	Over       []float64 `hcl:"over,optional"`
}

// File is the top-level structure of a model file.
type File struct {
	Settings      *Settings       `hcl:"settings,block"`
	Distributions []*Distribution `hcl:"distribution,block"`
	Mixtures      []*Mixture      `hcl:"mixture,block"`
	Models        []*Model        `hcl:"model,block"`
}
