// Package config defines the format-agnostic model-file representation and
// the Loader interface concrete formats implement. The config.Model is the
// single source of truth the app evaluates from; the HCL implementation
// lives in a separate package.
package config

import "context"

// Settings mirrors the evaluation options a model file may set. Zero values
// mean "not set" and fall back to the engine defaults.
type Settings struct {
	SampleCount int
	CacheRule   string
}

// Distribution is the agnostic form of a distribution block.
type Distribution struct {
	Name string
	Kind string
	Args []float64
}

// Mixture is the agnostic form of a mixture block. Components name earlier
// declared distributions or mixtures.
type Mixture struct {
	Name       string
	Components []string
}

// EstimationModel is the agnostic form of a model block.
type EstimationModel struct {
	Name       string
	Expression string
	Over       []float64
}

// Model is the unified representation of everything loaded from one path.
type Model struct {
	Settings      Settings
	Distributions []*Distribution
	Mixtures      []*Mixture
	Models        []*EstimationModel
}

// Loader loads model files from a path (a single file or a directory of
// files) into the agnostic form.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
