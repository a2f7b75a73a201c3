package dsl

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Telofy/swungdash/tree"
)

// rander is the sampling surface shared by all gonum distributions.
type rander interface {
	Rand() float64
}

func draw(size int, r rander) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = r.Rand()
	}
	return out
}

// Normal returns a normal distribution with mean mu and standard deviation
// sigma.
func Normal(mu, sigma float64) *tree.Distribution {
	return tree.NewDistribution("normal", sampleNormal, []float64{mu, sigma}, nil)
}

func sampleNormal(size int, args []float64, _ map[string]float64) ([]float64, error) {
	mu, sigma := args[0], args[1]
	if sigma <= 0 {
		return nil, fmt.Errorf("dsl: normal sigma must be positive, got %v", sigma)
	}
	return draw(size, distuv.Normal{Mu: mu, Sigma: sigma}), nil
}

// Uniform returns a uniform distribution over [low, high).
func Uniform(low, high float64) *tree.Distribution {
	return tree.NewDistribution("uniform", sampleUniform, []float64{low, high}, nil)
}

func sampleUniform(size int, args []float64, _ map[string]float64) ([]float64, error) {
	low, high := args[0], args[1]
	if low >= high {
		return nil, fmt.Errorf("dsl: uniform bounds must satisfy low < high, got [%v, %v)", low, high)
	}
	return draw(size, distuv.Uniform{Min: low, Max: high}), nil
}

// LogNormal returns a log-normal distribution parameterized by the mean and
// standard deviation of the underlying normal.
func LogNormal(mu, sigma float64) *tree.Distribution {
	return tree.NewDistribution("lognormal", sampleLogNormal, []float64{mu, sigma}, nil)
}

func sampleLogNormal(size int, args []float64, _ map[string]float64) ([]float64, error) {
	mu, sigma := args[0], args[1]
	if sigma <= 0 {
		return nil, fmt.Errorf("dsl: lognormal sigma must be positive, got %v", sigma)
	}
	return draw(size, distuv.LogNormal{Mu: mu, Sigma: sigma}), nil
}

// Beta returns a beta distribution with shape parameters alpha and beta.
func Beta(alpha, beta float64) *tree.Distribution {
	return tree.NewDistribution("beta", sampleBeta, []float64{alpha, beta}, nil)
}

func sampleBeta(size int, args []float64, _ map[string]float64) ([]float64, error) {
	alpha, beta := args[0], args[1]
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("dsl: beta shape parameters must be positive, got (%v, %v)", alpha, beta)
	}
	return draw(size, distuv.Beta{Alpha: alpha, Beta: beta}), nil
}

// Gamma returns a gamma distribution with shape alpha and rate beta.
func Gamma(alpha, beta float64) *tree.Distribution {
	return tree.NewDistribution("gamma", sampleGamma, []float64{alpha, beta}, nil)
}

func sampleGamma(size int, args []float64, _ map[string]float64) ([]float64, error) {
	alpha, beta := args[0], args[1]
	if alpha <= 0 || beta <= 0 {
		return nil, fmt.Errorf("dsl: gamma parameters must be positive, got (%v, %v)", alpha, beta)
	}
	return draw(size, distuv.Gamma{Alpha: alpha, Beta: beta}), nil
}

// Exponential returns an exponential distribution with the given rate.
func Exponential(rate float64) *tree.Distribution {
	return tree.NewDistribution("exponential", sampleExponential, []float64{rate}, nil)
}

func sampleExponential(size int, args []float64, _ map[string]float64) ([]float64, error) {
	rate := args[0]
	if rate <= 0 {
		return nil, fmt.Errorf("dsl: exponential rate must be positive, got %v", rate)
	}
	return draw(size, distuv.Exponential{Rate: rate}), nil
}

// Bernoulli returns a Bernoulli distribution with success probability p,
// sampled as 0/1 values.
func Bernoulli(p float64) *tree.Distribution {
	return tree.NewDistribution("bernoulli", sampleBernoulli, []float64{p}, nil)
}

func sampleBernoulli(size int, args []float64, _ map[string]float64) ([]float64, error) {
	p := args[0]
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("dsl: bernoulli probability must be in [0, 1], got %v", p)
	}
	return draw(size, distuv.Bernoulli{P: p}), nil
}

// Mixture combines the given components into a stratified-sampled mixture.
func Mixture(components ...any) *tree.Mixture {
	return tree.NewMixture(components...)
}
