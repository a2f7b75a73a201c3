package dsl

import (
	"fmt"
	"sort"

	"github.com/Telofy/swungdash/tree"
)

// Constructor builds a distribution node from positional arguments.
type Constructor func(args ...float64) (*tree.Distribution, error)

var kinds = map[string]Constructor{}

// Register maps a kind name to its constructor for the declarative
// frontend. Registering the same kind twice is a programming error.
func Register(kind string, ctor Constructor) {
	if _, exists := kinds[kind]; exists {
		panic(fmt.Sprintf("dsl: distribution kind %q already registered", kind))
	}
	kinds[kind] = ctor
}

// New constructs a distribution by registered kind name.
func New(kind string, args ...float64) (*tree.Distribution, error) {
	ctor, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("dsl: unknown distribution kind %q (known: %v)", kind, Kinds())
	}
	return ctor(args...)
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wantArgs(kind string, args []float64, n int) error {
	if len(args) != n {
		return fmt.Errorf("dsl: %s takes %d arguments, got %d", kind, n, len(args))
	}
	return nil
}

func init() {
	Register("normal", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("normal", args, 2); err != nil {
			return nil, err
		}
		return Normal(args[0], args[1]), nil
	})
	Register("uniform", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("uniform", args, 2); err != nil {
			return nil, err
		}
		return Uniform(args[0], args[1]), nil
	})
	Register("lognormal", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("lognormal", args, 2); err != nil {
			return nil, err
		}
		return LogNormal(args[0], args[1]), nil
	})
	Register("beta", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("beta", args, 2); err != nil {
			return nil, err
		}
		return Beta(args[0], args[1]), nil
	})
	Register("gamma", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("gamma", args, 2); err != nil {
			return nil, err
		}
		return Gamma(args[0], args[1]), nil
	})
	Register("exponential", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("exponential", args, 1); err != nil {
			return nil, err
		}
		return Exponential(args[0]), nil
	})
	Register("bernoulli", func(args ...float64) (*tree.Distribution, error) {
		if err := wantArgs("bernoulli", args, 1); err != nil {
			return nil, err
		}
		return Bernoulli(args[0]), nil
	})
}
