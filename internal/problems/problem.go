package problems

import (
	"fmt"
	"sort"

	"github.com/san-kum/odekit/internal/dynamo"
)

type Problem struct {
	Name        string
	Description string
	Rate        dynamo.RateFunc
	U0          dynamo.State
	Span        dynamo.Span
	Params      dynamo.Params

	// Exact returns the closed-form solution a time t after u0, or is nil.
	Exact func(u0 dynamo.State, p dynamo.Params, t float64) dynamo.State

	// Energy returns a conserved quantity, or is nil.
	Energy func(u dynamo.State, p dynamo.Params) float64
}

// HasExact reports whether the problem has a closed-form solution.
func (pr *Problem) HasExact() bool { return pr.Exact != nil }

// ExactAt evaluates the closed-form solution at absolute time t, taking U0 as the
// state at Span.T0.
func (pr *Problem) ExactAt(t float64) (dynamo.State, error) {
	if pr.Exact == nil {
		return nil, fmt.Errorf("problem %s has no closed-form solution", pr.Name)
	}
	return pr.Exact(pr.U0, pr.Params, t-pr.Span.T0), nil
}

// WithParams returns a copy of the problem with overrides merged over the defaults.
func (pr *Problem) WithParams(overrides map[string]float64) *Problem {
	c := *pr
	c.U0 = pr.U0.Clone()
	c.Params = make(dynamo.Params, len(pr.Params)+len(overrides))
	for k, v := range pr.Params {
		c.Params[k] = v
	}
	for k, v := range overrides {
		c.Params[k] = v
	}
	return &c
}

var catalogue = map[string]func() *Problem{
	"exponential": NewExponential,
	"logistic":    NewLogistic,
	"oscillator":  NewOscillator,
	"pendulum":    NewPendulum,
	"vanderpol":   NewVanDerPol,
	"duffing":     NewDuffing,
	"lorenz":      NewLorenz,
	"zero":        NewZero,
}

func Get(name string) (*Problem, error) {
	fn, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
