package integrators

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/nlsolve"
)

// Control carries the step control of a call: N for fixed-step methods, Tol for adaptive ones.
type Control struct {
	N   int     `yaml:"n" json:"n"`
	Tol float64 `yaml:"tol" json:"tol"`
}

type Method func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error)

type methodInfo struct {
	name     string
	order    int
	adaptive bool
	build    func() Method
}

type Registry struct {
	methods map[string]methodInfo
	order   []string
}

func NewRegistry(logger *slog.Logger) *Registry {
	r := &Registry{methods: make(map[string]methodInfo)}

	fixed := func(s func() Stepper) func() Method {
		return func() Method {
			return func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error) {
				return FixedStep(s(), f, u0, span, p, ctl.N)
			}
		}
	}

	r.register("euler", 1, false, fixed(func() Stepper { return NewEuler() }))
	r.register("ie", 2, false, fixed(func() Stepper { return NewImprovedEuler() }))
	r.register("rk4", 4, false, fixed(func() Stepper { return NewRK4() }))
	r.register("rk23", 2, true, func() Method {
		return func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error) {
			s := NewRK23()
			s.Logger = logger
			return s.Solve(f, u0, span, p, ctl.Tol)
		}
	})
	r.register("ab4", 4, false, func() Method {
		return func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error) {
			return AB4(f, u0, span, p, ctl.N)
		}
	})
	r.register("am2", 2, false, func() Method {
		return func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error) {
			return NewAM2(nlsolve.NewLevenberg()).Solve(f, u0, span, p, ctl.N)
		}
	})

	return r
}

func (r *Registry) register(name string, order int, adaptive bool, build func() Method) {
	r.methods[name] = methodInfo{name: name, order: order, adaptive: adaptive, build: build}
	r.order = append(r.order, name)
}

func (r *Registry) Get(name string) (Method, error) {
	info, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s (available: %v)", name, r.order)
	}
	return info.build(), nil
}

// Names lists the registered methods in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Order returns the nominal order of accuracy of the named method, or 0 if unknown.
func (r *Registry) Order(name string) int {
	return r.methods[name].order
}

func (r *Registry) IsAdaptive(name string) bool {
	return r.methods[name].adaptive
}

// Solve looks up name and runs it.
func (r *Registry) Solve(name string, f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) (*dynamo.Trajectory, error) {
	m, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return m(f, u0, span, p, ctl)
}
