package integrators

import "github.com/san-kum/odekit/internal/dynamo"

type EulerStep struct{}

func NewEuler() *EulerStep {
	return &EulerStep{}
}

func (e *EulerStep) Step(f dynamo.RateFunc, u dynamo.State, p dynamo.Params, t, h float64) dynamo.State {
	return u.AddScaled(h, f(u, p, t))
}

// Euler integrates with the forward Euler method over n uniform steps.
func Euler(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	return FixedStep(NewEuler(), f, u0, span, p, n)
}

// ImprovedEulerStep is the midpoint form of the second-order Runge-Kutta method.
type ImprovedEulerStep struct{}

func NewImprovedEuler() *ImprovedEulerStep {
	return &ImprovedEulerStep{}
}

func (ie *ImprovedEulerStep) Step(f dynamo.RateFunc, u dynamo.State, p dynamo.Params, t, h float64) dynamo.State {
	half := u.AddScaled(h/2, f(u, p, t))
	return u.AddScaled(h, f(half, p, t+h/2))
}

// ImprovedEuler integrates with the second-order improved Euler method over n uniform steps.
func ImprovedEuler(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	return FixedStep(NewImprovedEuler(), f, u0, span, p, n)
}
