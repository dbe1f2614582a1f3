package integrators

import "github.com/san-kum/odekit/internal/dynamo"

// Stepper advances the state by one step of size h from (t, u).
type Stepper interface {
	Step(f dynamo.RateFunc, u dynamo.State, p dynamo.Params, t, h float64) dynamo.State
}

// Grid returns the n+1 uniformly spaced time points of span. The last point is span.Tf.
func Grid(span dynamo.Span, n int) []float64 {
	h := span.Length() / float64(n)
	t := make([]float64, n+1)
	for i := range t {
		t[i] = span.T0 + float64(i)*h
	}
	t[n] = span.Tf
	return t
}

// FixedStep applies s over the uniform grid of span with n steps.
func FixedStep(s Stepper, f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	if n < 1 {
		return nil, dynamo.Invalid("step count must be positive, got %d", n)
	}
	if _, err := dynamo.Validate(f, u0, span, p); err != nil {
		return nil, err
	}

	t := Grid(span, n)
	h := span.Length() / float64(n)

	tr := dynamo.NewTrajectory(n + 1)
	f = dynamo.Counted(f, &tr.Stats.Evaluations)

	u := u0.Clone()
	tr.Append(t[0], u)
	for i := 0; i < n; i++ {
		u = s.Step(f, u, p, t[i], h)
		tr.Append(t[i+1], u)
		tr.Stats.Steps++
	}
	return tr, nil
}
