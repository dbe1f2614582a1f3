package integrators

import (
	"fmt"

	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/nlsolve"
)

// AM2Solver integrates with the second-order Adams-Moulton (trapezoid) method.
// Each step solves an implicit equation with Solver.
type AM2Solver struct {
	Solver nlsolve.Solver
}

func NewAM2(solver nlsolve.Solver) *AM2Solver {
	if solver == nil {
		solver = nlsolve.NewLevenberg()
	}
	return &AM2Solver{Solver: solver}
}

// AM2 integrates over n uniform steps using the Levenberg solver for the implicit update.
func AM2(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	return NewAM2(nil).Solve(f, u0, span, p, n)
}

// Solve returns the trajectory up to the failing step together with the solver error
// when an implicit update does not converge.
func (a *AM2Solver) Solve(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	if n < 1 {
		return nil, dynamo.Invalid("step count must be positive, got %d", n)
	}
	if _, err := dynamo.Validate(f, u0, span, p); err != nil {
		return nil, err
	}

	h := span.Length() / float64(n)
	t := Grid(span, n)

	tr := dynamo.NewTrajectory(n + 1)
	f = dynamo.Counted(f, &tr.Stats.Evaluations)

	u := u0.Clone()
	tr.Append(t[0], u)
	for i := 0; i < n; i++ {
		known := u.AddScaled(h/2, f(u, p, t[i]))
		tNext := t[i+1]
		residual := func(z dynamo.State) dynamo.State {
			return z.Sub(f(z, p, tNext).Scale(h / 2)).Sub(known)
		}

		iterates, err := a.Solver.Solve(residual, known)
		if err != nil {
			return tr, &dynamo.StepError{Step: i, Time: t[i], Wrapped: fmt.Errorf("am2 implicit update: %w", err)}
		}

		u = iterates[len(iterates)-1]
		tr.Append(tNext, u)
		tr.Stats.Steps++
	}
	return tr, nil
}
