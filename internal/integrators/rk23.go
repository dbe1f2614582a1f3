package integrators

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

// Bogacki-Shampine 2(3) pair. The error weights are the difference between the
// second- and third-order solutions.
var (
	bs21 = 1.0 / 2.0
	bs32 = 3.0 / 4.0

	bsB1 = 2.0 / 9.0
	bsB2 = 3.0 / 9.0
	bsB3 = 4.0 / 9.0

	bsE1 = -5.0 / 72.0
	bsE2 = 1.0 / 12.0
	bsE3 = 1.0 / 9.0
	bsE4 = -1.0 / 8.0
)

// RK23Solver integrates with an adaptive embedded Runge-Kutta pair of orders 2 and 3.
type RK23Solver struct {
	// Logger receives the step underflow warning. Nil means slog.Default().
	Logger *slog.Logger

	// MaxSteps, if > 0, bounds the number of attempted steps (accepted and rejected).
	MaxSteps int

	// OnAccept, if set, is called for every accepted step with the step start time,
	// the step size, the error estimate and the acceptance threshold.
	OnAccept func(t, h, errNorm, maxErr float64)

	safety   float64
	maxScale float64
}

func NewRK23() *RK23Solver {
	return &RK23Solver{
		safety:   0.8,
		maxScale: 4.0,
	}
}

// RK23 integrates over span with error tolerance tol and returns a non-uniform trajectory.
func RK23(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, tol float64) (*dynamo.Trajectory, error) {
	return NewRK23().Solve(f, u0, span, p, tol)
}

// Solve runs the adaptive integration. If the step size underflows, a warning is logged and
// the trajectory accumulated so far is returned with Stats.Aborted set and a nil error.
// The first trial step is 0.5*tol^(1/3), clamped to the span.
func (r *RK23Solver) Solve(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, tol float64) (*dynamo.Trajectory, error) {
	if !(tol > 0) {
		return nil, dynamo.Invalid("tolerance must be positive, got %g", tol)
	}
	du0, err := dynamo.Validate(f, u0, span, p)
	if err != nil {
		return nil, err
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	safety, maxScale := r.safety, r.maxScale
	if safety == 0 {
		safety = 0.8
	}
	if maxScale == 0 {
		maxScale = 4.0
	}

	tr := dynamo.NewTrajectory(64)
	tr.Stats.Evaluations = 1
	f = dynamo.Counted(f, &tr.Stats.Evaluations)

	t, tf := span.T0, span.Tf
	u := u0.Clone()
	tr.Append(t, u)

	h := math.Min(0.5*math.Cbrt(tol), tf-t)
	s1 := du0
	attempts := 0

	for t < tf {
		if t+h == t {
			logger.Warn("rk23: stepsize too small near t, integration stopped",
				"t", t, "h", h, "tf", tf, "steps", tr.Stats.Steps)
			tr.Stats.Aborted = true
			break
		}
		if r.MaxSteps > 0 && attempts >= r.MaxSteps {
			return tr, fmt.Errorf("rk23 after %d attempts at t=%g: %w", attempts, t, dynamo.ErrMaxSteps)
		}
		attempts++

		s2 := f(u.AddScaled(bs21*h, s1), p, t+bs21*h)
		s3 := f(u.AddScaled(bs32*h, s2), p, t+bs32*h)
		unew2 := u.Combine(h, []float64{bsB1, bsB2, bsB3}, []dynamo.State{s1, s2, s3})

		s4 := f(unew2, p, t+h)

		errEst := make(dynamo.State, len(u)).Combine(h, []float64{bsE1, bsE2, bsE3, bsE4}, []dynamo.State{s1, s2, s3, s4})
		E := errEst.NormInf()
		maxErr := tol * (1 + u.NormInf())

		if E < maxErr {
			if r.OnAccept != nil {
				r.OnAccept(t, h, E, maxErr)
			}
			t += h
			u = unew2
			tr.Append(t, u)
			tr.Stats.Steps++
			s1 = s4
		} else {
			tr.Stats.Rejected++
		}

		q := math.Min(safety*math.Cbrt(maxErr/E), maxScale)
		h = math.Min(q*h, tf-t)
	}

	return tr, nil
}
