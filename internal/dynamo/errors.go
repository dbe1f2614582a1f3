package dynamo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a step count, tolerance, span or initial state that cannot be integrated.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrDimensionMismatch indicates the rate function returned a state of a different dimension.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and derivative")

	// ErrMaxSteps indicates an adaptive integration exceeded its step budget.
	ErrMaxSteps = errors.New("dynamo: maximum number of steps exceeded")
)

// StepError wraps an error with the step it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}

// Invalid returns an ErrInvalidArgument carrying a description.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Validate checks the arguments shared by every integration call.
// It evaluates f once at (u0, t0) to check the derivative dimension and returns that derivative.
func Validate(f RateFunc, u0 State, span Span, p Params) (State, error) {
	if f == nil {
		return nil, Invalid("nil rate function")
	}
	if len(u0) == 0 {
		return nil, Invalid("empty initial state")
	}
	if !(span.Tf > span.T0) {
		return nil, Invalid("degenerate span [%g, %g]", span.T0, span.Tf)
	}
	du := f(u0, p, span.T0)
	if len(du) != len(u0) {
		return nil, fmt.Errorf("%w: state has %d components, derivative has %d", ErrDimensionMismatch, len(u0), len(du))
	}
	return du, nil
}
