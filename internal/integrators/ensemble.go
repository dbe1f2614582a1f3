package integrators

import (
	"context"
	"runtime"

	"github.com/san-kum/odekit/internal/dynamo"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one method in an ensemble solve.
type Result struct {
	Method     string
	Trajectory *dynamo.Trajectory
	Err        error
}

// SolveAll integrates the same problem with every named method concurrently.
// Results are returned in the order of names. A failing method records its error in
// its Result; only cancellation of ctx aborts the ensemble. f must be safe for
// concurrent use.
func (r *Registry) SolveAll(ctx context.Context, names []string, f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, ctl Control) ([]Result, error) {
	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := r.Solve(name, f, u0.Clone(), span, p, ctl)
			results[i] = Result{Method: name, Trajectory: tr, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
