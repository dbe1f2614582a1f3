package integrators

import "github.com/san-kum/odekit/internal/dynamo"

// Adams-Bashforth 4 weights, newest derivative first.
var ab4Sigma = []float64{55.0 / 24.0, -59.0 / 24.0, 37.0 / 24.0, -9.0 / 24.0}

const ab4Order = 4

// AB4 integrates with the fourth-order Adams-Bashforth method over n uniform steps.
// The first three steps are taken with RK4 to seed the derivative history, so n must be at least 3.
func AB4(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error) {
	k := ab4Order
	if n < k-1 {
		return nil, dynamo.Invalid("ab4 needs at least %d steps, got %d", k-1, n)
	}
	if _, err := dynamo.Validate(f, u0, span, p); err != nil {
		return nil, err
	}

	h := span.Length() / float64(n)
	t := Grid(span, n)

	start, err := RK4(f, u0, dynamo.Span{T0: span.T0, Tf: span.T0 + float64(k-1)*h}, p, k-1)
	if err != nil {
		return nil, err
	}

	tr := dynamo.NewTrajectory(n + 1)
	tr.Stats = start.Stats
	f = dynamo.Counted(f, &tr.Stats.Evaluations)

	u := make([]dynamo.State, n+1)
	for i := 0; i < k; i++ {
		u[i] = start.States[i]
	}

	// Newest derivative first. The first step prepends f(u[k-1]) and keeps all k-1 seeds.
	hist := make([]dynamo.State, k)
	for j := 0; j < k-1; j++ {
		hist[j] = f(u[k-2-j], p, t[k-2-j])
	}

	for i := k - 1; i < n; i++ {
		copy(hist[1:], hist[:k-1])
		hist[0] = f(u[i], p, t[i])
		u[i+1] = u[i].Combine(h, ab4Sigma, hist)
		tr.Stats.Steps++
	}

	for i := range u {
		tr.Append(t[i], u[i])
	}
	return tr, nil
}
