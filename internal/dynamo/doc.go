// Package dynamo provides the core types shared by the integrators.
//
//   - [State]: fixed-dimension state vector, scalars are length 1
//   - [RateFunc]: du/dt = f(u, p, t)
//   - [Span]: integration interval [T0, Tf]
//   - [Trajectory]: times and states produced by an integration
//
// # Example
//
//	f := dynamo.ScalarRate(func(u float64, p dynamo.Params, t float64) float64 {
//		return p["lambda"] * u
//	})
//	tr, err := integrators.RK4(f, dynamo.Scalar(1), dynamo.Span{T0: 0, Tf: 1}, dynamo.Params{"lambda": -1}, 100)
//
// # Thread Safety
//
// Integration calls share no mutable state. Running several integrations in parallel is
// safe as long as the rate function is reentrant.
package dynamo
