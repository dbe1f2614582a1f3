// Package problems provides reference initial-value problems.
//
// Each [Problem] bundles a rate function with default parameters, initial state and
// span. Some carry a closed-form solution for error measurement:
//
//   - exponential: u' = λu
//   - logistic: u' = r u (1 - u/K)
//   - oscillator: x'' = -ω²x
//   - pendulum: damped nonlinear pendulum
//   - vanderpol: Van der Pol oscillator
//   - duffing: forced Duffing oscillator
//   - lorenz: butterfly attractor
//   - zero: u' = 0
//
// # Energy
//
// Conservative problems set Energy so callers can monitor drift:
//
//	prob, _ := problems.Get("oscillator")
//	e0 := prob.Energy(prob.U0, prob.Params)
package problems
