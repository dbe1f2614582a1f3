// Package analysis measures how integrators behave on reference problems.
//
//   - [Convergence]: global error at the final time for a sequence of step counts
//   - [ObservedOrder]: order of accuracy from two error measurements
//   - [DominantFrequency]: strongest oscillation frequency of a uniform trajectory
//
// # Order of Accuracy
//
// For a method of order p, doubling n divides the global error by about 2^p:
//
//	study, _ := analysis.Convergence(reg, "rk4", prob, []int{10, 20, 40, 80})
//	p := study.FittedOrder() // ~4
package analysis
