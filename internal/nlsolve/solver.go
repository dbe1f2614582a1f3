// Package nlsolve finds roots of nonlinear systems F(x) = 0.
//
// Solvers return the whole iterate sequence; the last entry is the solution.
package nlsolve

import (
	"errors"
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotConverged indicates the iteration stopped without finding a root.
	ErrNotConverged = errors.New("nlsolve: iteration did not converge")

	// ErrSingularJacobian indicates the linearized system could not be solved.
	ErrSingularJacobian = errors.New("nlsolve: singular jacobian")
)

const (
	DefaultTol     = 1e-12
	DefaultMaxIter = 40
)

// Residual evaluates F(x). The result may have a different length than x.
type Residual func(x dynamo.State) dynamo.State

type Solver interface {
	Solve(f Residual, x0 dynamo.State) ([]dynamo.State, error)
}

// FDJacobian approximates the Jacobian of f at x0 by forward differences, given y0 = f(x0).
func FDJacobian(f Residual, x0, y0 dynamo.State) *mat.Dense {
	delta := math.Sqrt(epsilon)
	m, n := len(y0), len(x0)
	J := mat.NewDense(m, n, nil)
	xp := x0.Clone()
	for j := 0; j < n; j++ {
		xp[j] = x0[j] + delta
		yp := f(xp)
		for i := 0; i < m; i++ {
			J.Set(i, j, (yp[i]-y0[i])/delta)
		}
		xp[j] = x0[j]
	}
	return J
}

// epsilon is the spacing between 1.0 and the next float64.
var epsilon = math.Nextafter(1, 2) - 1

func solveLinear(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) || math.IsNaN(float64(cond)) {
			return nil, errors.Join(ErrSingularJacobian, err)
		}
	}
	for i := 0; i < x.Len(); i++ {
		if v := x.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingularJacobian
		}
	}
	return &x, nil
}

func toState(v mat.Vector) dynamo.State {
	s := make(dynamo.State, v.Len())
	for i := range s {
		s[i] = v.AtVec(i)
	}
	return s
}
