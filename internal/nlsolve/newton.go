package nlsolve

import (
	"fmt"

	"github.com/san-kum/odekit/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Newton iterates x -= J(x)⁻¹ F(x) with a fresh finite-difference Jacobian each step.
// The system must be square.
type Newton struct {
	Tol     float64
	MaxIter int
}

func NewNewton() *Newton {
	return &Newton{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

func (n *Newton) Solve(f Residual, x0 dynamo.State) ([]dynamo.State, error) {
	maxIter := n.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	x := x0.Clone()
	iterates := []dynamo.State{x}
	fx := f(x)
	if len(fx) != len(x) {
		return iterates, fmt.Errorf("newton: residual has %d components for %d unknowns: %w", len(fx), len(x), dynamo.ErrDimensionMismatch)
	}

	for k := 0; k < maxIter; k++ {
		if fx.Norm() <= n.Tol {
			return iterates, nil
		}

		J := FDJacobian(f, x, fx)
		sv, err := solveLinear(J, mat.NewVecDense(len(fx), fx.Clone()))
		if err != nil {
			return iterates, fmt.Errorf("newton iteration %d: %w", k+1, err)
		}
		s := toState(sv)

		x = x.Sub(s)
		iterates = append(iterates, x)
		fx = f(x)

		if s.Norm() <= n.Tol*(1+x.Norm()) {
			return iterates, nil
		}
	}

	if fx.Norm() <= n.Tol {
		return iterates, nil
	}
	return iterates, fmt.Errorf("%w: residual norm %.3e after %d iterations", ErrNotConverged, fx.Norm(), maxIter)
}
