package nlsolve

import (
	"fmt"
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// residualLimit is the largest final residual norm accepted as a root.
const residualLimit = 1e-3

// Levenberg is a damped quasi-Newton method. The Jacobian starts as a finite-difference
// approximation and is kept current with Broyden updates; it is recomputed only when a
// step is rejected with a stale Jacobian.
type Levenberg struct {
	Tol     float64
	MaxIter int
}

func NewLevenberg() *Levenberg {
	return &Levenberg{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

func (l *Levenberg) Solve(f Residual, x0 dynamo.State) ([]dynamo.State, error) {
	ftol, xtol := l.Tol, l.Tol
	maxIter := l.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	x := x0.Clone()
	iterates := []dynamo.State{x}
	fk := f(x)
	A := FDJacobian(f, x, fk)
	jacIsNew := true
	lambda := 10.0
	stepNorm := math.Inf(1)
	n := len(x)

	for k := 1; stepNorm > xtol && fk.Norm() > ftol && k < maxIter; {
		fv := mat.NewVecDense(len(fk), fk.Clone())

		var B mat.Dense
		B.Mul(A.T(), A)
		for i := 0; i < n; i++ {
			B.Set(i, i, B.At(i, i)+lambda)
		}
		var z mat.VecDense
		z.MulVec(A.T(), fv)

		sv, err := solveLinear(&B, &z)
		if err != nil {
			return iterates, fmt.Errorf("levenberg iteration %d: %w", k, err)
		}
		sv.ScaleVec(-1, sv)
		s := toState(sv)
		stepNorm = s.Norm()

		xnew := x.Add(s)
		fnew := f(xnew)

		if fnew.Norm() < fk.Norm() {
			y := fnew.Sub(fk)
			x = xnew
			iterates = append(iterates, x)
			fk = fnew
			k++
			lambda /= 10

			// A += (y - A s) sᵀ / (sᵀ s)
			var As mat.VecDense
			As.MulVec(A, sv)
			r := mat.NewVecDense(len(y), y.Clone())
			r.SubVec(r, &As)
			var upd mat.Dense
			upd.Outer(1/mat.Dot(sv, sv), r, sv)
			A.Add(A, &upd)
			jacIsNew = false
		} else {
			lambda *= 4
			if !jacIsNew {
				A = FDJacobian(f, x, fk)
				jacIsNew = true
			}
		}
	}

	if fk.Norm() > residualLimit {
		return iterates, fmt.Errorf("%w: residual norm %.3e after %d iterates", ErrNotConverged, fk.Norm(), len(iterates))
	}
	return iterates, nil
}
