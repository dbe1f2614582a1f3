package nlsolve_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/nlsolve"
)

// circleLine intersects x²+y²=4 with y=x; roots at ±(√2, √2).
func circleLine(x dynamo.State) dynamo.State {
	return dynamo.State{x[0]*x[0] + x[1]*x[1] - 4, x[1] - x[0]}
}

func linear(x dynamo.State) dynamo.State {
	return dynamo.State{3*x[0] - 6}
}

var _ = Describe("FDJacobian", func() {
	It("should approximate the jacobian of a smooth map", func() {
		x0 := dynamo.State{1, 2}
		J := nlsolve.FDJacobian(circleLine, x0, circleLine(x0))

		r, c := J.Dims()
		Expect(r).To(Equal(2))
		Expect(c).To(Equal(2))
		Expect(J.At(0, 0)).To(BeNumerically("~", 2, 1e-6))
		Expect(J.At(0, 1)).To(BeNumerically("~", 4, 1e-6))
		Expect(J.At(1, 0)).To(BeNumerically("~", -1, 1e-6))
		Expect(J.At(1, 1)).To(BeNumerically("~", 1, 1e-6))
	})

	It("should not modify the evaluation point", func() {
		x0 := dynamo.State{1, 2}
		nlsolve.FDJacobian(circleLine, x0, circleLine(x0))
		Expect(x0).To(Equal(dynamo.State{1, 2}))
	})
})

var _ = Describe("Solvers", func() {
	solvers := map[string]func() nlsolve.Solver{
		"levenberg": func() nlsolve.Solver { return nlsolve.NewLevenberg() },
		"newton":    func() nlsolve.Solver { return nlsolve.NewNewton() },
	}

	for name, build := range solvers {
		Context(name, func() {
			var solver nlsolve.Solver

			BeforeEach(func() {
				solver = build()
			})

			It("should start the iterate sequence at the initial guess", func() {
				x0 := dynamo.State{1, 0.5}
				iterates, err := solver.Solve(circleLine, x0)

				Expect(err).ToNot(HaveOccurred())
				Expect(iterates[0]).To(Equal(x0))
				Expect(len(iterates)).To(BeNumerically(">", 1))
			})

			It("should find the root of a nonlinear system", func() {
				iterates, err := solver.Solve(circleLine, dynamo.State{1, 0.5})

				Expect(err).ToNot(HaveOccurred())
				root := iterates[len(iterates)-1]
				Expect(root[0]).To(BeNumerically("~", math.Sqrt2, 1e-8))
				Expect(root[1]).To(BeNumerically("~", math.Sqrt2, 1e-8))
			})

			It("should solve a scalar linear equation", func() {
				iterates, err := solver.Solve(linear, dynamo.Scalar(0))

				Expect(err).ToNot(HaveOccurred())
				Expect(iterates[len(iterates)-1][0]).To(BeNumerically("~", 2, 1e-10))
			})

			It("should return immediately when the guess is a root", func() {
				iterates, err := solver.Solve(linear, dynamo.Scalar(2))

				Expect(err).ToNot(HaveOccurred())
				Expect(iterates).To(HaveLen(1))
			})

			It("should fail when there is no root", func() {
				noRoot := func(x dynamo.State) dynamo.State {
					return dynamo.State{x[0]*x[0] + 1}
				}
				_, err := solver.Solve(noRoot, dynamo.Scalar(0.5))

				Expect(err).To(HaveOccurred())
			})
		})
	}

	It("should report non-convergence from levenberg", func() {
		noRoot := func(x dynamo.State) dynamo.State {
			return dynamo.State{x[0]*x[0] + 1}
		}
		_, err := nlsolve.NewLevenberg().Solve(noRoot, dynamo.Scalar(0.5))

		Expect(err).To(MatchError(nlsolve.ErrNotConverged))
	})

	It("should reject non-square systems in newton", func() {
		wide := func(x dynamo.State) dynamo.State {
			return dynamo.State{x[0], x[0]}
		}
		_, err := nlsolve.NewNewton().Solve(wide, dynamo.Scalar(1))

		Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
	})
})
