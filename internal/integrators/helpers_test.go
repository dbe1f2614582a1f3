package integrators

import (
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

type solveFunc func(f dynamo.RateFunc, u0 dynamo.State, span dynamo.Span, p dynamo.Params, n int) (*dynamo.Trajectory, error)

var fixedMethods = []struct {
	name  string
	solve solveFunc
}{
	{"euler", Euler},
	{"ie", ImprovedEuler},
	{"rk4", RK4},
	{"ab4", AB4},
	{"am2", AM2},
}

func linear(u dynamo.State, p dynamo.Params, t float64) dynamo.State {
	return u.Scale(p["lambda"])
}

var linearScalar = dynamo.ScalarRate(func(u float64, p dynamo.Params, t float64) float64 {
	return p["lambda"] * u
})

func oscillator(x dynamo.State, p dynamo.Params, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func zero(u dynamo.State, p dynamo.Params, t float64) dynamo.State {
	return make(dynamo.State, len(u))
}

func endpointError(tr *dynamo.Trajectory, exact float64) float64 {
	_, u := tr.Final()
	return math.Abs(u[0] - exact)
}
