package problems

import (
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

func NewExponential() *Problem {
	return &Problem{
		Name:        "exponential",
		Description: "u' = lambda*u",
		Rate: func(u dynamo.State, p dynamo.Params, t float64) dynamo.State {
			return u.Scale(p.Get("lambda", -1))
		},
		U0:     dynamo.Scalar(1),
		Span:   dynamo.Span{T0: 0, Tf: 2},
		Params: dynamo.Params{"lambda": -1},
		Exact: func(u0 dynamo.State, p dynamo.Params, t float64) dynamo.State {
			return u0.Scale(math.Exp(p.Get("lambda", -1) * t))
		},
	}
}

// NewLogistic is u' = r u (1 - u/K) with u(t) = K / (1 + (K/u0 - 1) e^{-rt}).
func NewLogistic() *Problem {
	return &Problem{
		Name:        "logistic",
		Description: "u' = r*u*(1 - u/K)",
		Rate: dynamo.ScalarRate(func(u float64, p dynamo.Params, t float64) float64 {
			return p.Get("r", 1) * u * (1 - u/p.Get("K", 1))
		}),
		U0:     dynamo.Scalar(0.1),
		Span:   dynamo.Span{T0: 0, Tf: 10},
		Params: dynamo.Params{"r": 1, "K": 1},
		Exact: func(u0 dynamo.State, p dynamo.Params, t float64) dynamo.State {
			r, k := p.Get("r", 1), p.Get("K", 1)
			return dynamo.Scalar(k / (1 + (k/u0[0]-1)*math.Exp(-r*t)))
		},
	}
}

func NewZero() *Problem {
	return &Problem{
		Name:        "zero",
		Description: "u' = 0",
		Rate: func(u dynamo.State, p dynamo.Params, t float64) dynamo.State {
			return make(dynamo.State, len(u))
		},
		U0:     dynamo.State{1, -1},
		Span:   dynamo.Span{T0: 0, Tf: 1},
		Params: dynamo.Params{},
		Exact: func(u0 dynamo.State, p dynamo.Params, t float64) dynamo.State {
			return u0.Clone()
		},
	}
}
