package problems

import "github.com/san-kum/odekit/internal/dynamo"

func NewLorenz() *Problem {
	return &Problem{
		Name:        "lorenz",
		Description: "Lorenz attractor",
		Rate: func(s dynamo.State, p dynamo.Params, t float64) dynamo.State {
			sigma, rho, beta := p.Get("sigma", 10), p.Get("rho", 28), p.Get("beta", 8.0/3.0)
			return dynamo.State{sigma * (s[1] - s[0]), s[0]*(rho-s[2]) - s[1], s[0]*s[1] - beta*s[2]}
		},
		U0:     dynamo.State{1, 1, 1},
		Span:   dynamo.Span{T0: 0, Tf: 20},
		Params: dynamo.Params{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
	}
}
