package problems

import (
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

// NewOscillator is the harmonic oscillator x'' = -ω²x as the system [x, v].
func NewOscillator() *Problem {
	return &Problem{
		Name:        "oscillator",
		Description: "x'' = -omega^2*x",
		Rate: func(x dynamo.State, p dynamo.Params, t float64) dynamo.State {
			w := p.Get("omega", 1)
			return dynamo.State{x[1], -w * w * x[0]}
		},
		U0:     dynamo.State{1, 0},
		Span:   dynamo.Span{T0: 0, Tf: 2 * math.Pi},
		Params: dynamo.Params{"omega": 1},
		Exact: func(u0 dynamo.State, p dynamo.Params, t float64) dynamo.State {
			w := p.Get("omega", 1)
			c, s := math.Cos(w*t), math.Sin(w*t)
			return dynamo.State{u0[0]*c + u0[1]/w*s, -u0[0]*w*s + u0[1]*c}
		},
		Energy: func(x dynamo.State, p dynamo.Params) float64 {
			w := p.Get("omega", 1)
			return 0.5 * (x[1]*x[1] + w*w*x[0]*x[0])
		},
	}
}

// NewPendulum is θ'' = -(g/L) sin θ - c θ'.
func NewPendulum() *Problem {
	return &Problem{
		Name:        "pendulum",
		Description: "theta'' = -(g/L)*sin(theta) - damping*theta'",
		Rate: func(x dynamo.State, p dynamo.Params, t float64) dynamo.State {
			theta, omega := x[0], x[1]
			alpha := -p.Get("gravity", 9.81)/p.Get("length", 1)*math.Sin(theta) - p.Get("damping", 0)*omega
			return dynamo.State{omega, alpha}
		},
		U0:     dynamo.State{0.5, 0},
		Span:   dynamo.Span{T0: 0, Tf: 10},
		Params: dynamo.Params{"gravity": 9.81, "length": 1, "damping": 0},
		Energy: func(x dynamo.State, p dynamo.Params) float64 {
			// per unit mass
			l := p.Get("length", 1)
			v := l * x[1]
			return 0.5*v*v + p.Get("gravity", 9.81)*l*(1-math.Cos(x[0]))
		},
	}
}

// NewVanDerPol is x' = y, y' = μ(1 - x²)y - x.
func NewVanDerPol() *Problem {
	return &Problem{
		Name:        "vanderpol",
		Description: "x'' = mu*(1 - x^2)*x' - x",
		Rate: func(s dynamo.State, p dynamo.Params, t float64) dynamo.State {
			x, y := s[0], s[1]
			return dynamo.State{y, p.Get("mu", 1)*(1-x*x)*y - x}
		},
		U0:     dynamo.State{2, 0},
		Span:   dynamo.Span{T0: 0, Tf: 20},
		Params: dynamo.Params{"mu": 1},
	}
}

// NewDuffing is the forced oscillator x'' + δx' + αx + βx³ = γ cos(ωt).
func NewDuffing() *Problem {
	return &Problem{
		Name:        "duffing",
		Description: "x'' + delta*x' + alpha*x + beta*x^3 = gamma*cos(omega*t)",
		Rate: func(s dynamo.State, p dynamo.Params, t float64) dynamo.State {
			x, v := s[0], s[1]
			force := p.Get("gamma", 0.5) * math.Cos(p.Get("omega", 1.2)*t)
			return dynamo.State{v, -p.Get("delta", 0.3)*v - p.Get("alpha", -1)*x - p.Get("beta", 1)*x*x*x + force}
		},
		U0:     dynamo.State{1, 0},
		Span:   dynamo.Span{T0: 0, Tf: 50},
		Params: dynamo.Params{"alpha": -1, "beta": 1, "delta": 0.3, "gamma": 0.5, "omega": 1.2},
	}
}
