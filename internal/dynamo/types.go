package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is a fixed-dimension numeric state. Scalars are length-1 states.
type State []float64

// Scalar wraps v as a length-1 state.
func Scalar(v float64) State {
	return State{v}
}

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// NormInf returns the largest absolute component.
func (s State) NormInf() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, math.Inf(1))
}

func (s State) Norm() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	floats.AddTo(result, s, other)
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	floats.SubTo(result, s, other)
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	floats.ScaleTo(result, factor, s)
	return result
}

// AddScaled returns s + alpha*other.
func (s State) AddScaled(alpha float64, other State) State {
	result := make(State, len(s))
	floats.AddScaledTo(result, s, alpha, other)
	return result
}

// Combine returns s + h*Σ coeffs[j]*terms[j].
func (s State) Combine(h float64, coeffs []float64, terms []State) State {
	result := s.Clone()
	for j, k := range terms {
		floats.AddScaled(result, h*coeffs[j], k)
	}
	return result
}

// Params are threaded unchanged to every rate evaluation.
type Params map[string]float64

// Get returns the named parameter or def when it is absent.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// RateFunc evaluates du/dt = f(u, p, t). It must be pure and return a state of len(u).
type RateFunc func(u State, p Params, t float64) State

// ScalarRate adapts a scalar rate function to length-1 states.
func ScalarRate(f func(u float64, p Params, t float64) float64) RateFunc {
	return func(u State, p Params, t float64) State {
		return State{f(u[0], p, t)}
	}
}

type Span struct {
	T0 float64 `json:"t0" yaml:"t0"`
	Tf float64 `json:"tf" yaml:"tf"`
}

func (s Span) Length() float64 { return s.Tf - s.T0 }

type Stats struct {
	Steps       int  `json:"steps"`
	Rejected    int  `json:"rejected"`
	Evaluations int  `json:"evaluations"`
	Aborted     bool `json:"aborted"`
}

// Trajectory holds the time points and the state at each of them.
type Trajectory struct {
	Times  []float64
	States []State
	Stats  Stats
}

func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		Times:  make([]float64, 0, capacity),
		States: make([]State, 0, capacity),
	}
}

func (tr *Trajectory) Append(t float64, u State) {
	tr.Times = append(tr.Times, t)
	tr.States = append(tr.States, u)
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Final returns the last time point and state.
func (tr *Trajectory) Final() (float64, State) {
	n := len(tr.Times)
	if n == 0 {
		return math.NaN(), nil
	}
	return tr.Times[n-1], tr.States[n-1]
}

// Component extracts the i-th state component along the trajectory.
func (tr *Trajectory) Component(i int) []float64 {
	out := make([]float64, len(tr.States))
	for j, s := range tr.States {
		out[j] = s[i]
	}
	return out
}

// Counted wraps f so every evaluation increments *n.
func Counted(f RateFunc, n *int) RateFunc {
	return func(u State, p Params, t float64) State {
		*n++
		return f(u, p, t)
	}
}
