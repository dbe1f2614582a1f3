package metrics

import (
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

// EnergyDrift tracks the largest relative deviation of a conserved quantity from its
// value at the first observed point. When the initial energy is zero the absolute
// deviation is reported instead.
type EnergyDrift struct {
	energy   func(u dynamo.State, p dynamo.Params) float64
	params   dynamo.Params
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(energy func(u dynamo.State, p dynamo.Params) float64, p dynamo.Params) *EnergyDrift {
	return &EnergyDrift{energy: energy, params: p}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(u dynamo.State, t float64) {
	energy := e.energy(u, e.params)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	drift := math.Abs(energy - e.initial)
	if e.initial != 0 {
		drift /= math.Abs(e.initial)
	}
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

// Final returns the energy at the last observed point.
func (e *EnergyDrift) Final() float64 { return e.current }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.maxDrift = 0
	e.samples = 0
}
