package metrics

import "github.com/san-kum/odekit/internal/dynamo"

// Metric accumulates a scalar figure of merit over the points of a trajectory.
type Metric interface {
	Name() string
	Observe(u dynamo.State, t float64)
	Value() float64
	Reset()
}

// Evaluate resets each metric, feeds it every point of tr and collects the values by name.
func Evaluate(tr *dynamo.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i, u := range tr.States {
			m.Observe(u, tr.Times[i])
		}
		out[m.Name()] = m.Value()
	}
	return out
}
