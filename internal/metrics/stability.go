package metrics

import (
	"math"

	"github.com/san-kum/odekit/internal/dynamo"
)

// Stability reports the fraction of points whose components all stay finite and
// within threshold in absolute value.
type Stability struct {
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(u dynamo.State, t float64) {
	s.samples++
	if !u.IsValid() {
		s.violations++
		return
	}
	for _, v := range u {
		if math.Abs(v) > s.threshold {
			s.violations++
			return
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
