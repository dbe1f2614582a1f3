package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odekit/internal/integrators"
	"github.com/san-kum/odekit/internal/problems"
	"gonum.org/v1/gonum/stat"
)

type Sample struct {
	N           int     `json:"n"`
	H           float64 `json:"h"`
	Error       float64 `json:"error"`
	Order       float64 `json:"order"`
	Evaluations int     `json:"evaluations"`
}

type Study struct {
	Problem string   `json:"problem"`
	Method  string   `json:"method"`
	Samples []Sample `json:"samples"`
}

// ObservedOrder is log(e1/e2) / log(n2/n1).
func ObservedOrder(n1, n2 int, e1, e2 float64) float64 {
	return math.Log(e1/e2) / math.Log(float64(n2)/float64(n1))
}

// Convergence runs a fixed-step method for each n and records the infinity-norm error at
// the final time against the problem's exact solution.
func Convergence(reg *integrators.Registry, method string, prob *problems.Problem, ns []int) (*Study, error) {
	if reg.IsAdaptive(method) {
		return nil, fmt.Errorf("convergence study needs a fixed-step method, %s is adaptive", method)
	}
	exact, err := prob.ExactAt(prob.Span.Tf)
	if err != nil {
		return nil, err
	}
	m, err := reg.Get(method)
	if err != nil {
		return nil, err
	}

	study := &Study{Problem: prob.Name, Method: method, Samples: make([]Sample, 0, len(ns))}
	for i, n := range ns {
		tr, err := m(prob.Rate, prob.U0, prob.Span, prob.Params, integrators.Control{N: n})
		if err != nil {
			return nil, fmt.Errorf("n=%d: %w", n, err)
		}
		_, u := tr.Final()

		s := Sample{
			N:           n,
			H:           prob.Span.Length() / float64(n),
			Error:       u.Sub(exact).NormInf(),
			Order:       math.NaN(),
			Evaluations: tr.Stats.Evaluations,
		}
		if i > 0 {
			prev := study.Samples[i-1]
			s.Order = ObservedOrder(prev.N, n, prev.Error, s.Error)
		}
		study.Samples = append(study.Samples, s)
	}
	return study, nil
}

// FittedOrder is the negated slope of the least-squares line through (log n, log error).
// Samples with zero error are skipped.
func (s *Study) FittedOrder() float64 {
	var x, y []float64
	for _, sm := range s.Samples {
		if sm.Error > 0 {
			x = append(x, math.Log(float64(sm.N)))
			y = append(y, math.Log(sm.Error))
		}
	}
	if len(x) < 2 {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(x, y, nil, false)
	return -beta
}

// Errors returns the error column, for plotting.
func (s *Study) Errors() []float64 {
	out := make([]float64, len(s.Samples))
	for i, sm := range s.Samples {
		out[i] = sm.Error
	}
	return out
}
