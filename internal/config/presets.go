package config

import (
	"sort"

	"github.com/san-kum/odekit/internal/dynamo"
)

var Presets = map[string]map[string]*Config{
	"exponential": {
		"decay": {
			Problem: "exponential", Method: "rk4", N: 50, Tol: DefaultTol,
			Params: map[string]float64{"lambda": -1},
		},
		"growth": {
			Problem: "exponential", Method: "rk23", N: DefaultN, Tol: 1e-8,
			Params: map[string]float64{"lambda": 2},
		},
		"stiffish": {
			Problem: "exponential", Method: "am2", N: 40, Tol: DefaultTol,
			Params: map[string]float64{"lambda": -50},
		},
	},
	"oscillator": {
		"period": {
			Problem: "oscillator", Method: "rk23", N: DefaultN, Tol: 1e-6,
		},
		"long": {
			Problem: "oscillator", Method: "ab4", N: 4000, Tol: DefaultTol,
			Span: &dynamo.Span{T0: 0, Tf: 100},
		},
	},
	"pendulum": {
		"small": {
			Problem: "pendulum", Method: "rk4", N: 2000, Tol: DefaultTol,
			U0: []float64{0.2, 0.0}, Span: &dynamo.Span{T0: 0, Tf: 20},
		},
		"large": {
			Problem: "pendulum", Method: "rk4", N: 2000, Tol: DefaultTol,
			U0: []float64{2.5, 0.0}, Span: &dynamo.Span{T0: 0, Tf: 20},
		},
		"spinning": {
			Problem: "pendulum", Method: "rk23", N: DefaultN, Tol: 1e-7,
			U0: []float64{0.1, 8.0}, Span: &dynamo.Span{T0: 0, Tf: 30},
		},
	},
	"vanderpol": {
		"relaxation": {
			Problem: "vanderpol", Method: "rk23", N: DefaultN, Tol: 1e-6,
			Params: map[string]float64{"mu": 5}, Span: &dynamo.Span{T0: 0, Tf: 40},
		},
	},
	"lorenz": {
		"butterfly": {
			Problem: "lorenz", Method: "rk23", N: DefaultN, Tol: 1e-8,
		},
	},
	"logistic": {
		"slow": {
			Problem: "logistic", Method: "ie", N: 100, Tol: DefaultTol,
			Params: map[string]float64{"r": 0.5, "K": 2},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(problem, name string) *Config {
	if presets, ok := Presets[problem]; ok {
		if cfg, ok := presets[name]; ok {
			c := *cfg
			c.U0 = append([]float64(nil), cfg.U0...)
			if cfg.Span != nil {
				span := *cfg.Span
				c.Span = &span
			}
			if cfg.Params != nil {
				c.Params = make(map[string]float64, len(cfg.Params))
				for k, v := range cfg.Params {
					c.Params[k] = v
				}
			}
			return &c
		}
	}
	return nil
}

func ListPresets(problem string) []string {
	presets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
