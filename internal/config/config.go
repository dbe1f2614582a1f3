package config

import (
	"fmt"
	"os"

	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/integrators"
	"github.com/san-kum/odekit/internal/problems"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProblem = "exponential"
	DefaultMethod  = "rk4"
	DefaultN       = 100
	DefaultTol     = 1e-6
)

type Config struct {
	Problem string             `yaml:"problem"`
	Method  string             `yaml:"method"`
	N       int                `yaml:"n"`
	Tol     float64            `yaml:"tol"`
	Span    *dynamo.Span       `yaml:"span,omitempty"`
	U0      []float64          `yaml:"u0,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Method:  DefaultMethod,
		N:       DefaultN,
		Tol:     DefaultTol,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Control() integrators.Control {
	return integrators.Control{N: c.N, Tol: c.Tol}
}

// Resolve looks up the configured problem and applies the span, initial state and
// parameter overrides.
func (c *Config) Resolve() (*problems.Problem, error) {
	base, err := problems.Get(c.Problem)
	if err != nil {
		return nil, err
	}
	prob := base.WithParams(c.Params)
	if c.Span != nil {
		prob.Span = *c.Span
	}
	if len(c.U0) > 0 {
		if len(c.U0) != len(base.U0) {
			return nil, fmt.Errorf("%w: problem %s has %d state components, u0 has %d",
				dynamo.ErrDimensionMismatch, c.Problem, len(base.U0), len(c.U0))
		}
		prob.U0 = dynamo.State(c.U0).Clone()
	}
	return prob, nil
}
