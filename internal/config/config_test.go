package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/integrators"
	"github.com/san-kum/odekit/internal/problems"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "exponential" {
		t.Errorf("expected problem exponential, got %s", cfg.Problem)
	}
	if cfg.N <= 0 {
		t.Error("n should be positive")
	}
	if cfg.Tol <= 0 {
		t.Error("tol should be positive")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := &Config{
		Problem: "oscillator",
		Method:  "rk23",
		N:       10,
		Tol:     1e-9,
		Span:    &dynamo.Span{T0: 0, Tf: 3},
		U0:      []float64{0.5, 0.25},
		Params:  map[string]float64{"omega": 2},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Problem != "oscillator" || loaded.Method != "rk23" || loaded.N != 10 || loaded.Tol != 1e-9 {
		t.Errorf("loaded config = %+v", loaded)
	}
	if loaded.Span == nil || loaded.Span.Tf != 3 {
		t.Errorf("span not loaded: %+v", loaded.Span)
	}
	if len(loaded.U0) != 2 || loaded.Params["omega"] != 2 {
		t.Errorf("u0/params not loaded: %v %v", loaded.U0, loaded.Params)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("problem: logistic\nmethod: euler\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.N != DefaultN || cfg.Tol != DefaultTol {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Method != "euler" {
		t.Errorf("expected method euler, got %s", cfg.Method)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("n: [not, a, number"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = "oscillator"
	cfg.U0 = []float64{0, 1}
	cfg.Params = map[string]float64{"omega": 3}
	cfg.Span = &dynamo.Span{T0: 1, Tf: 2}

	prob, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if prob.U0[0] != 0 || prob.U0[1] != 1 {
		t.Errorf("u0 override not applied: %v", prob.U0)
	}
	if prob.Params["omega"] != 3 {
		t.Errorf("param override not applied: %v", prob.Params)
	}
	if prob.Span.T0 != 1 || prob.Span.Tf != 2 {
		t.Errorf("span override not applied: %+v", prob.Span)
	}

	cfg.U0 = []float64{1, 2, 3}
	if _, err := cfg.Resolve(); !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}

	cfg.Problem = "nonexistent"
	if _, err := cfg.Resolve(); err == nil {
		t.Error("expected error for unknown problem")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "small")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.U0[0] != 0.2 {
		t.Errorf("expected theta 0.2, got %f", cfg.U0[0])
	}

	cfg.Method = "euler"
	if Presets["pendulum"]["small"].Method != "rk4" {
		t.Error("GetPreset returned a shared config")
	}
}

func TestGetPreset_DeepCopy(t *testing.T) {
	cfg := GetPreset("vanderpol", "relaxation")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	cfg.Params["mu"] = 100
	cfg.Span.Tf = 1

	orig := Presets["vanderpol"]["relaxation"]
	if orig.Params["mu"] != 5 {
		t.Errorf("preset params mutated: mu = %v", orig.Params["mu"])
	}
	if orig.Span.Tf != 40 {
		t.Errorf("preset span mutated: tf = %v", orig.Span.Tf)
	}

	small := GetPreset("pendulum", "small")
	small.U0[0] = 1
	if Presets["pendulum"]["small"].U0[0] != 0.2 {
		t.Error("preset u0 mutated")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("pendulum", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "small"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("pendulum")
	if len(presets) != 3 || presets[0] != "large" {
		t.Errorf("unexpected pendulum presets: %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

// Every preset must name a real problem and method and resolve cleanly.
func TestPresetsResolve(t *testing.T) {
	reg := integrators.NewRegistry(nil)
	for problem, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Problem != problem {
				t.Errorf("%s/%s: problem field %s", problem, name, cfg.Problem)
			}
			if _, err := reg.Get(cfg.Method); err != nil {
				t.Errorf("%s/%s: %v", problem, name, err)
			}
			if _, err := problems.Get(cfg.Problem); err != nil {
				t.Errorf("%s/%s: %v", problem, name, err)
			}
			if _, err := cfg.Resolve(); err != nil {
				t.Errorf("%s/%s: %v", problem, name, err)
			}
		}
	}
}
