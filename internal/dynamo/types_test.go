package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Norms(t *testing.T) {
	tests := []struct {
		state State
		two   float64
		inf   float64
	}{
		{State{3, -4}, 5.0, 4.0},
		{State{1, 0}, 1.0, 1.0},
		{State{0, 0}, 0.0, 0.0},
		{State{1, 1, 1, 1}, 2.0, 1.0},
		{Scalar(-2.5), 2.5, 2.5},
		{State{}, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.two) > 1e-12 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.two)
		}
		if got := tt.state.NormInf(); math.Abs(got-tt.inf) > 1e-12 {
			t.Errorf("NormInf(%v) = %v, want %v", tt.state, got, tt.inf)
		}
	}
}

func TestState_Arithmetic(t *testing.T) {
	a := State{1, 2, 3}
	b := State{4, 5, 6}

	sum := a.Add(b)
	if sum[0] != 5 || sum[1] != 7 || sum[2] != 9 {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff[0] != 3 || diff[1] != 3 || diff[2] != 3 {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled[0] != 2 || scaled[1] != 4 || scaled[2] != 6 {
		t.Errorf("Scale failed: got %v", scaled)
	}

	axpy := a.AddScaled(0.5, b)
	if axpy[0] != 3 || axpy[1] != 4.5 || axpy[2] != 6 {
		t.Errorf("AddScaled failed: got %v", axpy)
	}

	comb := a.Combine(2, []float64{1, -1}, []State{b, a})
	if comb[0] != 7 || comb[1] != 8 || comb[2] != 9 {
		t.Errorf("Combine failed: got %v", comb)
	}

	if a[0] != 1 || a[1] != 2 || a[2] != 3 {
		t.Errorf("receiver modified: %v", a)
	}
}

func TestScalarRate(t *testing.T) {
	f := ScalarRate(func(u float64, p Params, t float64) float64 {
		return p["k"]*u + t
	})
	du := f(Scalar(2), Params{"k": 3}, 1)
	if len(du) != 1 || du[0] != 7 {
		t.Errorf("ScalarRate: got %v, want [7]", du)
	}
}

func TestParamsGet(t *testing.T) {
	p := Params{"a": 1}
	if p.Get("a", 5) != 1 {
		t.Error("expected stored value")
	}
	if p.Get("b", 5) != 5 {
		t.Error("expected default value")
	}
	var nilParams Params
	if nilParams.Get("a", 2) != 2 {
		t.Error("expected default from nil params")
	}
}

func TestTrajectory(t *testing.T) {
	tr := NewTrajectory(2)
	if tf, u := tr.Final(); !math.IsNaN(tf) || u != nil {
		t.Errorf("empty trajectory Final = (%v, %v)", tf, u)
	}

	tr.Append(0, State{1, 2})
	tr.Append(0.5, State{3, 4})

	if tr.Len() != 2 {
		t.Errorf("expected 2 points, got %d", tr.Len())
	}
	tf, u := tr.Final()
	if tf != 0.5 || u[1] != 4 {
		t.Errorf("Final = (%v, %v)", tf, u)
	}
	c := tr.Component(1)
	if c[0] != 2 || c[1] != 4 {
		t.Errorf("Component(1) = %v", c)
	}
}

func TestCounted(t *testing.T) {
	n := 0
	f := Counted(func(u State, p Params, t float64) State { return u }, &n)
	f(Scalar(1), nil, 0)
	f(Scalar(1), nil, 0)
	if n != 2 {
		t.Errorf("expected 2 evaluations, got %d", n)
	}
}

func TestValidate(t *testing.T) {
	ok := func(u State, p Params, t float64) State { return u.Scale(-1) }
	short := func(u State, p Params, t float64) State { return State{0} }

	tests := []struct {
		name string
		f    RateFunc
		u0   State
		span Span
		want error
	}{
		{"valid", ok, State{1, 2}, Span{0, 1}, nil},
		{"nil rate", nil, State{1}, Span{0, 1}, ErrInvalidArgument},
		{"empty state", ok, State{}, Span{0, 1}, ErrInvalidArgument},
		{"reversed span", ok, State{1}, Span{1, 0}, ErrInvalidArgument},
		{"empty span", ok, State{1}, Span{1, 1}, ErrInvalidArgument},
		{"dimension mismatch", short, State{1, 2}, Span{0, 1}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			du, err := Validate(tt.f, tt.u0, tt.span, nil)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(du) != len(tt.u0) {
					t.Errorf("derivative has %d components", len(du))
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Step: 150, Time: 1.5, Wrapped: ErrMaxSteps}
	expected := "step 150 (t=1.5000): dynamo: maximum number of steps exceeded"
	if err.Error() != expected {
		t.Errorf("StepError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrMaxSteps) {
		t.Error("StepError does not unwrap")
	}
}
