package integrators

import (
	"testing"

	"github.com/san-kum/odekit/internal/dynamo"
)

func benchNBody(x dynamo.State, p dynamo.Params, t float64) dynamo.State {
	dx := make(dynamo.State, 20)
	for i := 0; i < 5; i++ {
		dx[i*4] = x[i*4+2]
		dx[i*4+1] = x[i*4+3]
		dx[i*4+2] = -x[i*4] * 0.1
		dx[i*4+3] = -x[i*4+1] * 0.1
	}
	return dx
}

func BenchmarkEuler(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Euler(oscillator, dynamo.State{1.0, 0.0}, dynamo.Span{T0: 0, Tf: 10}, nil, 1000)
	}
}

func BenchmarkRK4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RK4(oscillator, dynamo.State{1.0, 0.0}, dynamo.Span{T0: 0, Tf: 10}, nil, 1000)
	}
}

func BenchmarkRK23(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RK23(oscillator, dynamo.State{1.0, 0.0}, dynamo.Span{T0: 0, Tf: 10}, nil, 1e-6)
	}
}

func BenchmarkAB4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		AB4(oscillator, dynamo.State{1.0, 0.0}, dynamo.Span{T0: 0, Tf: 10}, nil, 1000)
	}
}

func BenchmarkAM2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		AM2(oscillator, dynamo.State{1.0, 0.0}, dynamo.Span{T0: 0, Tf: 10}, nil, 1000)
	}
}

func BenchmarkRK4_NBody5(b *testing.B) {
	x := make(dynamo.State, 20)
	for i := range x {
		x[i] = float64(i) * 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RK4(benchNBody, x, dynamo.Span{T0: 0, Tf: 1}, nil, 1000)
	}
}
