package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/odekit/internal/dynamo"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT of data.
func PowerSpectrum(data []float64) []float64 {
	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// DominantFrequency returns the frequency (cycles per unit time) with the largest
// non-constant spectral power in the given state component. The trajectory must be on
// a uniform grid.
func DominantFrequency(tr *dynamo.Trajectory, component int) (float64, error) {
	n := tr.Len()
	if n < 4 {
		return 0, fmt.Errorf("need at least 4 points, got %d", n)
	}
	if component < 0 || component >= len(tr.States[0]) {
		return 0, fmt.Errorf("component %d out of range", component)
	}
	dt := tr.Times[1] - tr.Times[0]
	for i := 2; i < n; i++ {
		if d := tr.Times[i] - tr.Times[i-1]; math.Abs(d-dt) > 1e-9*math.Max(1, math.Abs(dt)) {
			return 0, fmt.Errorf("trajectory is not uniformly spaced at point %d", i)
		}
	}

	// the last point duplicates the first phase of a periodic signal on a closed grid
	data := tr.Component(component)[:n-1]
	ps := PowerSpectrum(data)

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(best) / (float64(len(data)) * dt), nil
}
