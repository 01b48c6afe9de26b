package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEMAColdStart(t *testing.T) {
	for _, x := range []float64{-3.5, 0, 0.001, 42.0, 1e9} {
		for _, alpha := range []float64{0.01, 0.3, 1.0} {
			assert.Equal(t, x, ema(x, nil, alpha), "cold start must pass the sample through")
		}
	}
}

func TestEMAStep(t *testing.T) {
	prev := 10.0
	got := ema(20.0, &prev, 0.25)
	assert.InDelta(t, 0.25*20.0+0.75*10.0, got, 1e-12)
}

func TestEMAConvergence(t *testing.T) {
	// With constant input x, the smoothed value converges to x; the error
	// shrinks by (1-alpha) each step, so 100 steps at alpha 0.1 leave less
	// than (0.9)^100 of the initial gap.
	const x = 5.0
	value := 100.0
	for i := 0; i < 100; i++ {
		value = ema(x, &value, 0.1)
	}
	assert.InDelta(t, x, value, 95.0*3e-5)
}
