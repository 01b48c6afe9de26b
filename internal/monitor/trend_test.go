package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlopeRequiresFullBuffer(t *testing.T) {
	b := newTrendBuffer(5)
	assert.Zero(t, b.slope(), "empty buffer")

	b.push(1.0)
	assert.Zero(t, b.slope(), "single point")

	b.push(2.0)
	b.push(3.0)
	assert.Zero(t, b.slope(), "partially populated buffer")
}

func TestSlopeExactLinearTrend(t *testing.T) {
	const (
		a    = 4.0
		rate = 0.5
	)

	b := newTrendBuffer(10)
	for i := 0; i < 10; i++ {
		b.push(a + rate*float64(i))
	}

	assert.InDelta(t, rate, b.slope(), 1e-9)
}

func TestSlopeConstantSignalIsZero(t *testing.T) {
	b := newTrendBuffer(8)
	for i := 0; i < 8; i++ {
		b.push(3.3)
	}

	assert.InDelta(t, 0.0, b.slope(), 1e-12)
}

func TestSlopeSlidesOverOldPoints(t *testing.T) {
	b := newTrendBuffer(4)
	// Noise that will be fully displaced by the linear tail.
	for _, v := range []float64{50, -20, 7} {
		b.push(v)
	}
	for i := 0; i < 4; i++ {
		b.push(1.0 + 2.0*float64(i))
	}

	assert.InDelta(t, 2.0, b.slope(), 1e-9, "only the most recent capacity points may contribute")
}
