package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakWindowAbsolutePeak(t *testing.T) {
	w := newPeakWindow(4)
	w.push(1.0)
	w.push(-7.5)
	w.push(2.0)

	assert.False(t, w.full())
	assert.InDelta(t, 7.5, w.peak(), 1e-12, "peak scans populated slots by absolute value")
}

func TestPeakWindowOverwritesOldest(t *testing.T) {
	w := newPeakWindow(3)
	for _, v := range []float64{9.0, 1.0, 2.0} {
		w.push(v)
	}
	assert.True(t, w.full())
	assert.InDelta(t, 9.0, w.peak(), 1e-12)

	// 9.0 is the oldest slot; the next push evicts it.
	w.push(3.0)
	assert.InDelta(t, 3.0, w.peak(), 1e-12)
}

func TestThermalBands(t *testing.T) {
	const (
		warning  = 70.0
		critical = 85.0
	)

	cases := []struct {
		value float64
		want  ThermalStatus
	}{
		{40.0, ThermalNominal},
		{69.9, ThermalNominal},
		{70.0, ThermalWarning},
		{84.9, ThermalWarning},
		{85.0, ThermalCritical},
		{120.0, ThermalCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyThermal(tc.value, warning, critical), "value %.1f", tc.value)
	}
}
