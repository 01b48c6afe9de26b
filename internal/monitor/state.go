package monitor

// entityState is the per-entity analytics record. All buffers are allocated
// once at creation and never grow; the sample path allocates nothing.
type entityState struct {
	id string

	peaks           *peakWindow
	sinceDecimation int

	trend *trendBuffer

	ampEMA     float64
	ampPrimed  bool
	tempEMA    float64
	tempPrimed bool

	lastTemperature float64

	rulFilter medianFilter

	snapshot Snapshot
}

func newEntityState(id string, t Tuning) *entityState {
	return &entityState{
		id:        id,
		peaks:     newPeakWindow(t.PeakWindow),
		trend:     newTrendBuffer(t.TrendWindow),
		rulFilter: newMedianFilter(),
		snapshot:  Snapshot{EstimatedRUL: RULStable},
	}
}

// observe ingests one raw sample and reports whether the decimation gate
// fired. The snapshot is only recomputed on firing; between firings it holds
// the last computed value.
func (s *entityState) observe(sample Sample, t Tuning) bool {
	s.peaks.push(sample.Amplitude)
	s.lastTemperature = sample.Temperature
	s.sinceDecimation++

	// A full window gives a stable peak estimate; until then the counter
	// keeps accumulating.
	if s.sinceDecimation < t.Decimation || !s.peaks.full() {
		return false
	}
	s.sinceDecimation = 0

	s.refresh(t)

	return true
}

// refresh runs the decimated tail of the pipeline: peak -> EMA -> trend ->
// slope -> RUL -> hysteresis, plus the independent thermal path.
func (s *entityState) refresh(t Tuning) {
	var prevAmp *float64
	if s.ampPrimed {
		prevAmp = &s.ampEMA
	}
	smoothed := ema(s.peaks.peak(), prevAmp, t.AmplitudeAlpha)
	s.ampEMA, s.ampPrimed = smoothed, true

	s.trend.push(smoothed)
	slope := s.trend.slope()

	rul := s.rulFilter.push(estimateRUL(smoothed, slope, t))

	var prevTemp *float64
	if s.tempPrimed {
		prevTemp = &s.tempEMA
	}
	temperature := ema(s.lastTemperature, prevTemp, t.TemperatureAlpha)
	s.tempEMA, s.tempPrimed = temperature, true

	s.snapshot = Snapshot{
		SmoothedAmplitude:   smoothed,
		DegradationSlope:    slope,
		EstimatedRUL:        rul,
		SmoothedTemperature: temperature,
		ThermalStatus:       classifyThermal(temperature, t.TemperatureWarning, t.TemperatureCritical),
	}
}
