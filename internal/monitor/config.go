package monitor

import "github.com/condwatch/condwatch/internal/errors"

// Tuning carries every constant of the analytics pipeline. None of these are
// hard-coded elsewhere; DefaultTuning is the authoritative parameter set.
type Tuning struct {
	// PeakWindow is the raw amplitude window capacity per entity.
	PeakWindow int
	// TrendWindow is the decimated trend buffer capacity. Regression emits a
	// zero slope until the buffer is full.
	TrendWindow int
	// Decimation is the number of raw samples accumulated before one
	// derived-state update fires.
	Decimation int

	AmplitudeAlpha   float64
	TemperatureAlpha float64

	// NoiseFloor gates RUL projection: a trend below it is not actionable.
	NoiseFloor float64
	// MinSlope is the minimum degradation rate (amplitude units per
	// decimation tick) before a projection is attempted.
	MinSlope float64
	// MaxHorizon caps the projection; anything further out reads as stable.
	MaxHorizon float64

	// AmplitudeCritical is the failure threshold the RUL projects against.
	AmplitudeCritical float64

	TemperatureWarning  float64
	TemperatureCritical float64
}

func DefaultTuning() Tuning {
	return Tuning{
		PeakWindow:          50,
		TrendWindow:         10,
		Decimation:          50,
		AmplitudeAlpha:      0.30,
		TemperatureAlpha:    0.10,
		NoiseFloor:          2.0,
		MinSlope:            0.01,
		MaxHorizon:          120.0,
		AmplitudeCritical:   11.2,
		TemperatureWarning:  70.0,
		TemperatureCritical: 85.0,
	}
}

func (t Tuning) Validate() error {
	if t.PeakWindow <= 0 {
		return errors.WithData(ErrInvalidTuning, "peak window must be positive")
	}
	if t.TrendWindow < 2 {
		return errors.WithData(ErrInvalidTuning, "trend window must hold at least 2 points")
	}
	if t.Decimation <= 0 {
		return errors.WithData(ErrInvalidTuning, "decimation factor must be positive")
	}
	if t.AmplitudeAlpha <= 0 || t.AmplitudeAlpha > 1 || t.TemperatureAlpha <= 0 || t.TemperatureAlpha > 1 {
		return errors.WithData(ErrInvalidTuning, "smoothing coefficients must be in (0, 1]")
	}
	if t.MaxHorizon <= 0 {
		return errors.WithData(ErrInvalidTuning, "projection horizon must be positive")
	}
	if t.TemperatureWarning >= t.TemperatureCritical {
		return errors.WithData(ErrInvalidTuning, "temperature warning threshold must be below critical")
	}

	return nil
}
