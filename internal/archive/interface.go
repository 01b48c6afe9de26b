package archive

import (
	"context"
	"time"
)

// Recorder defines the core domain interface
type Recorder interface {
	Record(ctx context.Context, snapshot *Snapshot) error
	Close() error
}

// Snapshot is one decimated condition assessment bound for storage
type Snapshot struct {
	EntityID            string
	Timestamp           time.Time
	SmoothedAmplitude   float64
	DegradationSlope    float64
	EstimatedRUL        float64
	SmoothedTemperature float64
	ThermalStatus       string
}
