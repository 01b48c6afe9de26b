// Package monitor implements the condition-assessment core: per-entity peak
// windows, exponential smoothing, sliding-window regression, remaining useful
// life projection with median hysteresis, and thermal classification.
package monitor

import (
	"math"
	"sync"
	"time"
)

// Sample is one raw reading for one entity at one tick.
type Sample struct {
	ID          string
	Timestamp   time.Time
	Amplitude   float64
	Temperature float64
}

func (s Sample) valid() bool {
	if s.ID == "" {
		return false
	}
	if math.IsNaN(s.Amplitude) || math.IsInf(s.Amplitude, 0) {
		return false
	}
	if math.IsNaN(s.Temperature) || math.IsInf(s.Temperature, 0) {
		return false
	}

	return true
}

// Snapshot is the externally visible condition assessment of one entity.
// EstimatedRUL carries RULStable when no actionable projection exists.
type Snapshot struct {
	SmoothedAmplitude   float64
	DegradationSlope    float64
	EstimatedRUL        float64
	SmoothedTemperature float64
	ThermalStatus       ThermalStatus
}

// BatchStats summarizes one processed batch.
type BatchStats struct {
	Accepted int
	Dropped  int
	// Updated lists the entities whose snapshot was recomputed this batch.
	Updated []string
}

// Engine owns the entity registry and runs the pipeline. Processing is
// batch-atomic and sequential; the mutex only shields snapshot reads from a
// host running them on another goroutine.
type Engine struct {
	mu       sync.RWMutex
	tuning   Tuning
	entities map[string]*entityState
}

func NewEngine(t Tuning) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		tuning:   t,
		entities: make(map[string]*entityState),
	}, nil
}

// ProcessBatch ingests one tick's samples. Entities are created lazily on
// first observation. Malformed entries are dropped; the rest of the batch
// still processes. Samples for one entity must arrive in order.
func (e *Engine) ProcessBatch(samples []Sample) BatchStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var stats BatchStats
	for i := range samples {
		s := samples[i]
		if !s.valid() {
			stats.Dropped++
			continue
		}

		state, ok := e.entities[s.ID]
		if !ok {
			state = newEntityState(s.ID, e.tuning)
			e.entities[s.ID] = state
		}

		if state.observe(s, e.tuning) {
			stats.Updated = append(stats.Updated, s.ID)
		}
		stats.Accepted++
	}

	return stats
}

// Snapshot returns the last computed condition snapshot for an entity.
func (e *Engine) Snapshot(id string) (Snapshot, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.entities[id]
	if !ok {
		return Snapshot{}, false
	}

	return state.snapshot, true
}

// Snapshots returns the current snapshot of every known entity.
func (e *Engine) Snapshots() map[string]Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string]Snapshot, len(e.entities))
	for id, state := range e.entities {
		out[id] = state.snapshot
	}

	return out
}

// EntityCount reports how many entities the registry tracks.
func (e *Engine) EntityCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.entities)
}
