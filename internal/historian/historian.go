// Package historian retains full raw samples per entity in a long
// fixed-capacity ring buffer, independent of the analytics path, for replay
// and audit export.
package historian

import (
	"sort"
	"sync"
	"time"
)

// Record is one retained raw sample.
type Record struct {
	Timestamp   time.Time
	Amplitude   float64
	Temperature float64
}

// Config sizes the retention ring and carries the static amplitude
// thresholds the export recomputes condition labels from.
type Config struct {
	Capacity          int
	AmplitudeWarning  float64
	AmplitudeCritical float64
}

func DefaultConfig() Config {
	return Config{
		Capacity:          3000,
		AmplitudeWarning:  8.0,
		AmplitudeCritical: 11.2,
	}
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errInvalidCapacity
	}
	if c.AmplitudeWarning >= c.AmplitudeCritical {
		return errInvalidThresholds
	}

	return nil
}

type ring struct {
	records []Record
	head    int
	count   int
}

func (r *ring) add(rec Record) {
	r.records[r.head] = rec
	r.head = (r.head + 1) % len(r.records)
	if r.count < len(r.records) {
		r.count++
	}
}

// chronological copies the populated slots oldest-to-newest.
func (r *ring) chronological() []Record {
	out := make([]Record, 0, r.count)
	start := 0
	if r.count == len(r.records) {
		start = r.head
	}
	for i := 0; i < r.count; i++ {
		out = append(out, r.records[(start+i)%len(r.records)])
	}

	return out
}

// Historian owns one retention ring per entity, created lazily on the first
// observed sample and only ever cleared by overwrite.
type Historian struct {
	mu       sync.RWMutex
	cfg      Config
	entities map[string]*ring
}

func New(cfg Config) (*Historian, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Historian{
		cfg:      cfg,
		entities: make(map[string]*ring),
	}, nil
}

// Add appends one raw record at native arrival rate, no decimation.
func (h *Historian) Add(id string, rec Record) {
	if id == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.entities[id]
	if !ok {
		r = &ring{records: make([]Record, h.cfg.Capacity)}
		h.entities[id] = r
	}
	r.add(rec)
}

// Recent returns up to max most-recent records in chronological order. An
// unknown id or an empty buffer yields an empty slice, not an error.
func (h *Historian) Recent(id string, max int) []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.entities[id]
	if !ok || max <= 0 {
		return nil
	}

	all := r.chronological()
	if len(all) > max {
		all = all[len(all)-max:]
	}

	return all
}

// IDs lists the known entities in stable order.
func (h *Historian) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.entities))
	for id := range h.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
