// Package feed decodes sample batches from their wire shape: one JSON array
// per tick, one object per reporting entity. Only the message shape is owned
// here; whatever carries the lines (stdin, file, socket bridge) is the
// caller's concern.
package feed

import (
	"encoding/json"
	"time"

	"github.com/condwatch/condwatch/internal/errors"
	"github.com/condwatch/condwatch/internal/logger"
	"github.com/condwatch/condwatch/internal/monitor"
)

const ErrMalformedBatch = errors.ErrorCode("feed_malformed_batch")

// entry uses pointer fields so missing keys are distinguishable from zero
// values; a missing field drops the entry, never the batch.
type entry struct {
	ID          *string  `json:"id"`
	Timestamp   *float64 `json:"timestamp"`
	Amplitude   *float64 `json:"amplitude"`
	Temperature *float64 `json:"temperature"`
}

// ParseBatch decodes one batch line. Malformed entries are skipped and
// counted; an undecodable line yields an error and no samples. Timestamps
// are Unix milliseconds on the wire.
func ParseBatch(line []byte) ([]monitor.Sample, int, error) {
	var entries []entry
	if err := json.Unmarshal(line, &entries); err != nil {
		return nil, 0, errors.Wrap(ErrMalformedBatch, err)
	}

	samples := make([]monitor.Sample, 0, len(entries))
	dropped := 0
	for i := range entries {
		e := entries[i]
		if e.ID == nil || *e.ID == "" || e.Timestamp == nil || e.Amplitude == nil || e.Temperature == nil {
			dropped++
			logger.Warn().Int("entry", i).Msg("Dropping batch entry with missing fields")
			continue
		}

		samples = append(samples, monitor.Sample{
			ID:          *e.ID,
			Timestamp:   time.UnixMilli(int64(*e.Timestamp)).UTC(),
			Amplitude:   *e.Amplitude,
			Temperature: *e.Temperature,
		})
	}

	return samples, dropped, nil
}
