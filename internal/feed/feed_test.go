package feed_test

import (
	"testing"

	"github.com/condwatch/condwatch/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	line := []byte(`[
		{"id":"pump-1","timestamp":1767268800000,"amplitude":1.5,"temperature":41.2},
		{"id":"pump-2","timestamp":1767268800000,"amplitude":-0.3,"temperature":39.8}
	]`)

	samples, dropped, err := feed.ParseBatch(line)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, samples, 2)

	assert.Equal(t, "pump-1", samples[0].ID)
	assert.InDelta(t, 1.5, samples[0].Amplitude, 1e-12)
	assert.InDelta(t, 41.2, samples[0].Temperature, 1e-12)
	assert.Equal(t, int64(1767268800000), samples[0].Timestamp.UnixMilli())
}

func TestParseBatchDropsMalformedEntries(t *testing.T) {
	line := []byte(`[
		{"id":"pump-1","timestamp":1,"amplitude":1.5,"temperature":41.2},
		{"timestamp":1,"amplitude":2.0,"temperature":40.0},
		{"id":"","timestamp":1,"amplitude":2.0,"temperature":40.0},
		{"id":"pump-3","amplitude":2.0,"temperature":40.0},
		{"id":"pump-4","timestamp":1,"temperature":40.0},
		{"id":"pump-5","timestamp":1,"amplitude":2.0}
	]`)

	samples, dropped, err := feed.ParseBatch(line)
	require.NoError(t, err)
	assert.Equal(t, 5, dropped, "every entry missing a field is dropped")
	require.Len(t, samples, 1)
	assert.Equal(t, "pump-1", samples[0].ID)
}

func TestParseBatchNonNumericValue(t *testing.T) {
	line := []byte(`[{"id":"pump-1","timestamp":1,"amplitude":"loud","temperature":40.0}]`)

	_, _, err := feed.ParseBatch(line)
	require.Error(t, err, "a type mismatch fails the line, the caller skips it and survives")
}

func TestParseBatchEmptyArray(t *testing.T) {
	samples, dropped, err := feed.ParseBatch([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Zero(t, dropped)
}
