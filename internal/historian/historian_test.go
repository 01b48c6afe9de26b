package historian_test

import (
	"strings"
	"testing"
	"time"

	"github.com/condwatch/condwatch/internal/historian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistorian(t *testing.T, capacity int) *historian.Historian {
	t.Helper()

	cfg := historian.DefaultConfig()
	cfg.Capacity = capacity
	h, err := historian.New(cfg)
	require.NoError(t, err)

	return h
}

func record(tick int, amplitude float64) historian.Record {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return historian.Record{
		Timestamp:   base.Add(time.Duration(tick) * 20 * time.Millisecond),
		Amplitude:   amplitude,
		Temperature: 40.0,
	}
}

func amplitudes(records []historian.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Amplitude
	}

	return out
}

func TestRecentAfterOverwrite(t *testing.T) {
	h := newHistorian(t, 5)
	for i, a := range []float64{1, 2, 3, 4, 5, 6, 7} {
		h.Add("motor-1", record(i, a))
	}

	got := h.Recent("motor-1", 5)
	assert.Equal(t, []float64{3, 4, 5, 6, 7}, amplitudes(got), "oldest records must be overwritten, order chronological")
}

func TestRecentPartialPopulation(t *testing.T) {
	h := newHistorian(t, 5)
	for i, a := range []float64{1, 2, 3} {
		h.Add("motor-1", record(i, a))
	}

	got := h.Recent("motor-1", 5)
	assert.Equal(t, []float64{1, 2, 3}, amplitudes(got))
}

func TestRecentCapsCount(t *testing.T) {
	h := newHistorian(t, 10)
	for i := 0; i < 8; i++ {
		h.Add("motor-1", record(i, float64(i)))
	}

	got := h.Recent("motor-1", 3)
	assert.Equal(t, []float64{5, 6, 7}, amplitudes(got))
}

func TestRecentUnknownEntity(t *testing.T) {
	h := newHistorian(t, 5)
	assert.Empty(t, h.Recent("ghost", 5), "unknown entities read as empty, not as an error")
}

func TestExportFormat(t *testing.T) {
	cfg := historian.Config{Capacity: 10, AmplitudeWarning: 8.0, AmplitudeCritical: 11.2}
	h, err := historian.New(cfg)
	require.NoError(t, err)

	h.Add("motor-1", record(0, 0.5))
	h.Add("motor-1", record(1, -9.0))
	h.Add("motor-1", record(2, 12.5))

	var sb strings.Builder
	require.NoError(t, h.Export("motor-1", &sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 7, "3 comment lines, 1 column header, 3 rows")

	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], "motor-1")
	assert.Contains(t, lines[2], "warning=8.00")
	assert.Equal(t, "timestamp,amplitude,abs_amplitude,temperature,condition", lines[3])

	assert.True(t, strings.HasSuffix(lines[4], "NOMINAL"))
	assert.True(t, strings.HasSuffix(lines[5], "WARNING"), "labels derive from absolute raw amplitude")
	assert.True(t, strings.HasSuffix(lines[6], "CRITICAL"))
	assert.Contains(t, lines[5], "-9.0000,9.0000")
	assert.Contains(t, lines[4], "2026-03-01T12:00:00")
}

func TestExportUnknownEntity(t *testing.T) {
	h := newHistorian(t, 5)

	var sb strings.Builder
	require.NoError(t, h.Export("ghost", &sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 4, "header only, no rows")
}

func TestIDsSorted(t *testing.T) {
	h := newHistorian(t, 5)
	h.Add("b", record(0, 1))
	h.Add("a", record(0, 1))
	h.Add("c", record(0, 1))

	assert.Equal(t, []string{"a", "b", "c"}, h.IDs())
}

func TestValidateRejectsBadConfig(t *testing.T) {
	_, err := historian.New(historian.Config{Capacity: 0, AmplitudeWarning: 1, AmplitudeCritical: 2})
	require.Error(t, err)

	_, err = historian.New(historian.Config{Capacity: 5, AmplitudeWarning: 3, AmplitudeCritical: 2})
	require.Error(t, err)
}
