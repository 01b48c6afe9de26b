package historian

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/condwatch/condwatch/internal/errors"
)

// Condition labels derived from the static amplitude thresholds. The export
// recomputes them from raw values for audit fidelity; the live pipeline's
// smoothed and hysteresis-filtered state never feeds this path.
const (
	labelNominal  = "NOMINAL"
	labelWarning  = "WARNING"
	labelCritical = "CRITICAL"
)

func (h *Historian) label(absAmplitude float64) string {
	switch {
	case absAmplitude >= h.cfg.AmplitudeCritical:
		return labelCritical
	case absAmplitude >= h.cfg.AmplitudeWarning:
		return labelWarning
	default:
		return labelNominal
	}
}

// Export serializes the entire retained buffer for one entity in
// chronological order: a comment header block, one column-header line, then
// one row per record. An unknown id exports a header with no rows.
func (h *Historian) Export(id string, w io.Writer) error {
	h.mu.RLock()
	var rows []Record
	if r, ok := h.entities[id]; ok {
		rows = r.chronological()
	}
	h.mu.RUnlock()

	if _, err := fmt.Fprintf(w, "# condwatch historian export\n# entity: %s\n# amplitude thresholds: warning=%.2f critical=%.2f\n",
		id, h.cfg.AmplitudeWarning, h.cfg.AmplitudeCritical); err != nil {
		return errors.Wrap(ErrExportFailed, err)
	}
	if _, err := io.WriteString(w, "timestamp,amplitude,abs_amplitude,temperature,condition\n"); err != nil {
		return errors.Wrap(ErrExportFailed, err)
	}

	for i := range rows {
		rec := rows[i]
		abs := math.Abs(rec.Amplitude)
		_, err := fmt.Fprintf(w, "%s,%.4f,%.4f,%.2f,%s\n",
			rec.Timestamp.UTC().Format(time.RFC3339Nano), rec.Amplitude, abs, rec.Temperature, h.label(abs))
		if err != nil {
			return errors.Wrap(ErrExportFailed, err)
		}
	}

	return nil
}
