package monitor

// RULStable is the sentinel remaining-useful-life value meaning "no
// actionable degradation projection". Consumers must not read it as a time.
const RULStable = 999.0

// estimateRUL projects the smoothed amplitude against the critical threshold.
// Branch order matters: an exceeded threshold always reads as failed, a
// signal still inside the noise floor never projects, and a flat or
// improving slope never projects.
func estimateRUL(current, slope float64, t Tuning) float64 {
	if current >= t.AmplitudeCritical {
		return 0
	}
	if current < t.NoiseFloor {
		return RULStable
	}
	if slope <= t.MinSlope {
		return RULStable
	}

	rul := (t.AmplitudeCritical - current) / slope
	if rul > t.MaxHorizon {
		return RULStable
	}

	return rul
}

// medianFilter smooths the displayed RUL with a 3-slot median. The two
// terminal states (failed, stable) bypass the ring and fill all three slots
// at once, so snapping into or out of a terminal state takes one tick
// instead of two.
type medianFilter struct {
	slots [3]float64
	head  int
}

func newMedianFilter() medianFilter {
	return medianFilter{slots: [3]float64{RULStable, RULStable, RULStable}}
}

func (f *medianFilter) push(raw float64) float64 {
	if raw == 0 || raw == RULStable {
		f.slots[0], f.slots[1], f.slots[2] = raw, raw, raw
		return raw
	}

	f.slots[f.head] = raw
	f.head = (f.head + 1) % len(f.slots)

	return median3(f.slots[0], f.slots[1], f.slots[2])
}

func median3(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}

	return b
}
