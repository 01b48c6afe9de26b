package monitor

import "math"

// peakWindow is a fixed-capacity ring of raw amplitude samples. Insertion
// never grows it; once full, the oldest slot is overwritten.
type peakWindow struct {
	values []float64
	head   int
	count  int
}

func newPeakWindow(capacity int) *peakWindow {
	return &peakWindow{values: make([]float64, capacity)}
}

func (w *peakWindow) push(v float64) {
	w.values[w.head] = v
	w.head = (w.head + 1) % len(w.values)
	if w.count < len(w.values) {
		w.count++
	}
}

func (w *peakWindow) full() bool {
	return w.count == len(w.values)
}

// peak returns the maximum absolute value over the populated slots.
func (w *peakWindow) peak() float64 {
	var max float64
	for i := 0; i < w.count; i++ {
		if v := math.Abs(w.values[i]); v > max {
			max = v
		}
	}

	return max
}
