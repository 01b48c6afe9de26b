package monitor

// trendBuffer is a fixed-capacity ring of (sequence index, smoothed
// amplitude) pairs fed at decimation cadence. The independent variable is the
// point's position in the decimated sequence, not wall-clock time, so the
// regression sees uniform spacing regardless of upstream jitter.
type trendBuffer struct {
	xs    []float64
	ys    []float64
	head  int
	count int
	seq   float64
}

func newTrendBuffer(capacity int) *trendBuffer {
	return &trendBuffer{
		xs: make([]float64, capacity),
		ys: make([]float64, capacity),
	}
}

func (b *trendBuffer) push(y float64) {
	b.xs[b.head] = b.seq
	b.ys[b.head] = y
	b.seq++
	b.head = (b.head + 1) % len(b.xs)
	if b.count < len(b.xs) {
		b.count++
	}
}

func (b *trendBuffer) full() bool {
	return b.count == len(b.xs)
}

// slope computes the ordinary least squares slope over the buffer contents,
// in amplitude units per decimation tick. A partially populated buffer or a
// zero-variance denominator yields 0.
func (b *trendBuffer) slope() float64 {
	if !b.full() || b.count < 2 {
		return 0
	}

	n := float64(b.count)
	var sumX, sumY, sumXY, sumX2 float64
	for i := 0; i < b.count; i++ {
		sumX += b.xs[i]
		sumY += b.ys[i]
		sumXY += b.xs[i] * b.ys[i]
		sumX2 += b.xs[i] * b.xs[i]
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0
	}

	return (n*sumXY - sumX*sumY) / denom
}
