package monitor

// ema applies one step of exponential smoothing. A nil previous value means
// cold start: the current sample passes through untouched, so the first
// observation carries no smoothing artifact. The caller owns the state.
func ema(current float64, previous *float64, alpha float64) float64 {
	if previous == nil {
		return current
	}

	return alpha*current + (1-alpha)*(*previous)
}
