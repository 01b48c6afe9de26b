package monitor

import "github.com/condwatch/condwatch/internal/errors"

const (
	ErrInvalidTuning = errors.ErrorCode("monitor_invalid_tuning")
	ErrInvalidSample = errors.ErrorCode("monitor_invalid_sample")
)
