package historian

import "github.com/condwatch/condwatch/internal/errors"

const (
	ErrInvalidCapacity   = errors.ErrorCode("historian_invalid_capacity")
	ErrInvalidThresholds = errors.ErrorCode("historian_invalid_thresholds")
	ErrExportFailed      = errors.ErrorCode("historian_export_failed")
)

var (
	errInvalidCapacity   = errors.New(ErrInvalidCapacity)
	errInvalidThresholds = errors.New(ErrInvalidThresholds)
)
