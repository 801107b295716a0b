package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicate        = errors.New("duplicate entry")
	ErrEmptyTable       = errors.New("table has no entries")
	ErrNoData           = errors.New("no training data")
	ErrUntrained        = errors.New("model is not trained")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
