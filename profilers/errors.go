package profilers

import "errors"

// Loader errors specific to profiler state.
var (
	// ErrNegativeCount indicates a count field below zero.
	ErrNegativeCount = errors.New("negative count")

	// ErrInvalidOrder indicates an OrderColumn order outside the known set.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInvalidRange indicates a minimum greater than its maximum.
	ErrInvalidRange = errors.New("invalid range")
)
