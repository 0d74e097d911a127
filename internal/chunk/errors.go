package chunk

import "errors"

// Parameter errors returned by Split.
var (
	// ErrInvalidSize is returned when maxSize is not positive.
	ErrInvalidSize = errors.New("max size must be > 0")

	// ErrInvalidOverlap is returned when overlap is negative or not
	// smaller than maxSize. Overlap >= maxSize would stall the walk.
	ErrInvalidOverlap = errors.New("overlap must be >= 0 and < max size")
)
