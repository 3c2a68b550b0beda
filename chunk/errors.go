package chunk

import "errors"

var (
	// ErrInvalidWindow indicates a non-positive window size.
	ErrInvalidWindow = errors.New("invalid window size")

	// ErrInvalidOverlap indicates an overlap that is negative or not
	// smaller than the window size.
	ErrInvalidOverlap = errors.New("invalid overlap")
)
