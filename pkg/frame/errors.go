package frame

import "errors"

var (
	// ErrInvalidDimensions is returned for frames with no pixels along either axis.
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrInvalidScale is returned for frames whose scale is not strictly positive.
	ErrInvalidScale = errors.New("invalid frame scale")
)
