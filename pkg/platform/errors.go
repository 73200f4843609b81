package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrClosed is returned when operating on a closed event source or display.
	ErrClosed = errors.New("platform: closed")

	// ErrBadScript is returned when an event script cannot be decoded.
	ErrBadScript = errors.New("platform: invalid event script")
)
