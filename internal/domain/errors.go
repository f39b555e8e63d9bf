package domain

import "errors"

// Sentinel errors shared across packages.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrNoSession is returned when the UI session cookie cannot be read or
	// written.
	ErrNoSession = errors.New("ui session unavailable")
)
