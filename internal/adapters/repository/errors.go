package repository

import "errors"

// Repository errors.
var (
	// ErrNoSession is returned when mutating session state before Start.
	ErrNoSession = errors.New("no active session")
)
