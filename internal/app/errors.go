package app

import "errors"

// Service errors.
var (
	// ErrNoStore is returned by New when no key-value store was provided.
	ErrNoStore = errors.New("no key-value store configured")

	// ErrNotStarted is returned when resolving results before Start.
	ErrNotStarted = errors.New("service not started")

	// ErrDuplicateResult is returned when a level result with an
	// already-seen id is submitted again.
	ErrDuplicateResult = errors.New("duplicate level result")
)
