package writequeue

import "errors"

// Queue operation errors.
var (
	// ErrClosed is returned when submitting to a closed queue.
	ErrClosed = errors.New("write queue is closed")
)
