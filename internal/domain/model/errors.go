package model

import "errors"

// Sentinel kinds for record validation errors.
var (
	ErrInvalidStars          = errors.New("stars out of range")
	ErrCompletedWithoutStars = errors.New("completed level must have at least one star")
	ErrNegativeCounter       = errors.New("counter must not be negative")
	ErrNegativeDuration      = errors.New("duration must not be negative")
	ErrStreakInversion       = errors.New("longest streak below current streak")
	ErrUnknownLevel          = errors.New("unknown level id")
)
