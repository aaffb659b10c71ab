// Package streak derives consecutive-day play streaks from wall-clock dates.
package streak

import (
	"math"
	"time"
)

const hoursPerDay = 24

// Result is the streak transition computed from the last played date.
type Result struct {
	Current int
	Longest int
	// Changed reports whether the counters differ from the inputs and the
	// stats record needs to be persisted.
	Changed bool
}

// Advance applies the calendar-day streak rules to the stored counters.
//
// Both timestamps are truncated to local midnight before comparison. A gap
// of zero days leaves the counters untouched; exactly one day extends the
// streak; two or more days (or a clock that moved backwards) resets the
// current streak to one.
//
// It is the caller's job to run this exactly once per app launch, before
// any level result is applied, so "now" reflects session start.
func Advance(current, longest int, lastPlayed, now time.Time) Result {
	diff := daysBetween(lastPlayed, now)

	switch {
	case diff == 0:
		return Result{Current: current, Longest: longest}
	case diff == 1:
		next := current + 1
		return Result{
			Current: next,
			Longest: maxInt(longest, next),
			Changed: true,
		}
	default:
		// Streak broken; a negative gap (clock skew) resets the same way.
		return Result{
			Current: 1,
			Longest: maxInt(longest, 1),
			Changed: true,
		}
	}
}

// daysBetween counts whole calendar days from a to b in b's time zone.
// Rounding absorbs DST transitions where a "day" is 23 or 25 hours.
func daysBetween(a, b time.Time) int {
	am := midnight(a.In(b.Location()))
	bm := midnight(b)
	return int(math.Round(bm.Sub(am).Hours() / hoursPerDay))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
