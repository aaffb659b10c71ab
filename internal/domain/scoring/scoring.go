// Package scoring turns raw level results into star scores and the
// closed set of stats updates applied to the global aggregate record.
package scoring

import (
	"time"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// Scoring policy constants.
const (
	// MaxMistakes ends an attempt; a completed run always has fewer.
	MaxMistakes = 3

	// SpeedRunSeconds is the completion time that counts toward speed_demon.
	SpeedRunSeconds = 30.0
)

// Stars returns the star score for a completed attempt: three stars minus
// one per mistake, never below one.
func Stars(mistakes int) int {
	s := model.MaxStars - mistakes
	if s < 1 {
		return 1
	}
	return s
}

// Update is one validated mutation of the global stats record. Implementations
// form a closed set; there is no open-ended patch merging.
type Update interface {
	// Apply folds the update into s in place.
	Apply(s *model.GlobalStats)
}

// LevelDelta is the stats update derived from a completed level result.
type LevelDelta struct {
	GamesPlayed     int
	LevelsCompleted int
	// StarsDelta is signed: a replay that scores below the recorded stars
	// reduces the running total.
	StarsDelta   int
	PerfectGames int
	Mistakes     int
	TimePlayed   float64 // seconds
	Combo        int
}

// Apply folds the delta into s. HighestCombo is a high-water mark.
func (d LevelDelta) Apply(s *model.GlobalStats) {
	s.TotalGamesPlayed += d.GamesPlayed
	s.TotalLevelsCompleted += d.LevelsCompleted
	s.TotalStars += d.StarsDelta
	s.PerfectGames += d.PerfectGames
	s.TotalMistakes += d.Mistakes
	s.TotalTimePlayed += d.TimePlayed
	if d.Combo > s.HighestCombo {
		s.HighestCombo = d.Combo
	}
}

// StreakUpdate replaces the streak counters after the once-per-launch
// streak calculation.
type StreakUpdate struct {
	Current int
	Longest int
}

// Apply sets the streak counters.
func (u StreakUpdate) Apply(s *model.GlobalStats) {
	s.CurrentStreak = u.Current
	s.LongestStreak = u.Longest
}

// PlayedStamp records when the latest scored result arrived.
type PlayedStamp struct {
	At time.Time
}

// Apply stamps the played dates; the first-played date is set once.
func (u PlayedStamp) Apply(s *model.GlobalStats) {
	if s.FirstPlayedDate.IsZero() {
		s.FirstPlayedDate = u.At
	}
	s.LastPlayedDate = u.At
}

// UnlockDelta records achievements newly unlocked by the engine.
type UnlockDelta struct {
	Count int
}

// Apply bumps the unlock counter.
func (u UnlockDelta) Apply(s *model.GlobalStats) {
	s.AchievementsUnlocked += u.Count
}

// ForResult computes the stats delta for a completed level result against
// the previously recorded progress for that level.
//
// Policy:
//   - games played increments on every completion, replays included;
//   - levels completed increments only on first-time completion;
//   - the star delta is signed, so a weaker replay lowers the total;
//   - perfect games increments on every three-star run with no decrement
//     path when a level is later downgraded (high-water behavior).
func ForResult(prev model.LevelProgress, res model.LevelResult) LevelDelta {
	stars := Stars(res.Mistakes)

	d := LevelDelta{
		GamesPlayed: 1,
		StarsDelta:  stars - prev.Stars,
		Mistakes:    res.Mistakes,
		TimePlayed:  res.Duration,
		Combo:       res.MaxCombo,
	}
	if !prev.Completed {
		d.LevelsCompleted = 1
	}
	if stars == model.PerfectStars {
		d.PerfectGames = 1
	}
	return d
}

// ApplyResult merges a level result into the previously recorded progress.
// Every attempt counts and stamps lastPlayed; completion replaces the star
// score (not a max) and keeps the fastest completion time.
func ApplyResult(prev model.LevelProgress, res model.LevelResult, now time.Time) model.LevelProgress {
	next := prev
	next.Attempts++
	next.LastPlayed = &now

	if !res.Completed {
		return next
	}

	next.Completed = true
	next.Stars = Stars(res.Mistakes)
	if res.Duration > 0 && (prev.BestTime == nil || res.Duration < *prev.BestTime) {
		best := res.Duration
		next.BestTime = &best
	}
	return next
}
