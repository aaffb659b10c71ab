// Package achievement evaluates unlock predicates against the current
// statistics and progress snapshot.
//
// Unlocks are one-way: an achievement that has been persisted as unlocked
// is skipped entirely on later evaluations, which also makes Evaluate
// idempotent for identical inputs.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/internal/domain/scoring"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// StateStore persists per-achievement unlock state.
type StateStore interface {
	// States returns the unlock state for every achievement id, with
	// all-locked defaults for ids never persisted.
	States(ctx context.Context) map[string]model.AchievementState

	// SaveStates overwrites the whole achievements record.
	SaveStates(ctx context.Context, states map[string]model.AchievementState) error
}

// Engine runs the unlock rule table.
type Engine struct {
	store StateStore
	now   func() time.Time
	log   logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithClock sets the time source used to stamp unlock dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New constructs an Engine backed by the given state store.
func New(store StateStore, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get().Named("achievement")
	}
	return e
}

// Evaluate recomputes progress for every still-locked achievement, unlocks
// those whose predicate is met, persists the updated states, and returns
// them together with the definitions unlocked by this call.
//
// Already-unlocked achievements are never re-evaluated, so a second call
// with the same inputs returns an empty newly-unlocked list.
func (e *Engine) Evaluate(
	ctx context.Context,
	stats model.GlobalStats,
	progress map[string]model.LevelProgress,
) (map[string]model.AchievementState, []catalog.AchievementDefinition, error) {
	states := e.store.States(ctx)
	now := e.now()

	var newlyUnlocked []catalog.AchievementDefinition
	for _, def := range catalog.Achievements() {
		state := states[def.ID]
		if state.Unlocked {
			continue
		}

		value := progressFor(def.ID, stats, progress)
		state.Progress = value

		if value >= def.Requirement {
			state.Unlocked = true
			unlockedAt := now
			state.UnlockedDate = &unlockedAt
			newlyUnlocked = append(newlyUnlocked, def)
			metrics.RecordAchievementUnlocked()
			e.log.Info(ctx, "achievement unlocked",
				logger.String("id", def.ID),
				logger.Int("requirement", def.Requirement),
			)
		}

		states[def.ID] = state
	}

	if err := e.store.SaveStates(ctx, states); err != nil {
		return nil, nil, fmt.Errorf("persist achievement states: %w", err)
	}

	return states, newlyUnlocked, nil
}

// progressFor is the unlock rule table, keyed by achievement id. Unknown
// ids report zero progress and stay locked.
func progressFor(id string, stats model.GlobalStats, progress map[string]model.LevelProgress) int {
	switch id {
	case catalog.AchievementFirstRecipe:
		return stats.TotalLevelsCompleted
	case catalog.AchievementFiveStar,
		catalog.AchievementTenStar,
		catalog.AchievementTwentyFiveStar,
		catalog.AchievementFiftyStar,
		catalog.AchievementAllStar:
		return countPerfectLevels(progress)
	case catalog.AchievementSpeedDemon:
		return countSpeedRuns(progress)
	case catalog.AchievementNoMistakes:
		// A three-star completion is exactly a mistake-free run.
		return countPerfectLevels(progress)
	case catalog.AchievementComboMaster:
		return stats.HighestCombo
	case catalog.AchievementWeeklyStreak:
		return stats.CurrentStreak
	case catalog.AchievementCenturyClub:
		return stats.TotalGamesPlayed
	default:
		return 0
	}
}

// countPerfectLevels counts levels currently recorded at three stars.
func countPerfectLevels(progress map[string]model.LevelProgress) int {
	n := 0
	for _, p := range progress {
		if p.Stars == model.PerfectStars {
			n++
		}
	}
	return n
}

// countSpeedRuns counts completed levels with a best time under the
// speed-run threshold.
func countSpeedRuns(progress map[string]model.LevelProgress) int {
	n := 0
	for _, p := range progress {
		if p.Completed && p.BestTime != nil && *p.BestTime < scoring.SpeedRunSeconds {
			n++
		}
	}
	return n
}
