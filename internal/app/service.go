// Package app wires the record repositories, scoring policy, streak
// calculator, and achievement engine into the engine's service facade.
// The service owns the launch sequence and the level-result pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/adapters/mq/writequeue"
	"github.com/Sameer447/ChefsQuest/internal/adapters/repository"
	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/domain/achievement"
	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	"github.com/Sameer447/ChefsQuest/internal/domain/dedupe"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/internal/domain/scoring"
	"github.com/Sameer447/ChefsQuest/internal/domain/streak"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultQueueSize  = 256
	defaultDedupeSize = 10_000
)

// Sound cue identifiers surfaced to the presentation layer. Cues are only
// emitted while the sound setting is enabled.
const (
	CueLevelComplete       = "level_complete"
	CueAchievementUnlocked = "achievement_unlocked"
)

// Service is the persistence engine facade. Construct with New, call Start
// once per launch, then feed it level results.
type Service struct {
	kv     storage.KV
	queue  *writequeue.Queue
	store  *repository.Store
	engine *achievement.Engine
	dedupe dedupe.Deduper

	log logger.Logger
	now func() time.Time

	queueSize  int
	dedupeSize int

	mu      sync.Mutex
	started bool
}

// LaunchState is the loaded state returned by Start: what the game layer
// needs to render its home screen.
type LaunchState struct {
	Progress     map[string]model.LevelProgress
	Stats        model.GlobalStats
	Achievements map[string]model.AchievementState
	Settings     model.UserSettings
	Session      model.SessionRecord
}

// ResolveOutcome reports the effect of one resolved level result.
type ResolveOutcome struct {
	Stars         int
	Progress      model.LevelProgress
	Stats         model.GlobalStats
	NewlyUnlocked []catalog.AchievementDefinition
	SoundCues     []string
}

// New constructs the Service. A key-value store must be injected via WithKV.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		now:        time.Now,
		queueSize:  defaultQueueSize,
		dedupeSize: defaultDedupeSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.kv == nil {
		return nil, ErrNoStore
	}
	if s.log == nil {
		s.log = logger.Get().Named("engine")
	}
	if s.dedupe == nil {
		s.dedupe = dedupe.New(dedupe.WithMaxSize(s.dedupeSize))
	}

	s.queue = writequeue.New(
		writequeue.WithCapacity(s.queueSize),
		writequeue.WithLogger(s.log.Named("writequeue")),
	)
	s.store = repository.New(s.kv, s.queue,
		repository.WithLogger(s.log.Named("repository")),
		repository.WithClock(s.now),
	)
	s.engine = achievement.New(s.store.Achievements,
		achievement.WithClock(s.now),
		achievement.WithLogger(s.log.Named("achievement")),
	)
	return s, nil
}

// Start runs the launch sequence: load the records in parallel, advance the
// play streak exactly once, and open a fresh session. Safe to call only once
// per Service.
func (s *Service) Start(ctx context.Context) (*LaunchState, error) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, fmt.Errorf("start: service already started")
	}
	s.started = true
	s.mu.Unlock()

	state := &LaunchState{}

	// Record reads never fail upward, so the parallel loads only race the
	// clock, not each other.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); state.Progress = s.store.Progress.GetAll(ctx) }()
	go func() { defer wg.Done(); state.Stats = s.store.Stats.Get(ctx) }()
	go func() { defer wg.Done(); state.Achievements = s.store.Achievements.States(ctx) }()
	go func() { defer wg.Done(); state.Settings = s.store.Settings.Get(ctx) }()
	wg.Wait()

	now := s.now()
	result := streak.Advance(
		state.Stats.CurrentStreak,
		state.Stats.LongestStreak,
		state.Stats.LastPlayedDate,
		now,
	)
	if state.Stats.TotalGamesPlayed == 0 && state.Stats.CurrentStreak == 0 {
		// A never-played record carries a freshly stamped last-played date,
		// which would read as a zero-day gap. Day one of play is a one-day
		// streak.
		result = streak.Result{
			Current: 1,
			Longest: max(state.Stats.LongestStreak, 1),
			Changed: true,
		}
	}
	if result.Changed {
		// The advanced streak must stamp lastPlayedDate, or every further
		// launch on the same day would see yesterday's date and extend the
		// streak again.
		stats, err := s.store.Stats.Apply(ctx,
			scoring.StreakUpdate{
				Current: result.Current,
				Longest: result.Longest,
			},
			scoring.PlayedStamp{At: now},
		)
		if err != nil {
			return nil, fmt.Errorf("advance streak: %w", err)
		}
		state.Stats = stats
	}

	session, err := s.store.Session.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	state.Session = session

	metrics.UpdateTotalStars(state.Stats.TotalStars)
	metrics.UpdateCurrentStreak(state.Stats.CurrentStreak)
	s.log.Info(ctx, "engine started",
		logger.Int("total_stars", state.Stats.TotalStars),
		logger.Int("current_streak", state.Stats.CurrentStreak),
		logger.String("session_id", session.SessionID),
	)
	return state, nil
}

// ResolveLevel applies one level result end to end: per-level progress,
// stats delta on completion, achievement evaluation, and session counters.
// A result whose id was already seen returns ErrDuplicateResult without
// touching any record.
func (s *Service) ResolveLevel(ctx context.Context, res model.LevelResult) (*ResolveOutcome, error) {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil, ErrNotStarted
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	if _, ok := catalog.FindRecipe(res.LevelID); !ok {
		return nil, fmt.Errorf("level %q: %w", res.LevelID, model.ErrUnknownLevel)
	}

	if res.ResultID != "" && s.dedupe.SeenAndRecord(ctx, res.ResultID) {
		metrics.RecordDuplicateResult()
		s.log.Warn(ctx, "duplicate level result dropped",
			logger.String("result_id", res.ResultID),
			logger.String("level_id", res.LevelID),
		)
		return nil, ErrDuplicateResult
	}

	outcome, err := s.applyResult(ctx, res)
	if err != nil && res.ResultID != "" {
		// The result never landed; allow a retry with the same id.
		s.dedupe.Unrecord(ctx, res.ResultID)
	}
	return outcome, err
}

// applyResult is the mutation pipeline behind ResolveLevel.
func (s *Service) applyResult(ctx context.Context, res model.LevelResult) (*ResolveOutcome, error) {
	prev, next, err := s.store.Progress.ApplyResult(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("apply progress: %w", err)
	}
	metrics.RecordLevelResolved()

	outcome := &ResolveOutcome{
		Progress: next,
		Stats:    s.store.Stats.Get(ctx),
	}

	if res.Completed {
		outcome.Stars = scoring.Stars(res.Mistakes)

		delta := scoring.ForResult(prev, res)
		stats, err := s.store.Stats.Apply(ctx, delta, scoring.PlayedStamp{At: s.now()})
		if err != nil {
			return nil, fmt.Errorf("apply stats delta: %w", err)
		}
		metrics.RecordLevelCompleted()
		if outcome.Stars == model.PerfectStars {
			metrics.RecordPerfectGame()
		}

		_, newly, err := s.engine.Evaluate(ctx, stats, s.store.Progress.GetAll(ctx))
		if err != nil {
			return nil, fmt.Errorf("evaluate achievements: %w", err)
		}
		outcome.NewlyUnlocked = newly

		if len(newly) > 0 {
			stats, err = s.store.Stats.Apply(ctx, scoring.UnlockDelta{Count: len(newly)})
			if err != nil {
				return nil, fmt.Errorf("apply unlock delta: %w", err)
			}
		}
		outcome.Stats = stats
	}

	err = s.store.Session.RecordLevel(ctx, res.LevelID, outcome.Stars, res.Mistakes)
	if err != nil && !errors.Is(err, repository.ErrNoSession) {
		return nil, fmt.Errorf("record session level: %w", err)
	}

	outcome.SoundCues = s.soundCues(ctx, res.Completed, len(outcome.NewlyUnlocked) > 0)
	return outcome, nil
}

// soundCues returns the cues for the presentation layer, empty while the
// sound setting is off.
func (s *Service) soundCues(ctx context.Context, completed, unlocked bool) []string {
	if !s.store.Settings.Get(ctx).SoundEnabled {
		return nil
	}
	var cues []string
	if completed {
		cues = append(cues, CueLevelComplete)
	}
	if unlocked {
		cues = append(cues, CueAchievementUnlocked)
	}
	return cues
}

// Progress returns the full per-level progress map.
func (s *Service) Progress(ctx context.Context) map[string]model.LevelProgress {
	return s.store.Progress.GetAll(ctx)
}

// Stats returns the current global statistics record.
func (s *Service) Stats(ctx context.Context) model.GlobalStats {
	return s.store.Stats.Get(ctx)
}

// Achievements returns unlock state for every achievement.
func (s *Service) Achievements(ctx context.Context) map[string]model.AchievementState {
	return s.store.Achievements.States(ctx)
}

// Session returns the current session record.
func (s *Service) Session(ctx context.Context) model.SessionRecord {
	return s.store.Session.Get(ctx)
}

// Settings returns the current user settings.
func (s *Service) Settings(ctx context.Context) model.UserSettings {
	return s.store.Settings.Get(ctx)
}

// SaveSettings overwrites the user settings record.
func (s *Service) SaveSettings(ctx context.Context, settings model.UserSettings) error {
	return s.store.Settings.Save(ctx, settings)
}

// Export snapshots all records into a bundle.
func (s *Service) Export(ctx context.Context) (model.ExportBundle, error) {
	return s.store.Export(ctx)
}

// Import restores records from a bundle; absent sections are untouched.
func (s *Service) Import(ctx context.Context, bundle model.ExportBundle) error {
	return s.store.Import(ctx, bundle)
}

// ClearAll wipes every record and, when the service has started, opens a
// fresh session so the engine is immediately usable again.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.store.ClearAll(ctx); err != nil {
		return err
	}

	metrics.UpdateTotalStars(0)
	metrics.UpdateCurrentStreak(0)

	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		if _, err := s.store.Session.Start(ctx); err != nil {
			return fmt.Errorf("restart session: %w", err)
		}
	}
	return nil
}

// EndSession stamps the end time on the current session.
func (s *Service) EndSession(ctx context.Context) (model.SessionRecord, error) {
	return s.store.Session.End(ctx)
}

// Stop ends the session if one is open and drains the write queue. The
// key-value store stays open; its owner closes it.
func (s *Service) Stop(ctx context.Context) error {
	if _, err := s.store.Session.End(ctx); err != nil && !errors.Is(err, repository.ErrNoSession) {
		s.log.Error(ctx, "ending session on stop failed", logger.Error(err))
	}
	return s.queue.Close()
}
