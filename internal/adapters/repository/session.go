package repository

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// SessionRepo persists the single-run session record. Each launch replaces
// the previous session; the record is diagnostic, not cumulative.
type SessionRepo struct {
	store *Store
}

// Get returns the stored session record, zero-valued when none exists.
func (r *SessionRepo) Get(ctx context.Context) model.SessionRecord {
	return readRecord(ctx, r.store.kv, KeySession, model.SessionRecord{}, r.store.log)
}

// Start opens a fresh session with a new id, replacing any previous record.
func (r *SessionRepo) Start(ctx context.Context) (model.SessionRecord, error) {
	session := model.SessionRecord{
		SessionID:    uuid.New().String(),
		StartTime:    r.store.now(),
		LevelsPlayed: []string{},
	}

	err := r.store.queue.Do(ctx, KeySession, func(ctx context.Context) error {
		return writeRecord(ctx, r.store.kv, KeySession, session)
	})
	if err != nil {
		return model.SessionRecord{}, err
	}

	metrics.UpdateSessionActive(true)
	r.store.log.Info(ctx, "session started",
		logger.String("session_id", session.SessionID),
	)
	return session, nil
}

// RecordLevel folds one played level into the session counters. A level
// appears in the played list once regardless of replays.
func (r *SessionRepo) RecordLevel(ctx context.Context, levelID string, stars, mistakes int) error {
	return r.store.queue.Do(ctx, KeySession, func(ctx context.Context) error {
		session := readRecord(ctx, r.store.kv, KeySession, model.SessionRecord{}, r.store.log)
		if session.SessionID == "" {
			return ErrNoSession
		}

		if !slices.Contains(session.LevelsPlayed, levelID) {
			session.LevelsPlayed = append(session.LevelsPlayed, levelID)
		}
		session.SessionStats.GamesPlayed++
		session.SessionStats.StarsEarned += stars
		session.SessionStats.MistakesMade += mistakes

		return writeRecord(ctx, r.store.kv, KeySession, session)
	})
}

// End stamps the end time on the current session. Ending twice, or with no
// session started, returns ErrNoSession.
func (r *SessionRepo) End(ctx context.Context) (model.SessionRecord, error) {
	var ended model.SessionRecord
	err := r.store.queue.Do(ctx, KeySession, func(ctx context.Context) error {
		session := readRecord(ctx, r.store.kv, KeySession, model.SessionRecord{}, r.store.log)
		if session.SessionID == "" || session.EndTime != nil {
			return ErrNoSession
		}

		endedAt := r.store.now()
		session.EndTime = &endedAt
		if err := writeRecord(ctx, r.store.kv, KeySession, session); err != nil {
			return err
		}

		ended = session
		return nil
	})
	if err != nil {
		return model.SessionRecord{}, err
	}

	metrics.UpdateSessionActive(false)
	r.store.log.Info(ctx, "session ended",
		logger.String("session_id", ended.SessionID),
		logger.Int("games_played", ended.SessionStats.GamesPlayed),
		logger.Int("stars_earned", ended.SessionStats.StarsEarned),
	)
	return ended, nil
}
