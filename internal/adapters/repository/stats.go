package repository

import (
	"context"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/internal/domain/scoring"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// StatsRepo persists the singleton global statistics record.
type StatsRepo struct {
	store *Store
}

// Get returns the stats record, or a first-run default stamped at the
// current time when none has been persisted.
func (r *StatsRepo) Get(ctx context.Context) model.GlobalStats {
	return readRecord(ctx, r.store.kv, KeyStats,
		model.DefaultStats(r.store.now()), r.store.log)
}

// Apply folds the given updates into the stored stats record under its
// write lane, validates the result, persists it, and returns it. A record
// that would violate its invariants is not written.
func (r *StatsRepo) Apply(ctx context.Context, updates ...scoring.Update) (model.GlobalStats, error) {
	var result model.GlobalStats
	err := r.store.queue.Do(ctx, KeyStats, func(ctx context.Context) error {
		stats := readRecord(ctx, r.store.kv, KeyStats,
			model.DefaultStats(r.store.now()), r.store.log)

		for _, u := range updates {
			u.Apply(&stats)
		}
		if err := stats.Validate(); err != nil {
			return err
		}
		if err := writeRecord(ctx, r.store.kv, KeyStats, stats); err != nil {
			return err
		}

		result = stats
		metrics.UpdateTotalStars(stats.TotalStars)
		metrics.UpdateCurrentStreak(stats.CurrentStreak)
		return nil
	})
	return result, err
}
