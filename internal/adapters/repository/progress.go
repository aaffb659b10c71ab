package repository

import (
	"context"

	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/internal/domain/scoring"
)

// ProgressRepo persists the per-level progress record.
type ProgressRepo struct {
	store *Store
}

// GetAll returns progress for every catalog level. Levels never played are
// present with zero-value progress, so callers can range over the full
// catalog without existence checks.
func (r *ProgressRepo) GetAll(ctx context.Context) map[string]model.LevelProgress {
	stored := readRecord(ctx, r.store.kv, KeyProgress,
		map[string]model.LevelProgress{}, r.store.log)

	out := make(map[string]model.LevelProgress, catalog.RecipeCount())
	for _, id := range catalog.RecipeIDs() {
		out[id] = stored[id]
	}
	return out
}

// Get returns the progress record for a single level.
func (r *ProgressRepo) Get(ctx context.Context, levelID string) model.LevelProgress {
	return r.GetAll(ctx)[levelID]
}

// SaveAll overwrites the whole progress record.
func (r *ProgressRepo) SaveAll(ctx context.Context, progress map[string]model.LevelProgress) error {
	return r.store.queue.Do(ctx, KeyProgress, func(ctx context.Context) error {
		return writeRecord(ctx, r.store.kv, KeyProgress, progress)
	})
}

// ApplyResult folds a level result into the stored progress for its level
// under the record's write lane, and returns the progress before and after.
// The prior snapshot is what stats deltas are computed against.
func (r *ProgressRepo) ApplyResult(ctx context.Context, res model.LevelResult) (prev, next model.LevelProgress, err error) {
	err = r.store.queue.Do(ctx, KeyProgress, func(ctx context.Context) error {
		stored := readRecord(ctx, r.store.kv, KeyProgress,
			map[string]model.LevelProgress{}, r.store.log)

		prev = stored[res.LevelID]
		next = scoring.ApplyResult(prev, res, r.store.now())
		if err := next.Validate(); err != nil {
			return err
		}

		stored[res.LevelID] = next
		return writeRecord(ctx, r.store.kv, KeyProgress, stored)
	})
	return prev, next, err
}
