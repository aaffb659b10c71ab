package repository

import (
	"context"

	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// AchievementRepo persists per-achievement unlock state. It satisfies the
// achievement engine's state store contract.
type AchievementRepo struct {
	store *Store
}

// States returns unlock state for every achievement in the catalog, with
// all-locked defaults for ids never persisted. Unknown ids from older or
// foreign save data are dropped.
func (r *AchievementRepo) States(ctx context.Context) map[string]model.AchievementState {
	stored := readRecord(ctx, r.store.kv, KeyAchievements,
		map[string]model.AchievementState{}, r.store.log)

	out := make(map[string]model.AchievementState, len(catalog.AchievementIDs()))
	for _, id := range catalog.AchievementIDs() {
		out[id] = stored[id]
	}
	return out
}

// SaveStates overwrites the whole achievements record.
func (r *AchievementRepo) SaveStates(ctx context.Context, states map[string]model.AchievementState) error {
	return r.store.queue.Do(ctx, KeyAchievements, func(ctx context.Context) error {
		return writeRecord(ctx, r.store.kv, KeyAchievements, states)
	})
}
