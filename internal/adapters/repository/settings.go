package repository

import (
	"context"

	"github.com/Sameer447/ChefsQuest/internal/domain/model"
)

// SettingsRepo persists the user settings record.
type SettingsRepo struct {
	store *Store
}

// Get returns the stored settings, or first-run defaults when none exist.
func (r *SettingsRepo) Get(ctx context.Context) model.UserSettings {
	return readRecord(ctx, r.store.kv, KeySettings, model.DefaultSettings(), r.store.log)
}

// Save overwrites the settings record.
func (r *SettingsRepo) Save(ctx context.Context, settings model.UserSettings) error {
	return r.store.queue.Do(ctx, KeySettings, func(ctx context.Context) error {
		return writeRecord(ctx, r.store.kv, KeySettings, settings)
	})
}
