// Package repository maps the five persisted game records onto the durable
// key-value store. Reads fall back to first-run defaults instead of failing;
// every mutation routes through the write queue so record updates are
// serialized per key.
package repository

import (
	"context"
	"time"

	"github.com/Sameer447/ChefsQuest/internal/adapters/mq/writequeue"
	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// Store bundles the per-record repositories over a shared key-value store
// and write queue.
type Store struct {
	kv    storage.KV
	queue *writequeue.Queue
	log   logger.Logger
	now   func() time.Time

	Progress     *ProgressRepo
	Stats        *StatsRepo
	Achievements *AchievementRepo
	Session      *SessionRepo
	Settings     *SettingsRepo
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithLogger sets a custom logger for the store and its repositories.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the time source used for default and export timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Store over the given key-value store and write queue.
func New(kv storage.KV, queue *writequeue.Queue, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		queue: queue,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get().Named("repository")
	}

	s.Progress = &ProgressRepo{store: s}
	s.Stats = &StatsRepo{store: s}
	s.Achievements = &AchievementRepo{store: s}
	s.Session = &SessionRepo{store: s}
	s.Settings = &SettingsRepo{store: s}
	return s
}

// ClearAll removes every persisted record. Subsequent reads return first-run
// defaults. Each removal is serialized through the record's write lane so a
// reset cannot interleave with an in-flight mutation of the same record.
func (s *Store) ClearAll(ctx context.Context) error {
	for _, key := range RecordKeys() {
		key := key
		err := s.queue.Do(ctx, key, func(ctx context.Context) error {
			return s.kv.Remove(ctx, key)
		})
		if err != nil {
			return err
		}
	}
	metrics.RecordReset()
	s.log.Info(ctx, "all records cleared")
	return nil
}

// Export snapshots the five records into a bundle stamped with the export
// time. Reads use the same default-fallback policy as normal access, so a
// fresh install exports a bundle of first-run defaults.
func (s *Store) Export(ctx context.Context) (model.ExportBundle, error) {
	stats := s.Stats.Get(ctx)
	session := s.Session.Get(ctx)
	settings := s.Settings.Get(ctx)

	bundle := model.ExportBundle{
		Progress:     s.Progress.GetAll(ctx),
		Stats:        &stats,
		Achievements: s.Achievements.States(ctx),
		Session:      &session,
		Settings:     &settings,
		ExportDate:   s.now(),
	}
	metrics.RecordExport()
	return bundle, nil
}

// Import restores records from a bundle. Only sections present in the bundle
// are written; absent sections keep their current value. Records carried by
// the bundle are validated before anything is written, so a bad bundle
// changes nothing.
func (s *Store) Import(ctx context.Context, bundle model.ExportBundle) error {
	if bundle.Stats != nil {
		if err := bundle.Stats.Validate(); err != nil {
			return err
		}
	}
	for _, p := range bundle.Progress {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if bundle.Progress != nil {
		if err := s.Progress.SaveAll(ctx, bundle.Progress); err != nil {
			return err
		}
	}
	if bundle.Stats != nil {
		stats := *bundle.Stats
		err := s.queue.Do(ctx, KeyStats, func(ctx context.Context) error {
			return writeRecord(ctx, s.kv, KeyStats, stats)
		})
		if err != nil {
			return err
		}
	}
	if bundle.Achievements != nil {
		if err := s.Achievements.SaveStates(ctx, bundle.Achievements); err != nil {
			return err
		}
	}
	if bundle.Session != nil {
		session := *bundle.Session
		err := s.queue.Do(ctx, KeySession, func(ctx context.Context) error {
			return writeRecord(ctx, s.kv, KeySession, session)
		})
		if err != nil {
			return err
		}
	}
	if bundle.Settings != nil {
		if err := s.Settings.Save(ctx, *bundle.Settings); err != nil {
			return err
		}
	}

	metrics.RecordImport()
	s.log.Info(ctx, "records imported",
		logger.Bool("progress", bundle.Progress != nil),
		logger.Bool("stats", bundle.Stats != nil),
		logger.Bool("achievements", bundle.Achievements != nil),
		logger.Bool("session", bundle.Session != nil),
		logger.Bool("settings", bundle.Settings != nil),
	)
	return nil
}
