package app

import (
	"time"

	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/domain/dedupe"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithKV sets the key-value store backing the record repositories. Required.
func WithKV(kv storage.KV) Option {
	return func(s *Service) {
		s.kv = kv
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock sets the time source used for streaks, stamps, and sessions.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithQueueSize bounds pending mutations per record key.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize bounds the level-result duplicate suppression cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithDeduper replaces the duplicate suppression cache entirely.
func WithDeduper(d dedupe.Deduper) Option {
	return func(s *Service) {
		if d != nil {
			s.dedupe = d
		}
	}
}
