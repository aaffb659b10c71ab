// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the diagnostic HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// DataPath locates the SQLite file backing the key-value store.
	DataPath string `koanf:"data_path"`

	// WriteQueueSize bounds pending mutations per persisted record.
	WriteQueueSize int `koanf:"write_queue_size"`

	// DedupeSize sets the size of the level-result deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// ImportMaxBytes caps the accepted body size of POST /v1/data/import.
	ImportMaxBytes int64 `koanf:"import_max_bytes"`
}

// New creates a Config using provided options. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use (e.g.,
// loading from env/files) and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		DataPath:       "chefsquest.db",
		WriteQueueSize: 256,
		DedupeSize:     10_000,
		ImportMaxBytes: 1 << 20,
	}
	return c
}
