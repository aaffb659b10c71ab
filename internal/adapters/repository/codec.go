package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
	"github.com/Sameer447/ChefsQuest/pkg/metrics"
)

// Read-fallback reasons reported to metrics.
const (
	fallbackMissing = "missing"
	fallbackCorrupt = "corrupt"
	fallbackReadErr = "read_error"
)

// readRecord loads and decodes the record at key. Reads never fail upward:
// a missing, corrupt, or unreadable record yields the fallback value so the
// caller always gets a usable record, at worst a first-run default.
func readRecord[T any](ctx context.Context, kv storage.KV, key string, fallback T, log logger.Logger) T {
	metrics.RecordRead(key)

	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			metrics.RecordReadFallback(key, fallbackMissing)
			return fallback
		}
		metrics.RecordReadFallback(key, fallbackReadErr)
		log.Error(ctx, "record read failed, falling back to default",
			logger.String("key", key),
			logger.Error(err),
		)
		return fallback
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		metrics.RecordReadFallback(key, fallbackCorrupt)
		log.Error(ctx, "record corrupt, falling back to default",
			logger.String("key", key),
			logger.Error(err),
		)
		return fallback
	}
	return out
}

// writeRecord encodes and durably stores the record at key. Unlike reads,
// write failures surface to the caller.
func writeRecord[T any](ctx context.Context, kv storage.KV, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		metrics.RecordWriteFailure(key)
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(raw)); err != nil {
		metrics.RecordWriteFailure(key)
		return fmt.Errorf("write record %s: %w", key, err)
	}
	metrics.RecordWrite(key)
	return nil
}
