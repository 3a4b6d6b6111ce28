// Package persist is the collection persistence shim: every collection is one
// key holding the whole JSON-serialized array, rewritten wholesale on each
// mutation. There is no versioning, no migration, and no conflict resolution;
// a malformed stored value falls back silently to the caller's default.
package persist

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"brandistry/pkg/metrics"
)

// Collections loads and stores named entity collections.
type Collections interface {
	// Load decodes the named collection into dst, reporting whether a stored
	// value was used. A missing or unreadable value returns false and leaves
	// dst untouched.
	Load(ctx context.Context, name string, dst any) bool
	// Save writes the whole collection. Failures are logged, never returned:
	// store mutations are infallible.
	Save(ctx context.Context, name string, v any)
}

type RedisStore struct {
	rdb    *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, prefix string, logger *zap.Logger) *RedisStore {
	if prefix == "" {
		prefix = "brandistry"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, logger: logger}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) Load(ctx context.Context, name string, dst any) bool {
	data, err := s.rdb.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("failed to read collection, using defaults",
				zap.String("collection", name),
				zap.Error(err),
			)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		// Corrupt stored value: swallow and fall back to defaults.
		s.logger.Warn("stored collection is malformed, using defaults",
			zap.String("collection", name),
			zap.Error(err),
		)
		return false
	}

	return true
}

func (s *RedisStore) Save(ctx context.Context, name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		metrics.IncrementPersistFailure(name)
		return
	}

	if err := s.rdb.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		s.logger.Error("failed to persist collection",
			zap.String("collection", name),
			zap.Error(err),
		)
		metrics.IncrementPersistFailure(name)
	}
}

// Noop discards saves and never loads; used when no backing store is wired.
type Noop struct{}

func (Noop) Load(ctx context.Context, name string, dst any) bool { return false }
func (Noop) Save(ctx context.Context, name string, v any)        {}
