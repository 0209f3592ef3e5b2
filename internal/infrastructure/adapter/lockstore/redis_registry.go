package lockstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/people-registry/internal/domain/error"
	coreport "github.com/amirhossein-jamali/people-registry/internal/domain/port/core"
	"github.com/amirhossein-jamali/people-registry/internal/infrastructure/config"
)

// keyPrefix tags lock keys so they can be told apart from any other use of
// the keyspace. The value stored under a key is never read; presence alone
// is significant.
const (
	keyPrefix = "_key_"
	keyValue  = "key"
)

// RedisRegistry implements the lock.Registry interface on top of Redis.
// Entries expire through their TTL; the registry never deletes them.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisRegistry creates a lock registry with the given protection window
func NewRedisRegistry(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisRegistry {
	return &RedisRegistry{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// NewClient builds a go-redis client from the application config
func NewClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})
}

// key builds the namespaced lock key for a person id
func key(id uint64) string {
	return keyPrefix + strconv.FormatUint(id, 10)
}

// Lock places a protection entry for the id. A repeated call overwrites the
// entry and restarts the TTL window.
func (r *RedisRegistry) Lock(ctx context.Context, id uint64) error {
	if err := r.client.Set(ctx, key(id), keyValue, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to set lock entry", map[string]any{
			"person_id": id,
			"error":     err.Error(),
		})
		return errs.NewStoreError("redis", "lock", err)
	}

	r.logger.Debug("Lock entry set", map[string]any{
		"person_id": id,
		"ttl":       r.ttl.String(),
	})
	return nil
}

// IsLocked reports whether an unexpired entry exists for the id. Backend
// failures are returned as errors so callers fail closed.
func (r *RedisRegistry) IsLocked(ctx context.Context, id uint64) (bool, error) {
	n, err := r.client.Exists(ctx, key(id)).Result()
	if err != nil {
		r.logger.Error("Failed to check lock entry", map[string]any{
			"person_id": id,
			"error":     err.Error(),
		})
		return false, errs.NewStoreError("redis", "isLocked", err)
	}
	return n > 0, nil
}

// LockedIDs lists all ids with an unexpired entry by scanning the lock
// namespace and stripping the prefix. Keys that don't parse as ids are
// skipped; nothing else is expected to live under the prefix.
func (r *RedisRegistry) LockedIDs(ctx context.Context) ([]uint64, error) {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		r.logger.Error("Failed to list lock entries", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.NewStoreError("redis", "lockedIDs", err)
	}

	ids := make([]uint64, 0, len(keys))
	for _, k := range keys {
		raw := strings.TrimPrefix(k, keyPrefix)
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			r.logger.Warn("Skipping malformed lock key", map[string]any{
				"key": k,
			})
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Ping verifies the lock store is reachable
func (r *RedisRegistry) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errs.NewStoreError("redis", "ping", err)
	}
	return nil
}
