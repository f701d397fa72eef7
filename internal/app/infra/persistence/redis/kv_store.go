package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KVStore keeps each cart under a plain redis string key.
type KVStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewKVStore wraps rdb. A positive ttl expires idle carts; every write
// refreshes it.
func NewKVStore(rdb *redis.Client, ttl time.Duration) *KVStore {
	return &KVStore{rdb: rdb, ttl: ttl}
}

// GetItem reads key; a missing key is not an error.
func (s *KVStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// SetItem writes key with the configured ttl.
func (s *KVStore) SetItem(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, s.ttl).Err()
}

// RemoveItem deletes key.
func (s *KVStore) RemoveItem(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
