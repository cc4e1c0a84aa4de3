package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKey mirrors the durable key used by the mobile clients.
const defaultRedisKey = "authkit:refreshToken"

// Redis defines a public type used by authkit APIs.
//
// Redis keeps the refresh credential under a single key in a Redis instance.
// It exists for headless agent deployments that have no per-device secure
// storage but do run a local keystore; it provides the same single-value
// contract as the other backends.
type Redis struct {
	rdb *redis.Client
	key string
}

// NewRedis returns a store backed by rdb. An empty key selects the default
// well-known key.
func NewRedis(rdb *redis.Client, key string) *Redis {
	if key == "" {
		key = defaultRedisKey
	}
	return &Redis{rdb: rdb, key: key}
}

// Save stores token under the store's key, replacing any previous value.
func (r *Redis) Save(ctx context.Context, token string) error {
	if err := r.rdb.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("redis save token: %w", err)
	}
	return nil
}

// Load returns the stored token, reporting absence when the key is unset.
func (r *Redis) Load(ctx context.Context) (string, bool, error) {
	token, err := r.rdb.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis load token: %w", err)
	}
	return token, true, nil
}

// Clear removes the stored token. Clearing an unset key succeeds.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.rdb.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis clear token: %w", err)
	}
	return nil
}
