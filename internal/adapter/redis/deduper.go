// Package redis holds the Redis-backed adapters.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/taskboard-backend/internal/config"
)

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Deduper holds idempotency keys in Redis so every API instance sees the
// same set of in-flight and completed requests.
type Deduper struct {
	client *redis.Client
}

// NewDeduper creates a Deduper over client.
func NewDeduper(client *redis.Client) *Deduper {
	return &Deduper{client: client}
}

// Reserve records key for ttl. It returns false if the key is already held.
func (d *Deduper) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := d.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve %s: %w", key, err)
	}
	return ok, nil
}

// Release drops key so the request may be retried.
func (d *Deduper) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (d *Deduper) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
