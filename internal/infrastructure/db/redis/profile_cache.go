package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultProfileTTL = 5 * time.Minute

// ProfileCache stores public profile documents as JSON.
// Key format: profile:<kind>:<id>
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
// A non-positive ttl selects the default of five minutes.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

// Get decodes the cached document into dst and reports whether it was present.
func (c *ProfileCache) Get(ctx context.Context, kind, id string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, profileKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("profile cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("profile cache decode: %w", err)
	}
	return true, nil
}

// Set stores doc until the configured TTL elapses.
func (c *ProfileCache) Set(ctx context.Context, kind, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(kind, id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return nil
}

// SetIfAbsent stores doc only if the key is not already set.
func (c *ProfileCache) SetIfAbsent(ctx context.Context, kind, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	if err := c.client.SetNX(ctx, profileKey(kind, id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("profile cache setnx: %w", err)
	}
	return nil
}

// Delete drops the cached document, if any.
func (c *ProfileCache) Delete(ctx context.Context, kind, id string) error {
	if err := c.client.Del(ctx, profileKey(kind, id)).Err(); err != nil {
		return fmt.Errorf("profile cache delete: %w", err)
	}
	return nil
}

func profileKey(kind, id string) string {
	return fmt.Sprintf("profile:%s:%s", kind, id)
}
