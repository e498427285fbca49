// Package redis stores the art cache as a single JSON document in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vaibhavuttam8/jam-rating/internal/core/ports"
)

// CacheKey holds the JSON-encoded entry-id -> image-URL object.
const CacheKey = "albumArtCache"

// Adapter implements the art cache repository port for Redis.
type Adapter struct {
	rdb *redis.Client
	key string
}

var _ ports.ArtCacheRepository = (*Adapter)(nil)

// NewAdapter parses redisURL, connects and pings the server.
func NewAdapter(ctx context.Context, redisURL string) (*Adapter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewFromClient(rdb), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(rdb *redis.Client) *Adapter {
	return &Adapter{rdb: rdb, key: CacheKey}
}

// Close releases the client.
func (a *Adapter) Close() error {
	return a.rdb.Close()
}

// Load reads the mapping. A missing key is an empty cache.
func (a *Adapter) Load(ctx context.Context) (map[string]string, error) {
	raw, err := a.rdb.Get(ctx, a.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load art cache: %w", err)
	}

	out := map[string]string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode art cache: %w", err)
	}
	return out, nil
}

// SaveAll overwrites the stored mapping.
func (a *Adapter) SaveAll(ctx context.Context, entries map[string]string) error {
	if entries == nil {
		entries = map[string]string{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode art cache: %w", err)
	}
	if err := a.rdb.Set(ctx, a.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save art cache: %w", err)
	}
	return nil
}
