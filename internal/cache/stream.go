package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamCache keeps resolved audio stream URLs in Redis so repeat plays of
// the same track skip the extraction call. Entries expire because upstream
// stream URLs are short-lived.
type StreamCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStreamCache(client *redis.Client, ttl time.Duration) *StreamCache {
	return &StreamCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached stream URL for a source URL, or the empty string
// when no entry exists.
func (c *StreamCache) Get(ctx context.Context, sourceURL string) (string, error) {
	streamURL, err := c.client.Get(ctx, key(sourceURL)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get cached stream url: %w", err)
	}

	return streamURL, nil
}

func (c *StreamCache) Set(ctx context.Context, sourceURL, streamURL string) error {
	if err := c.client.Set(ctx, key(sourceURL), streamURL, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache stream url: %w", err)
	}

	return nil
}

func (c *StreamCache) Invalidate(ctx context.Context, sourceURL string) error {
	return c.client.Del(ctx, key(sourceURL)).Err()
}

func key(sourceURL string) string {
	return fmt.Sprintf("stream:%s", sourceURL)
}
