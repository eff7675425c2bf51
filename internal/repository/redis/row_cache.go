package redis

import (
	"context"
	"errors"
	"time"

	"spectraSense/pkg/logger"
	"spectraSense/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "spectrasense:"

// rowCache is a read-through cache for slices of rows. Cache failures are
// logged and the loader is used instead; empty results are not stored.
type rowCache struct {
	client *redis.Client
	name   string
	ttl    time.Duration
}

func (c rowCache) key(parts ...string) string {
	k := keyPrefix + c.name
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

func readThrough[T any](ctx context.Context, c rowCache, key string, load func() ([]T, error)) ([]T, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rows []T
		if err := json.Unmarshal(raw, &rows); err == nil {
			metrics.CacheRequests.WithLabelValues(c.name, metrics.CacheHit).Inc()
			return rows, nil
		}
		logger.Warn("dropping undecodable cache entry", "key", key)
		metrics.CacheRequests.WithLabelValues(c.name, metrics.CacheError).Inc()
	case errors.Is(err, redis.Nil):
		metrics.CacheRequests.WithLabelValues(c.name, metrics.CacheMiss).Inc()
	default:
		logger.Warn("cache read failed", "key", key, "error", err)
		metrics.CacheRequests.WithLabelValues(c.name, metrics.CacheError).Inc()
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return rows, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}

	return rows, nil
}
