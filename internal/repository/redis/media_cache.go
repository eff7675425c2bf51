package redis

import (
	"context"
	"strconv"
	"time"

	"spectraSense/business/autoentertain"
	"spectraSense/domain"

	"github.com/redis/go-redis/v9"
)

// MediaCache caches media lookups in front of another repository.
type MediaCache struct {
	rowCache
	next autoentertain.MediaRepository
}

var _ autoentertain.MediaRepository = (*MediaCache)(nil)

func NewMediaCache(client *redis.Client, next autoentertain.MediaRepository, ttl time.Duration) *MediaCache {
	return &MediaCache{
		rowCache: rowCache{client: client, name: "media", ttl: ttl},
		next:     next,
	}
}

func (c *MediaCache) FindByGenre(ctx context.Context, genre string) ([]domain.Media, error) {
	return readThrough(ctx, c.rowCache, c.key("genre", genre), func() ([]domain.Media, error) {
		return c.next.FindByGenre(ctx, genre)
	})
}

func (c *MediaCache) FindByTitle(ctx context.Context, title string) ([]domain.Media, error) {
	return readThrough(ctx, c.rowCache, c.key("title", title), func() ([]domain.Media, error) {
		return c.next.FindByTitle(ctx, title)
	})
}

func (c *MediaCache) FindByGenreExcluding(ctx context.Context, genre string, excludeID uint64) ([]domain.Media, error) {
	key := c.key("candidates", genre, "exclude", strconv.FormatUint(excludeID, 10))
	return readThrough(ctx, c.rowCache, key, func() ([]domain.Media, error) {
		return c.next.FindByGenreExcluding(ctx, genre, excludeID)
	})
}
