package redis

import (
	"context"
	"time"

	"spectraSense/business/autosense"
	"spectraSense/domain"

	"github.com/redis/go-redis/v9"
)

// PredictiveDataCache caches coefficient rows per predictive type in front of
// another repository.
type PredictiveDataCache struct {
	rowCache
	next autosense.PredictiveDataRepository
}

var _ autosense.PredictiveDataRepository = (*PredictiveDataCache)(nil)

func NewPredictiveDataCache(client *redis.Client, next autosense.PredictiveDataRepository, ttl time.Duration) *PredictiveDataCache {
	return &PredictiveDataCache{
		rowCache: rowCache{client: client, name: "predictive", ttl: ttl},
		next:     next,
	}
}

func (c *PredictiveDataCache) FindByType(ctx context.Context, predictiveType string) ([]domain.PredictiveData, error) {
	return readThrough(ctx, c.rowCache, c.key("type", predictiveType), func() ([]domain.PredictiveData, error) {
		return c.next.FindByType(ctx, predictiveType)
	})
}
