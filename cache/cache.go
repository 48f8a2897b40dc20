// Package cache stores rendered public responses (the sitemap, the category
// list) so they are not rebuilt on every request.
package cache

import (
	"context"
	"errors"
	"time"

	"kaalchakra-cms/logger"
)

var ErrCacheMiss = errors.New("cache: miss")

// Keys shared by the services that fill and invalidate the cache.
const (
	KeySitemap          = "sitemap.xml"
	KeyPublicCategories = "public:categories"
)

// Cacher is implemented by MemoryCache and RedisCache.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// New returns a Redis cache when redisURL is set and reachable, and an
// in-process cache otherwise.
func New(redisURL, prefix string, ttl time.Duration) Cacher {
	if redisURL == "" {
		return NewMemoryCache(ttl)
	}
	rc, err := NewRedisCacheFromURL(redisURL, prefix, ttl)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, falling back to memory cache")
		return NewMemoryCache(ttl)
	}
	logger.Info().Str("prefix", prefix).Msg("using redis cache")
	return rc
}
