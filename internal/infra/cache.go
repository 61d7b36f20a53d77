package infra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	analyticsCachePrefix = "analytics:"
	analyticsCacheIndex  = "analytics:keys"
)

// AnalyticsCache stores analytics results as JSON in Redis. Every operation
// goes through a Breaker; a miss, a fault or an open breaker all look like a
// miss to the caller, who then queries the store.
type AnalyticsCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	breaker *Breaker
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	cfg := DefaultBreakerConfig()
	cfg.Expected = func(err error) bool { return errors.Is(err, redis.Nil) }
	return &AnalyticsCache{rdb: rdb, ttl: ttl, breaker: NewBreaker(cfg)}
}

// Get decodes the cached value for key into dest and reports whether it did.
func (c *AnalyticsCache) Get(ctx context.Context, key string, dest interface{}) bool {
	var raw []byte
	err := c.breaker.Do(func() error {
		b, err := c.rdb.Get(ctx, analyticsCachePrefix+key).Bytes()
		raw = b
		return err
	})
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, ErrBreakerOpen) {
			log.Warn().Err(err).Str("key", key).Msg("analytics cache: get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("analytics cache: corrupt entry")
		return false
	}
	return true
}

// Set caches value under key for the configured TTL and records the key so
// Invalidate can find it.
func (c *AnalyticsCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("analytics cache: encode failed")
		return
	}
	err = c.breaker.Do(func() error {
		pipe := c.rdb.TxPipeline()
		pipe.Set(ctx, analyticsCachePrefix+key, data, c.ttl)
		pipe.SAdd(ctx, analyticsCacheIndex, analyticsCachePrefix+key)
		_, err := pipe.Exec(ctx)
		return err
	})
	if err != nil && !errors.Is(err, ErrBreakerOpen) {
		log.Warn().Err(err).Str("key", key).Msg("analytics cache: set failed")
	}
}

// Invalidate drops every cached analytics result. Called after any write so
// readers never see results older than the last mutation.
func (c *AnalyticsCache) Invalidate(ctx context.Context) error {
	return c.breaker.Do(func() error {
		keys, err := c.rdb.SMembers(ctx, analyticsCacheIndex).Result()
		if err != nil {
			return err
		}
		keys = append(keys, analyticsCacheIndex)
		return c.rdb.Del(ctx, keys...).Err()
	})
}
