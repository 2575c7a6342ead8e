package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/acadtrack/acadtrack/internal/core/domain"
)

const (
	activityListKey = "activities:list"
	activityListTTL = 5 * time.Minute
)

// ActivityCache caches the full activity listing as a single JSON blob.
// Mutations invalidate the key, so readers pull fresh data on demand instead
// of polling. Cache failures degrade to store reads, never to errors.
type ActivityCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewActivityCache creates an ActivityCache wrapping the given Redis client.
func NewActivityCache(client *redis.Client, log zerolog.Logger) *ActivityCache {
	return &ActivityCache{client: client, log: log}
}

// Get returns the cached listing and whether it was present and decodable.
func (c *ActivityCache) Get(ctx context.Context) ([]*domain.Activity, bool) {
	raw, err := c.client.Get(ctx, activityListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("activity cache read failed")
		}
		return nil, false
	}

	var activities []*domain.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		c.log.Warn().Err(err).Msg("activity cache corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return activities, true
}

// Set stores the listing with a TTL as a safety net against missed invalidations.
func (c *ActivityCache) Set(ctx context.Context, activities []*domain.Activity) {
	raw, err := json.Marshal(activities)
	if err != nil {
		c.log.Warn().Err(err).Msg("activity cache encode failed")
		return
	}
	if err := c.client.Set(ctx, activityListKey, raw, activityListTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("activity cache write failed")
	}
}

// Invalidate drops the cached listing.
func (c *ActivityCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, activityListKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("activity cache invalidation failed")
	}
}
