// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package food

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phamtuan/vitalog/internal/platform/constants"
	"github.com/phamtuan/vitalog/internal/platform/ctxutil"
)

// listCacheTTL bounds staleness if an invalidation is lost.
const listCacheTTL = 10 * time.Minute

// RedisListCache caches the unfiltered food listing as a JSON blob.
//
// The cache is purely an accelerator: every failure path degrades to the
// database read, never to an error surfaced to the client.
type RedisListCache struct {
	client *redis.Client
}

// NewListCache creates a Redis-backed ListCache for foods.
func NewListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

const foodListKey = constants.RedisPrefixCatalog + "food"

// Get returns the cached listing, reporting a miss on absence or decode failure.
func (cache *RedisListCache) Get(context context.Context) ([]Food, bool) {
	payload, err := cache.client.Get(context, foodListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var foods []Food
	if err := json.Unmarshal(payload, &foods); err != nil {
		// A corrupt entry is dropped so the next write repopulates it cleanly.
		_ = cache.client.Del(context, foodListKey).Err()
		return nil, false
	}

	return foods, true
}

// Set stores the listing with a bounded TTL. Failures are logged, not surfaced.
func (cache *RedisListCache) Set(context context.Context, foods []Food) {
	payload, err := json.Marshal(foods)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, foodListKey, payload, listCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(context).DebugContext(context, "food_list_cache_set_failed",
			slog.Any("error", err),
		)
	}
}

// Invalidate drops the cached listing after a vocabulary write.
func (cache *RedisListCache) Invalidate(context context.Context) {
	if err := cache.client.Del(context, foodListKey).Err(); err != nil {
		ctxutil.GetLogger(context).DebugContext(context, "food_list_cache_invalidate_failed",
			slog.Any("error", err),
		)
	}
}
