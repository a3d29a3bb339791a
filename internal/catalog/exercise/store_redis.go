// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package exercise

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phamtuan/vitalog/internal/platform/constants"
	"github.com/phamtuan/vitalog/internal/platform/ctxutil"
)

const exerciseListCacheTTL = 10 * time.Minute

var exerciseListKey = constants.RedisPrefixCatalog + "exercise"

// RedisListCache caches the unfiltered exercise listing.
type RedisListCache struct {
	client *redis.Client
}

// NewListCache constructs a new [RedisListCache].
func NewListCache(client *redis.Client) *RedisListCache {
	return &RedisListCache{client: client}
}

func (cache *RedisListCache) Get(context context.Context) ([]Exercise, bool) {
	payload, err := cache.client.Get(context, exerciseListKey).Result()
	if err != nil {
		return nil, false
	}

	var exercises []Exercise
	if err := json.Unmarshal([]byte(payload), &exercises); err != nil {
		cache.client.Del(context, exerciseListKey)
		return nil, false
	}

	return exercises, true
}

func (cache *RedisListCache) Set(context context.Context, exercises []Exercise) {
	payload, err := json.Marshal(exercises)
	if err != nil {
		return
	}

	if err := cache.client.Set(context, exerciseListKey, payload, exerciseListCacheTTL).Err(); err != nil {
		ctxutil.GetLogger(context).DebugContext(context, "exercise_cache_set_failed", "error", err)
	}
}

func (cache *RedisListCache) Invalidate(context context.Context) {
	if err := cache.client.Del(context, exerciseListKey).Err(); err != nil {
		ctxutil.GetLogger(context).DebugContext(context, "exercise_cache_invalidate_failed", "error", err)
	}
}
