// Copyright (c) 2026 Vitalog. All rights reserved.
// Author: tuan.phamminh.vn@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/phamtuan/vitalog/internal/platform/constants"
)

// # Ban-Status Cache

// banStatusTTL bounds staleness when an invalidation is lost (e.g. Redis
// restart between the admin PATCH and the eviction). The write-through
// invalidation on the ban endpoint is the primary freshness mechanism.
const banStatusTTL = 5 * time.Minute

// RedisBanStatusRepository implements BanStatusRepository as a read-through
// cache in front of the Postgres account table.
//
// Every authenticated request consults the ban flag, so serving it from
// Redis keeps the access guard off the primary database.
type RedisBanStatusRepository struct {
	client *redis.Client
	source BanStatusSource
}

// NewBanStatusRepository creates a Redis-backed BanStatusRepository over the
// given authoritative source.
func NewBanStatusRepository(client *redis.Client, source BanStatusSource) *RedisBanStatusRepository {
	return &RedisBanStatusRepository{client: client, source: source}
}

/*
IsBanned resolves the account's ban flag, preferring the cache.

Description: Cache hits decode "1"/"0"; misses fall through to the source
and repopulate the cache with a bounded TTL. Cache READ failures degrade to
the source instead of failing the request.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - bool: Ban flag
  - error: Source retrieval failures
*/
func (repository *RedisBanStatusRepository) IsBanned(context context.Context, userID string) (bool, error) {
	key := constants.RedisPrefixBanStatus + userID

	// 1. Cache probe
	cached, err := repository.client.Get(context, key).Result()
	if err == nil {
		return cached == "1", nil
	}
	if !errors.Is(err, redis.Nil) {
		// Degraded cache: fall through to the source silently.
		return repository.readThrough(context, key, userID)
	}

	// 2. Cache miss
	return repository.readThrough(context, key, userID)
}

/*
Invalidate evicts the cached ban flag for an account.

Description: Called by the admin ban endpoint right after the flag flips, so
the next authenticated request re-reads the fresh value.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Eviction failures
*/
func (repository *RedisBanStatusRepository) Invalidate(context context.Context, userID string) error {
	key := constants.RedisPrefixBanStatus + userID

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_ban_status_invalidate_failed: %w", err)
	}

	return nil
}

// readThrough fetches the flag from the source and backfills the cache.
func (repository *RedisBanStatusRepository) readThrough(context context.Context, key, userID string) (bool, error) {
	banned, err := repository.source.IsBanned(context, userID)
	if err != nil {
		return false, err
	}

	value := "0"
	if banned {
		value = "1"
	}

	// Best-effort backfill; a failed SET just means another read-through.
	_ = repository.client.Set(context, key, value, banStatusTTL).Err()

	return banned, nil
}
