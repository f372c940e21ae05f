package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Key formatting
	"time"          // Time durations

	"emerge/internal/domain" // Cached domain models

	"github.com/redis/go-redis/v9" // Redis client
)

// ProfileKey is the cache key of a user's merged profile record
func ProfileKey(userID uint) string {
	return "profile:user:" + strconv.FormatUint(uint64(userID), 10)
}

// GetProfileCache returns the cached profile of userID.
// A nil client behaves like an empty cache.
func GetProfileCache(ctx context.Context, rdb *redis.Client, userID uint) (*domain.Profile, bool, error) {
	var profile domain.Profile
	found, err := getJSON(ctx, rdb, ProfileKey(userID), &profile)
	if err != nil || !found {
		return nil, false, err // Miss or Redis error
	}
	return &profile, true, nil
}

// SetProfileCache stores profile under its user's key for ttl
func SetProfileCache(ctx context.Context, rdb *redis.Client, profile *domain.Profile, ttl time.Duration) error {
	if rdb == nil || profile == nil {
		return nil // Nothing to cache
	}
	b, err := json.Marshal(profile) // Subjects stay a JSON array
	if err != nil {
		return err
	}
	return rdb.Set(ctx, ProfileKey(profile.ID), b, ttl).Err()
}

// DeleteProfileCache drops the cached profile of userID
func DeleteProfileCache(ctx context.Context, rdb *redis.Client, userID uint) error {
	if rdb == nil {
		return nil // Caching disabled
	}
	return rdb.Del(ctx, ProfileKey(userID)).Err()
}

// getJSON loads key and unmarshals it into dest, reporting whether it existed
func getJSON(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Caching disabled
	}
	val, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal(val, dest)
}
