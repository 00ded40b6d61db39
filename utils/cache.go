// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"gatherandgo/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (recommendation results).
	CacheClient *redis.Client
	// RatingsCacheClient is the dedicated client backing the rating ledger.
	RatingsCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitRatingsCache initializes the Redis client for the rating ledger
// (using the dedicated DB from AppConfig so ledger keys never collide with
// cache entries).
func InitRatingsCache() {
	RatingsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRatingsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RatingsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Ratings): %v", err)
	}
}

// GetRatingsCacheClient returns the Redis client for the rating ledger.
func GetRatingsCacheClient() *redis.Client {
	if RatingsCacheClient == nil {
		InitRatingsCache()
	}
	return RatingsCacheClient
}
