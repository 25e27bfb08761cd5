// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"roomfinder/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for bearer-token sessions.
	SessionCacheClient *redis.Client
	// StatsCacheClient is the client for cached dashboard stats snapshots.
	StatsCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client backing persistent sessions
// (using DB from AppConfig for session storage).
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitStatsCache initializes the Redis client for stats snapshot caching.
func InitStatsCache() {
	StatsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := StatsCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Stats Cache): %v", err)
	}
}

// GetStatsCacheClient returns the Redis client for stats snapshot caching.
func GetStatsCacheClient() *redis.Client {
	if StatsCacheClient == nil {
		InitStatsCache()
	}
	return StatsCacheClient
}
