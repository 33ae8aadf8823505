package utils

import (
	"context"
	"fmt"
	"time"

	"slotbook/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for token revocation entries.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for token revocation (using REDIS_AUTH_DB).
func InitAuthCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Auth Cache): %w", err)
	}
	AuthCacheClient = client
	return nil
}

// GetAuthCacheClient returns the Redis client for token revocation, or nil when
// Redis is disabled or unreachable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}
