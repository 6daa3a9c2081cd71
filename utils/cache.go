// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient builds and pings a Redis client for the given logical DB.
// Callers hold their own client rather than sharing an ambient global.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}

const RevokedTokenPrefix = "revokedToken:"

// RevokeToken records a token hash in the denylist until the token would
// have expired anyway.
func RevokeToken(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, RevokedTokenPrefix+tokenHash, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token hash is on the denylist.
func IsTokenRevoked(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, RevokedTokenPrefix+tokenHash).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token denylist: %w", err)
	}
	return n > 0, nil
}
