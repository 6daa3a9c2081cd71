package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is a point-in-time snapshot of the backing stores. Redis
// entries are keyed by logical client name (cache, auth).
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// collectHealth pings every dependency once and builds a snapshot.
func collectHealth(ctx context.Context, redisClients map[string]*redis.Client, mongoClient *mongo.Client) HealthStatus {
	redisHealth := make(map[string]bool, len(redisClients))
	for name, client := range redisClients {
		redisHealth[name] = client.Ping(ctx).Err() == nil
	}

	mongoHealthy := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	return HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor refreshes the health snapshot once a minute for the
// /health endpoint to serve.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			snapshot := collectHealth(ctx, redisClients, mongoClient)

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
