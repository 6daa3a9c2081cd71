package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	// Nothing listens on this address, so the auth client is unhealthy.
	auth := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	snapshot := collectHealth(context.Background(), map[string]*redis.Client{
		"cache": cache,
		"auth":  auth,
	}, nil)

	require.Len(t, snapshot.Redis, 2)
	assert.True(t, snapshot.Redis["cache"])
	assert.False(t, snapshot.Redis["auth"])
	assert.False(t, snapshot.Mongo)
	assert.False(t, snapshot.CheckedAt.IsZero())
}
