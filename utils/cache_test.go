package utils

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenDenylist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	hash := HashToken("some-session-token")

	revoked, err := IsTokenRevoked(client, hash)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeToken(client, hash, time.Hour))

	revoked, err = IsTokenRevoked(client, hash)
	require.NoError(t, err)
	assert.True(t, revoked)

	t.Run("EntryExpiresWithToken", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)
		revoked, err := IsTokenRevoked(client, hash)
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}
