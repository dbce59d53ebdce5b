// Package testutils holds helpers shared by backend tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-textquest/internal/redis"
)

// CreateTestRedisClientWithServer starts an in-memory Redis and returns a
// client for it along with the server, so tests can seed or corrupt raw keys
// behind the repository's back
func CreateTestRedisClientWithServer(t *testing.T, seed func(mr *miniredis.Miniredis)) (redis.Client, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if seed != nil {
		seed(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr, func() {
		_ = client.Close()
		mr.Close()
	}
}
