package testing

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

// GetRedisClient connects to a redis instance for the test.
// REDIS_HOST / REDIS_PASS point it to an existing instance, otherwise a container is started.
func GetRedisClient(t testing.TB) *redis.Client {
	t.Helper()

	ctx := context.Background()
	opts := &redis.Options{
		Password: os.Getenv("REDIS_PASS"),
		DB:       0, // use default DB
	}

	var pool *dockertest.Pool
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		opts.Addr = net.JoinHostPort(redisHost, "6379")
	} else {
		pool = newDockerPool(t)
		resource := runContainer(t, pool, &dockertest.RunOptions{
			Repository: "redis",
			Tag:        "7",
		})
		opts.Addr = net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))
	}
	t.Logf("using redis at: [%s]", opts.Addr)

	rdb := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	ping := func() error {
		return rdb.Ping(ctx).Err()
	}
	if pool != nil {
		require.NoError(t, pool.Retry(ping))
	} else {
		require.NoError(t, ping())
	}

	return rdb
}
