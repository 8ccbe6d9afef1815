package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
)

const TestDBName = "workouts_test"

// StartPostgres runs a throwaway postgres container and returns its connection string
// and a ready pgx pool. Both are cleaned up with the test.
func StartPostgres(t testing.TB) (string, *pgxpool.Pool) {
	t.Helper()

	pool := newDockerPool(t)
	resource := runContainer(t, pool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + TestDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	})

	connString := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		resource.GetPort("5432/tcp"), TestDBName,
	)

	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err, "create connection pool")
	t.Cleanup(dbPool.Close)

	pool.MaxWait = time.Minute
	require.NoError(t, pool.Retry(func() error {
		return dbPool.Ping(ctx)
	}), "connect to postgres")

	return connString, dbPool
}
