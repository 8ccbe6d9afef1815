package testing

import (
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

func newDockerPool(t testing.TB) *dockertest.Pool {
	t.Helper()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create new dockertest pool")
	require.NoError(t, pool.Client.Ping(), "could not ping docker")

	return pool
}

func runContainer(t testing.TB, pool *dockertest.Pool, opts *dockertest.RunOptions) *dockertest.Resource {
	t.Helper()

	resource, err := pool.RunWithOptions(opts, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "run %s container", opts.Repository)

	// hard limit, in case the test binary gets killed before cleanup runs
	_ = resource.Expire(300)

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("%s teardown: %s", opts.Repository, err)
		}
	})

	return resource
}
