package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_UnknownCommand(t *testing.T) {
	err := run("sideways", "dev", "./config.toml")
	require.ErrorIs(t, err, errUnknownCommand)
	assert.Equal(t, "unknown command [sideways]", err.Error())
}

func TestRun_MissingConfig(t *testing.T) {
	for _, command := range []string{"up", "down", "version"} {
		err := run(command, "dev", filepath.Join(t.TempDir(), "missing.toml"))
		require.Error(t, err, command)
		assert.NotErrorIs(t, err, errUnknownCommand)
		assert.Contains(t, err.Error(), "load config")
	}
}
