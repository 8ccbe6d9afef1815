package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_db_name = "workouts_dev"
auto_migrate = true

[production]
host = "0.0.0.0"
api_prefix = "v1/"
postgres_host = "db"
postgres_port = "6432"
postgres_db_name = "workouts"
redis_host = "redis"
redis_port = "6379"
write_rate_limit_per_min = 30
cors_allowed_origins = ['^https://workouts\.example\.com$']
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o600))
	return path
}

func TestLoad_Development(t *testing.T) {
	cfg, err := Load("dev", writeConfig(t))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/api", cfg.ApiPrefix)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "5432", cfg.PostgresPort)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, "disable", cfg.PostgresSSLMode)
	assert.True(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.RedisHost)
	assert.Equal(t, 120, cfg.WriteRateLimitPerMin)
	assert.Len(t, cfg.CorsAllowedOrigins, 2)
}

func TestLoad_Production(t *testing.T) {
	cfg, err := Load("PRODUCTION", writeConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "/v1", cfg.ApiPrefix)
	assert.Equal(t, "6432", cfg.PostgresPort)
	assert.Equal(t, "redis", cfg.RedisHost)
	assert.Equal(t, 30, cfg.WriteRateLimitPerMin)
	assert.Equal(t, []string{`^https://workouts\.example\.com$`}, cfg.CorsAllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	path := writeConfig(t)

	cfg, err := Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")
	assert.Nil(t, cfg)

	cfg, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestToml_Get_MissingTable(t *testing.T) {
	tml := &Toml{Development: &Config{}}

	cfg, err := tml.Get("development")
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	cfg, err = tml.Get("prod")
	assert.EqualError(t, err, "no config for env: prod")
	assert.Nil(t, cfg)
}
