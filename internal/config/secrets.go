package config

import (
	"os"
)

const (
	envDBPassword       = "WORKOUTS_DB_PASSWORD"
	envRedisPassword    = "WORKOUTS_REDIS_PASS"
	envSentryDSN        = "SENTRY_DSN"
	envHoneycombEnabled = "HONEYCOMB_ENABLED"
	envHoneycombApiKey  = "HONEYCOMB_API_KEY"
	envOtelServiceName  = "OTEL_SERVICE_NAME"
)

// Secrets are never kept in the TOML file. Load must run first so a .env file is honored.
type Secrets struct {
	DBPassword       string
	RedisPassword    string
	SentryDSN        string
	HoneycombEnabled bool
	HoneycombApiKey  string
	OtelServiceName  string
}

func SecretsFromEnv() Secrets {
	return Secrets{
		DBPassword:       os.Getenv(envDBPassword),
		RedisPassword:    os.Getenv(envRedisPassword),
		SentryDSN:        os.Getenv(envSentryDSN),
		HoneycombEnabled: os.Getenv(envHoneycombEnabled) == "true",
		HoneycombApiKey:  os.Getenv(envHoneycombApiKey),
		OtelServiceName:  os.Getenv(envOtelServiceName),
	}
}

// Warnings lists missing secrets that the given config will need.
func (s Secrets) Warnings(cfg *Config) []string {
	var warnings []string
	if s.DBPassword == "" {
		warnings = append(warnings, "db password not set, use "+envDBPassword+" env var to set it")
	}
	if cfg.RedisHost != "" && s.RedisPassword == "" {
		warnings = append(warnings, "redis password not set, use "+envRedisPassword+" env var to set it")
	}
	if cfg.SentryEnabled && s.SentryDSN == "" {
		warnings = append(warnings, "sentry enabled but "+envSentryDSN+" env var not set")
	}
	if s.HoneycombEnabled && s.HoneycombApiKey == "" {
		warnings = append(warnings, envHoneycombApiKey+" env var not set")
	}
	return warnings
}
