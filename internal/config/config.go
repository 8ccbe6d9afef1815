package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DefaultApiPrefix = "/api"

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	ApiPrefix   string `toml:"api_prefix"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	PostgresUser    string `toml:"postgres_user"`
	PostgresSSLMode string `toml:"postgres_ssl_mode"`
	AutoMigrate     bool   `toml:"auto_migrate"`

	// redis, used only for rate limiting writes; empty host disables it
	RedisHost            string `toml:"redis_host"`
	RedisPort            string `toml:"redis_port"`
	WriteRateLimitPerMin int    `toml:"write_rate_limit_per_min"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// regular expressions matched against the Origin header
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML config file and picks the table for the given env.
// Variables from an optional .env file next to the working dir are loaded into the process env,
// so secrets can be read with os.Getenv afterwards.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
		log.Debugln("no .env file found, using process env only")
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ApiPrefix == "" {
		c.ApiPrefix = DefaultApiPrefix
	}
	c.ApiPrefix = "/" + strings.Trim(c.ApiPrefix, "/")
	if c.Port == 0 {
		c.Port = 5000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PostgresSSLMode == "" {
		c.PostgresSSLMode = "disable"
	}
	if c.WriteRateLimitPerMin == 0 {
		c.WriteRateLimitPerMin = 120
	}
	if len(c.CorsAllowedOrigins) == 0 {
		c.CorsAllowedOrigins = []string{
			`^http://localhost:\d+$`,
			`^https://.*\.vercel\.app$`,
		}
	}
}
