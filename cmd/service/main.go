package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/workouttracker/internal"
	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("workout tracker starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	secrets := config.SecretsFromEnv()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "workout-tracker",
	})

	log.Warnf("---->> running in [%s] environment, api under [%s]", cfg.Environment, cfg.ApiPrefix)
	for _, w := range secrets.Warnings(cfg) {
		log.Warnln(w)
	}
	if secrets.HoneycombEnabled && secrets.OtelServiceName == "" {
		log.Debugln("OTEL_SERVICE_NAME env var not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		DBPassword:              secrets.DBPassword,
		RedisPassword:           secrets.RedisPassword,
		HoneycombTracingEnabled: secrets.HoneycombEnabled,
		VersionInfo:             versionInfo(),
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received ...")

	server.GracefulShutdown()
}

// versionInfo is the short commit hash when started from a git checkout.
func versionInfo() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		log.Tracef("no commit hash for version info: %s", err)
		return "dev"
	}
	return strings.TrimSpace(string(out))
}
