package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/logging"

	log "github.com/sirupsen/logrus"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	if err := run(command, *env, *configPath); err != nil {
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprintf(os.Stderr, "%s, expected up | down | version\n", err)
			os.Exit(2)
		}
		log.Fatalf("migrate: %s", err)
	}
}

func run(command, env, configPath string) (err error) {
	switch command {
	case "up", "down", "version":
	default:
		return fmt.Errorf("%w [%s]", errUnknownCommand, command)
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	connString := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: config.SecretsFromEnv().DBPassword,
		SSLMode:    cfg.PostgresSSLMode,
	}.ConnString()

	migrator, err := db.NewMigrator(connString)
	if err != nil {
		return fmt.Errorf("new migrator: %w", err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			log.Errorf("close migrator: %s", closeErr)
		}
	}()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("migration version: %w", err)
	}
	log.Infof("schema version: %d, dirty: %t", version, dirty)

	return nil
}
