package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/logging"
	"github.com/2beens/workouttracker/internal/tracker/repo"
	"github.com/2beens/workouttracker/internal/tracker/seed"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

type options struct {
	env        string
	configPath string
	reset      bool
	random     int
	randomSeed int64
}

func main() {
	var opts options
	flag.StringVar(&opts.env, "env", "development", "environment [prod | production | dev | development]")
	flag.StringVar(&opts.configPath, "config", "./config.toml", "path for the TOML config file")
	flag.BoolVar(&opts.reset, "reset", false, "remove all existing data before seeding")
	flag.IntVar(&opts.random, "random", 0, "number of extra randomly generated workouts")
	flag.Int64Var(&opts.randomSeed, "random-seed", 0, "seed for the random workouts (0 picks one)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Fatalf("seed: %s", err)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.random < 0 {
		return fmt.Errorf("random workouts count must not be negative, got %d", opts.random)
	}

	cfg, err := config.Load(opts.env, opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	dbParams := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: config.SecretsFromEnv().DBPassword,
		SSLMode:    cfg.PostgresSSLMode,
	}
	if err := db.MigrateUp(dbParams.ConnString()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	hasData, err := seed.HasData(ctx, dbPool)
	if err != nil {
		return err
	}
	if hasData {
		if !opts.reset {
			log.Warnln("database already contains data, run with -reset to clear it and seed again")
			return nil
		}
		log.Infoln("clearing existing data ...")
		if err := seed.Reset(ctx, dbPool); err != nil {
			return err
		}
	}

	seeder := seed.NewSeeder(
		repo.NewUsersRepo(dbPool),
		repo.NewExercisesRepo(dbPool),
		repo.NewWorkoutsRepo(dbPool),
		repo.NewWorkoutExercisesRepo(dbPool),
		time.Now(),
	)

	res, err := seeder.SeedSample(ctx)
	if err != nil {
		return fmt.Errorf("sample data: %w", err)
	}
	log.Infof("sample data seeded, %s", res.Counts)

	if opts.random > 0 {
		counts, err := seeder.SeedRandom(ctx, gofakeit.New(opts.randomSeed), opts.random, res.UserIDs, res.Catalog)
		if err != nil {
			return fmt.Errorf("random workouts: %w", err)
		}
		log.Infof("random data seeded, %s", counts)
	}

	return nil
}
