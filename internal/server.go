package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/middleware"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/tracker/handlers"
	"github.com/2beens/workouttracker/internal/tracker/report"
	"github.com/2beens/workouttracker/internal/tracker/repo"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
	VersionInfo             string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		SSLMode:        params.Config.PostgresSSLMode,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.AutoMigrate {
		if err := db.MigrateUp(dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("ping postgres [%s]: %s", params.Config.PostgresHost, err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.NewRegistry(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("workouts", "main", promRegistry)

	rdb := newRedisClient(ctx, params.Config, params.RedisPassword)

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workout-tracker", rdb)
	if err != nil {
		dbPool.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("workouts-router"))

	api := r.PathPrefix(s.config.ApiPrefix).Subrouter()

	miscHandler := handlers.NewMiscHandler(s.dbPool, s.config.ApiPrefix, s.versionInfo)
	miscHandler.SetupRoutes(r, api)

	workoutsRepo := repo.NewWorkoutsRepo(s.dbPool)

	handlers.NewUsersHandler(repo.NewUsersRepo(s.dbPool)).SetupRoutes(api)
	handlers.NewExercisesHandler(repo.NewExercisesRepo(s.dbPool), s.metricsManager).SetupRoutes(api)
	handlers.NewWorkoutsHandler(workoutsRepo, s.metricsManager).SetupRoutes(api)
	handlers.NewWorkoutExercisesHandler(repo.NewWorkoutExercisesRepo(s.dbPool), s.metricsManager).SetupRoutes(api)
	handlers.NewReportHandler(report.NewReporter(workoutsRepo, s.metricsManager)).SetupRoutes(api)

	handlers.SetFallbacks(r, api)

	allowedOrigins, err := middleware.CompileOrigins(s.config.CorsAllowedOrigins)
	if err != nil {
		return nil, err
	}

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(allowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	if s.redisClient != nil {
		reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
		api.Use(middleware.RateLimit(reqRateLimiter, "api-writes", s.config.WriteRateLimitPerMin, s.metricsManager))
	}

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("router setup: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	s.metricsHttpServer = newMetricsServer(s.config, s.promRegistry)

	go func() {
		log.Infof(" > workout tracker listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("api server: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", s.metricsHttpServer.Addr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics server: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

// GracefulShutdown stops the listeners first, then closes redis and the db pool.
func (s *Server) GracefulShutdown() {
	log.Debug("shutting down workout tracker ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for name, srv := range map[string]*http.Server{
		"api":     s.httpServer,
		"metrics": s.metricsHttpServer,
	} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("shutdown %s server: %s", name, err)
			continue
		}
		log.Warnf("%s server stopped", name)
	}

	s.otelShutdown()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close() // waits for acquired conns to be released
		log.Debugln("db pool closed")
	}

	if !sentry.Flush(5 * time.Second) {
		log.Debugln("sentry flush timed out")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	}
}

// newRedisClient returns nil when no redis host is configured.
func newRedisClient(ctx context.Context, cfg *config.Config, password string) *redis.Client {
	if cfg.RedisHost == "" {
		log.Infoln("redis host not set, write rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorf("ping redis [%s]: %s", rdb.Options().Addr, err)
	}
	return rdb
}

func newMetricsServer(cfg *config.Config, reg *prometheus.Registry) *http.Server {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		reg,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	))
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.PrometheusMetricsHost, cfg.PrometheusMetricsPort),
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
