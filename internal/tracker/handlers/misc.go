package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=misc_mocks_test.go -package=handlers_test

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type MiscHandler struct {
	db        dbPinger
	apiPrefix string
	version   string
}

func NewMiscHandler(db dbPinger, apiPrefix, version string) *MiscHandler {
	return &MiscHandler{
		db:        db,
		apiPrefix: apiPrefix,
		version:   version,
	}
}

// SetupRoutes registers the index on root and the health check under the api prefix.
func (handler *MiscHandler) SetupRoutes(root, api *mux.Router) {
	root.HandleFunc("/", handler.HandleIndex).Methods("GET", "OPTIONS").Name("index")
	api.HandleFunc("/health", handler.HandleHealth).Methods("GET", "OPTIONS").Name("health")
}

func (handler *MiscHandler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, IndexResponse{
		Message: "Workout Tracker API",
		Version: handler.version,
		Endpoints: map[string]string{
			"exercises":         handler.apiPrefix + "/exercises",
			"workouts":          handler.apiPrefix + "/workouts",
			"workout_exercises": handler.apiPrefix + "/workout-exercises",
			"users":             handler.apiPrefix + "/users",
			"reports":           handler.apiPrefix + "/reports/summary",
			"categories":        handler.apiPrefix + "/categories",
			"muscle_groups":     handler.apiPrefix + "/muscle-groups",
			"health":            handler.apiPrefix + "/health",
		},
	}, http.StatusOK)
}

// HandleHealth always answers 200, the database state is reported in the body.
func (handler *MiscHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	if err := handler.db.Ping(ctx); err != nil {
		log.Warnf("health check, db ping: %s", err)
		resp.Database = "disconnected"
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}
