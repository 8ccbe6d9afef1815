package handlers

import (
	"context"
	"net/http"

	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/tracker/repo"
	"github.com/2beens/workouttracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=handlers_test

type workoutsRepo interface {
	Add(ctx context.Context, workout repo.Workout) (*repo.Workout, error)
	Get(ctx context.Context, id int) (*repo.WorkoutWithExercises, error)
	List(ctx context.Context) ([]repo.Workout, error)
	Update(ctx context.Context, id int, patch repo.WorkoutPatch) (*repo.Workout, error)
	Delete(ctx context.Context, id int) error
}

type CreateWorkoutRequest struct {
	UserID          *int    `json:"user_id" validate:"required"`
	WorkoutDate     string  `json:"workout_date" validate:"required,datetime=2006-01-02"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=0"`
	Notes           *string `json:"notes"`
}

func (CreateWorkoutRequest) requiredFieldsMessage() string {
	return "User ID and workout date are required"
}

type WorkoutsHandler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewWorkoutsHandler(repo workoutsRepo, metricsManager *metrics.Manager) *WorkoutsHandler {
	return &WorkoutsHandler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *WorkoutsHandler) SetupRoutes(api *mux.Router) {
	api.HandleFunc("/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	api.HandleFunc("/workouts", handler.HandleAdd).Methods("POST").Name("new-workout")
	api.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	api.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT").Name("update-workout")
	api.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE").Name("delete-workout")
}

func (handler *WorkoutsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workouts, err := handler.repo.List(ctx)
	if err != nil {
		writeError(w, err, "list workouts")
		return
	}

	span.SetAttributes(attribute.Int("count", len(workouts)))
	pkg.WriteJSON(w, workouts, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, ok := pathID(w, r, "workout")
	if !ok {
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "get workout")
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var req CreateWorkoutRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, err, "new workout")
		return
	}

	workoutDate, err := repo.ParseDate(req.WorkoutDate)
	if err != nil {
		// already checked by the validator
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, repo.Workout{
		UserID:          *req.UserID,
		WorkoutDate:     workoutDate,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, err, "add workout")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsCreated.Inc()
	}
	log.Debugf("new workout added: %d, user %d, date %s", added.ID, added.UserID, added.WorkoutDate)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *WorkoutsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, ok := pathID(w, r, "workout")
	if !ok {
		return
	}

	var patch repo.WorkoutPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	updated, err := handler.repo.Update(ctx, id, patch)
	if err != nil {
		writeError(w, err, "update workout")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *WorkoutsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := pathID(w, r, "workout")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, err, "delete workout")
		return
	}

	log.Debugf("workout %d deleted", id)
	writeDeleted(w, "Workout deleted")
}
