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
)

//go:generate mockgen -source=$GOFILE -destination=workout_exercises_mocks_test.go -package=handlers_test

type workoutExercisesRepo interface {
	Add(ctx context.Context, entry repo.WorkoutExercise) (*repo.WorkoutExercise, error)
	Get(ctx context.Context, id int) (*repo.WorkoutExercise, error)
	Update(ctx context.Context, id int, patch repo.WorkoutExercisePatch) (*repo.WorkoutExercise, error)
	Delete(ctx context.Context, id int) error
}

type CreateWorkoutExerciseRequest struct {
	WorkoutID       *int     `json:"workout_id" validate:"required"`
	ExerciseID      *int     `json:"exercise_id" validate:"required"`
	Sets            *int     `json:"sets" validate:"omitempty,min=0"`
	Reps            *int     `json:"reps" validate:"omitempty,min=0"`
	WeightLbs       *float64 `json:"weight_lbs" validate:"omitempty,min=0"`
	DistanceMiles   *float64 `json:"distance_miles" validate:"omitempty,min=0"`
	DurationSeconds *int     `json:"duration_seconds" validate:"omitempty,min=0"`
}

func (CreateWorkoutExerciseRequest) requiredFieldsMessage() string {
	return "Workout ID and Exercise ID are required"
}

type WorkoutExercisesHandler struct {
	repo           workoutExercisesRepo
	metricsManager *metrics.Manager
}

func NewWorkoutExercisesHandler(repo workoutExercisesRepo, metricsManager *metrics.Manager) *WorkoutExercisesHandler {
	return &WorkoutExercisesHandler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *WorkoutExercisesHandler) SetupRoutes(api *mux.Router) {
	api.HandleFunc("/workout-exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout-exercise")
	api.HandleFunc("/workout-exercises/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout-exercise")
	api.HandleFunc("/workout-exercises/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT").Name("update-workout-exercise")
	api.HandleFunc("/workout-exercises/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE").Name("delete-workout-exercise")
}

func (handler *WorkoutExercisesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutexercises.new")
	defer span.End()

	var req CreateWorkoutExerciseRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, err, "new workout exercise")
		return
	}

	added, err := handler.repo.Add(ctx, repo.WorkoutExercise{
		WorkoutID:       *req.WorkoutID,
		ExerciseID:      *req.ExerciseID,
		Sets:            req.Sets,
		Reps:            req.Reps,
		WeightLbs:       req.WeightLbs,
		DistanceMiles:   req.DistanceMiles,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		writeError(w, err, "add workout exercise")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterLogEntriesCreated.Inc()
	}
	log.Debugf("new workout exercise logged: %d, workout %d, exercise %d", added.ID, added.WorkoutID, added.ExerciseID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *WorkoutExercisesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutexercises.get")
	defer span.End()

	id, ok := pathID(w, r, "workout exercise")
	if !ok {
		return
	}

	entry, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "get workout exercise")
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *WorkoutExercisesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutexercises.update")
	defer span.End()

	id, ok := pathID(w, r, "workout exercise")
	if !ok {
		return
	}

	var patch repo.WorkoutExercisePatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	updated, err := handler.repo.Update(ctx, id, patch)
	if err != nil {
		writeError(w, err, "update workout exercise")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *WorkoutExercisesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutexercises.delete")
	defer span.End()

	id, ok := pathID(w, r, "workout exercise")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, err, "delete workout exercise")
		return
	}

	writeDeleted(w, "Workout exercise deleted")
}
