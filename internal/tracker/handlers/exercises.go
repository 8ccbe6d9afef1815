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

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=handlers_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise repo.Exercise) (*repo.Exercise, error)
	Get(ctx context.Context, id int) (*repo.Exercise, error)
	List(ctx context.Context) ([]repo.Exercise, error)
	Update(ctx context.Context, id int, patch repo.ExercisePatch) (*repo.Exercise, error)
	Delete(ctx context.Context, id int) error
	Categories(ctx context.Context) ([]string, error)
	MuscleGroups(ctx context.Context) ([]string, error)
}

type CreateExerciseRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"required,max=50"`
	MuscleGroup *string `json:"muscle_group" validate:"omitempty,max=50"`
	Description *string `json:"description"`
}

func (CreateExerciseRequest) requiredFieldsMessage() string {
	return "Name and category are required"
}

type ExercisesHandler struct {
	repo           exercisesRepo
	metricsManager *metrics.Manager
}

func NewExercisesHandler(repo exercisesRepo, metricsManager *metrics.Manager) *ExercisesHandler {
	return &ExercisesHandler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *ExercisesHandler) SetupRoutes(api *mux.Router) {
	api.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	api.HandleFunc("/exercises", handler.HandleAdd).Methods("POST").Name("new-exercise")
	api.HandleFunc("/exercises/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	api.HandleFunc("/exercises/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT").Name("update-exercise")
	api.HandleFunc("/exercises/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE").Name("delete-exercise")
	api.HandleFunc("/categories", handler.HandleCategories).Methods("GET", "OPTIONS").Name("list-categories")
	api.HandleFunc("/muscle-groups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
}

func (handler *ExercisesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercises, err := handler.repo.List(ctx)
	if err != nil {
		writeError(w, err, "list exercises")
		return
	}

	span.SetAttributes(attribute.Int("count", len(exercises)))
	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *ExercisesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	id, ok := pathID(w, r, "exercise")
	if !ok {
		return
	}

	exercise, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "get exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *ExercisesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var req CreateExerciseRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, err, "new exercise")
		return
	}

	added, err := handler.repo.Add(ctx, repo.Exercise{
		Name:        req.Name,
		Category:    req.Category,
		MuscleGroup: req.MuscleGroup,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err, "add exercise")
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterExercisesCreated.Inc()
	}
	log.Debugf("new exercise added: %d [%s]", added.ID, added.Name)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *ExercisesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := pathID(w, r, "exercise")
	if !ok {
		return
	}

	var patch repo.ExercisePatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}

	updated, err := handler.repo.Update(ctx, id, patch)
	if err != nil {
		writeError(w, err, "update exercise")
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *ExercisesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, ok := pathID(w, r, "exercise")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeError(w, err, "delete exercise")
		return
	}

	log.Debugf("exercise %d deleted", id)
	writeDeleted(w, "Exercise deleted")
}

func (handler *ExercisesHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.categories")
	defer span.End()

	categories, err := handler.repo.Categories(ctx)
	if err != nil {
		writeError(w, err, "list categories")
		return
	}

	pkg.WriteJSON(w, categories, http.StatusOK)
}

func (handler *ExercisesHandler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.musclegroups")
	defer span.End()

	groups, err := handler.repo.MuscleGroups(ctx)
	if err != nil {
		writeError(w, err, "list muscle groups")
		return
	}

	pkg.WriteJSON(w, groups, http.StatusOK)
}
