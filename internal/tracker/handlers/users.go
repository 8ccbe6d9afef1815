package handlers

import (
	"context"
	"net/http"

	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/tracker/repo"
	"github.com/2beens/workouttracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=handlers_test

type usersRepo interface {
	Get(ctx context.Context, id int) (*repo.User, error)
	List(ctx context.Context) ([]repo.User, error)
}

// UsersHandler exposes users read-only.
type UsersHandler struct {
	repo usersRepo
}

func NewUsersHandler(repo usersRepo) *UsersHandler {
	return &UsersHandler{
		repo: repo,
	}
}

func (handler *UsersHandler) SetupRoutes(api *mux.Router) {
	api.HandleFunc("/users", handler.HandleList).Methods("GET", "OPTIONS").Name("list-users")
	api.HandleFunc("/users/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-user")
}

func (handler *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.list")
	defer span.End()

	users, err := handler.repo.List(ctx)
	if err != nil {
		writeError(w, err, "list users")
		return
	}

	pkg.WriteJSON(w, users, http.StatusOK)
}

func (handler *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id, ok := pathID(w, r, "user")
	if !ok {
		return
	}

	user, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeError(w, err, "get user")
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}
