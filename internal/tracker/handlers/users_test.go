package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/2beens/workouttracker/internal/tracker/handlers"
	"github.com/2beens/workouttracker/internal/tracker/repo"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockusersRepo(ctrl)
	r := newTestRouter(handlers.NewUsersHandler(repoMock))

	createdAt := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	john := repo.User{ID: 1, Username: "john_doe", Email: "john@example.com", CreatedAt: createdAt}

	repoMock.EXPECT().List(gomock.Any()).Return([]repo.User{john}, nil)
	repoMock.EXPECT().Get(gomock.Any(), 1).Return(&john, nil)
	repoMock.EXPECT().Get(gomock.Any(), 2).Return(nil, repo.NotFoundf("User not found"))

	rec := doRequest(t, r, "GET", "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"user_id":1,"username":"john_doe","email":"john@example.com","created_at":"2024-01-01T10:00:00Z"}]`, rec.Body.String())

	rec = doRequest(t, r, "GET", "/api/users/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"john_doe"`)

	rec = doRequest(t, r, "GET", "/api/users/2", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", errorMessage(t, rec))

	rec = doRequest(t, r, "POST", "/api/users", map[string]any{"username": "x"})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
