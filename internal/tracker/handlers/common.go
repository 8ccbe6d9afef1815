package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/2beens/workouttracker/internal/tracker/repo"
	"github.com/2beens/workouttracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// DeleteResponse is returned by every successful delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const internalErrorMsg = "internal server error"

// writeError maps repository errors to status codes. Unexpected errors are logged
// and answered with a generic message.
func writeError(w http.ResponseWriter, err error, action string) {
	var repoErr *repo.Error
	switch {
	case errors.Is(err, repo.ErrNotFound) && errors.As(err, &repoErr):
		log.Debugf("%s: %s", action, err)
		pkg.WriteJSONError(w, repoErr.Msg, http.StatusNotFound)
	case (errors.Is(err, repo.ErrValidation) || errors.Is(err, repo.ErrConflict)) && errors.As(err, &repoErr):
		log.Debugf("%s: %s", action, err)
		pkg.WriteJSONError(w, repoErr.Msg, http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, internalErrorMsg, http.StatusInternalServerError)
	}
}

// pathID reads the {id} route variable. Ids outside the int4 range of the store cannot exist.
func pathID(w http.ResponseWriter, r *http.Request, entity string) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		pkg.WriteJSONError(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(idStr, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		pkg.WriteJSONError(w, fmt.Sprintf("%s %s not found", entity, idStr), http.StatusNotFound)
		return 0, false
	}
	if err != nil || id < 1 {
		pkg.WriteJSONError(w, "error, invalid id", http.StatusBadRequest)
		return 0, false
	}
	return int(id), true
}

// NotFound and MethodNotAllowed answer unmatched requests with JSON bodies.
// Set them on every router and subrouter, mux does not hand them down.
var (
	NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("not found: [%s] %s", r.Method, r.URL.Path)
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
	})
	MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("method not allowed: [%s] %s", r.Method, r.URL.Path)
		pkg.WriteJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})
)

// SetFallbacks installs the JSON NotFound and MethodNotAllowed handlers on the given routers.
func SetFallbacks(routers ...*mux.Router) {
	for _, router := range routers {
		router.NotFoundHandler = NotFound
		router.MethodNotAllowedHandler = MethodNotAllowed
	}
}

// decodeJSONBody checks the content type and decodes the body into dst.
// Unknown fields are ignored.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		pkg.WriteJSONError(w, "invalid content type, expected application/json", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("decode json body: %s", err)
		pkg.WriteJSONError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeDeleted(w http.ResponseWriter, message string) {
	pkg.WriteJSON(w, DeleteResponse{Success: true, Message: message}, http.StatusOK)
}
