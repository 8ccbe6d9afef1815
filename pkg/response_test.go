package pkg

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenBodyWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenBodyWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteResponseBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResponseBytes(rr, ContentType.JSON, []byte(`{"id":4}`), http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"id":4}`, rr.Body.String())
}

func TestWriteResponseBytes_NoContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResponseBytes(rr, "", nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Type"))
}

func TestWriteResponseBytes_WriteFails(t *testing.T) {
	w := brokenBodyWriter{httptest.NewRecorder()}
	// only logged
	WriteResponseBytes(w, ContentType.JSON, []byte(`[]`), http.StatusOK)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, map[string]any{"workout_date": "2024-01-15", "exercises": []int{}}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"workout_date":"2024-01-15","exercises":[]}`, rr.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, math.NaN(), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, `exercise "Squat" not found`, http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ContentType.JSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"exercise \"Squat\" not found"}`, rr.Body.String())
}
