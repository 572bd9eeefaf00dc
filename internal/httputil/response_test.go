package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-task-api/internal/apperr"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("title", "Title is required"), http.StatusBadRequest},
		{"conflict", apperr.Conflict("already exists"), http.StatusBadRequest},
		{"unauthenticated", apperr.Unauthenticated("X", "nope"), http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("not yours"), http.StatusForbidden},
		{"not found", apperr.NotFound("Task not found"), http.StatusNotFound},
		{"not allowed", apperr.OperationNotAllowed("no"), http.StatusMethodNotAllowed},
		{"wrapped", fmt.Errorf("outer: %w", apperr.NotFound("gone")), http.StatusNotFound},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestRespondServiceError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondServiceError(rr, logging.Nop(), errors.New("pq: password authentication failed"), "Error fetching tasks")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Error fetching tasks", body.Message)
	assert.NotContains(t, rr.Body.String(), "password authentication")
}

func TestRespondServiceError_FieldError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondServiceError(rr, logging.Nop(), apperr.Validation("title", "Title is required"), "Error creating task")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Title is required", body.Message)
	assert.Equal(t, "title: Title is required", body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestRespondList_EmptySliceHasZeroCount(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondList[string](rr, nil)

	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rr.Body.String())
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := httptest.NewRecorder()
	RespondData(rec, make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, CodeInternalError, resp.Code)

	assert.Contains(t, logs.String(), "failed to encode JSON response")
	assert.Contains(t, logs.String(), "level=ERROR")
}
