package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/redmonkez12/go-task-api/internal/apperr"
)

// Machine-readable codes that are not tied to a domain sentinel
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Response is the envelope every endpoint answers with. Callers branch on
// Success alone.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// internalErrorBody is written when a response cannot be encoded
var internalErrorBody = []byte(`{"success":false,"message":"Internal server error","code":"` + CodeInternalError + `"}` + "\n")

// RespondJSON sends a JSON response with the given status code. The body is
// encoded before the status is written, so an encoding failure is logged
// through the default slog logger and answered with a 500 envelope.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "status", statusCode, "error", err.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorBody)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Debug("failed to write JSON response", "error", err.Error())
	}
}

// RespondData sends a successful envelope wrapping data.
func RespondData(w http.ResponseWriter, data any, statusCode int) {
	RespondJSON(w, Response{Success: true, Data: data}, statusCode)
}

// RespondList sends a successful envelope with the item count.
func RespondList[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	RespondJSON(w, Response{Success: true, Count: &count, Data: items}, http.StatusOK)
}

// RespondMessage sends a successful envelope carrying only a message.
func RespondMessage(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, Response{Success: true, Message: message}, statusCode)
}

// RespondErrorWithCode sends an error envelope with a machine-readable code.
func RespondErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	RespondJSON(w, Response{Success: false, Message: message, Code: code}, statusCode)
}

// RespondAppError sends the error envelope for a classified error.
func RespondAppError(w http.ResponseWriter, err *apperr.Error) {
	resp := Response{Success: false, Message: err.Message, Code: err.Code}
	if err.Field != "" {
		resp.Error = err.Field + ": " + err.Message
	}
	RespondJSON(w, resp, StatusFromError(err))
}

// StatusFromError maps an error kind to an HTTP status. Unclassified errors
// are store or programming failures and map to 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrOperationNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
