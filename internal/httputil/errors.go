package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/redmonkez12/go-task-api/internal/apperr"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

const maxJSONBodyBytes = 1 << 20

// RespondServiceError writes the envelope for an error returned by a service.
// Classified errors are client errors and are logged as warnings; anything
// else is answered with a generic 500 so store details never leak.
func RespondServiceError(w http.ResponseWriter, logger *logging.Logger, err error, fallbackMessage string) {
	if appErr, ok := apperr.As(err); ok {
		logger.Warn(fallbackMessage, "error", err.Error(), "code", appErr.Code)
		RespondAppError(w, appErr)
		return
	}

	logger.Error(fallbackMessage, "error", err.Error())
	RespondErrorWithCode(w, fallbackMessage, CodeInternalError, http.StatusInternalServerError)
}

// DecodeJSON decodes a size-limited JSON request body into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondInvalidBody writes the standard response for an undecodable body.
func RespondInvalidBody(w http.ResponseWriter, logger *logging.Logger, err error) {
	logger.Warn("invalid request body", "error", err.Error())
	RespondErrorWithCode(w, "invalid request body", CodeInvalidRequestBody, http.StatusBadRequest)
}
