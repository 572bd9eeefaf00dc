package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

// PrincipalFunc returns the authenticated principal of a request context
type PrincipalFunc func(ctx context.Context) (*User, bool)

// Handler contains HTTP handlers for profile endpoints
type Handler struct {
	service   *Service
	principal PrincipalFunc
}

func NewHandler(service *Service, principal PrincipalFunc) *Handler {
	return &Handler{
		service:   service,
		principal: principal,
	}
}

// ProfileEnvelope documents the profile response
type ProfileEnvelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    Response `json:"data"`
}

// Me returns the authenticated principal
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileEnvelope
// @Failure      401 {object} httputil.Response
// @Router       /users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	principal, ok := h.principal(r.Context())
	if !ok {
		logger.Error("profile requested without principal in context")
		httputil.RespondErrorWithCode(w, "Not authorized", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	httputil.RespondData(w, h.service.Present(r.Context(), principal), http.StatusOK)
}

// GetByID returns a user's profile
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} ProfileEnvelope
// @Failure      401 {object} httputil.Response
// @Failure      404 {object} httputil.Response
// @Router       /users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondServiceError(w, logger, ErrNotFound, "failed to get user")
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "failed to get user")
		return
	}

	httputil.RespondData(w, h.service.Present(r.Context(), u), http.StatusOK)
}

// Update changes the caller's own profile
// @Summary      Update user
// @Description  Accepts JSON or multipart/form-data with an optional profileImage file. The email cannot be changed.
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body UpdateProfileInput false "Profile fields"
// @Success      200 {object} ProfileEnvelope
// @Failure      400 {object} httputil.Response
// @Failure      401 {object} httputil.Response
// @Failure      403 {object} httputil.Response
// @Failure      404 {object} httputil.Response
// @Router       /users/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	principal, ok := h.principal(r.Context())
	if !ok {
		logger.Error("profile update without principal in context")
		httputil.RespondErrorWithCode(w, "Not authorized", "UNAUTHORIZED", http.StatusUnauthorized)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondServiceError(w, logger, ErrNotFound, "failed to update profile")
		return
	}

	var in UpdateProfileInput
	if IsMultipart(r) {
		values, image, err := ReadMultipart(w, r)
		if err != nil {
			httputil.RespondServiceError(w, logger, err, "failed to update profile")
			return
		}
		if in, err = ProfileInputFromForm(values, image); err != nil {
			httputil.RespondServiceError(w, logger, err, "failed to update profile")
			return
		}
	} else if err := httputil.DecodeJSON(w, r, &in); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	logger = logger.WithFields(map[string]any{"user_id": targetID.String()})

	updated, err := h.service.UpdateProfile(r.Context(), principal.ID, targetID, in)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "failed to update profile")
		return
	}

	logger.Info("profile updated")
	httputil.RespondJSON(w, httputil.Response{
		Success: true,
		Message: "Profile updated successfully",
		Data:    h.service.Present(r.Context(), updated),
	}, http.StatusOK)
}
