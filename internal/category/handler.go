package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

// Handler contains HTTP handlers for category endpoints
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// List returns every category, oldest first
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} httputil.Response{data=[]Category}
// @Failure      401 {object} httputil.Response
// @Router       /categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	categories, err := h.registry.List(r.Context())
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error fetching categories")
		return
	}

	httputil.RespondList(w, categories)
}

// Get returns one category
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      200 {object} httputil.Response{data=Category}
// @Failure      404 {object} httputil.Response
// @Router       /categories/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondAppError(w, ErrNotFound)
		return
	}

	c, err := h.registry.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error fetching category")
		return
	}

	httputil.RespondData(w, c, http.StatusOK)
}

// Create adds a user category
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Category"
// @Success      201 {object} httputil.Response{data=Category}
// @Failure      400 {object} httputil.Response "Missing fields or duplicate name / slug"
// @Router       /categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	c, err := h.registry.Create(r.Context(), req.Name, req.Slug)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error creating category")
		return
	}

	logger.Info("category created", "category_id", c.ID.String(), "slug", c.Slug)
	httputil.RespondData(w, c, http.StatusCreated)
}

// Update is always rejected
// @Summary      Update category (not allowed)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Failure      405 {object} httputil.Response
// @Router       /categories/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	err := h.registry.Update(r.Context(), chi.URLParam(r, "id"))
	httputil.RespondServiceError(w, logging.GetLoggerFromContext(r.Context()), err, "Error updating category")
}

// Delete is always rejected
// @Summary      Delete category (not allowed)
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Failure      405 {object} httputil.Response
// @Router       /categories/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.registry.Delete(r.Context(), chi.URLParam(r, "id"))
	httputil.RespondServiceError(w, logging.GetLoggerFromContext(r.Context()), err, "Error deleting category")
}
