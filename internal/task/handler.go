package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

// Handler contains HTTP handlers for task endpoints
type Handler struct {
	guard *Guard
}

func NewHandler(guard *Guard) *Handler {
	return &Handler{guard: guard}
}

// DetailEnvelope documents a single task response
type DetailEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Detail `json:"data"`
}

// ListEnvelope documents the task list response
type ListEnvelope struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []Detail `json:"data"`
}

// List returns tasks, newest first
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        category query string false "Category ID"
// @Param        status   query string false "pending, in-progress or completed"
// @Param        priority query string false "low, medium or high"
// @Success      200 {object} ListEnvelope
// @Failure      400 {object} httputil.Response
// @Failure      401 {object} httputil.Response
// @Router       /tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	query := r.URL.Query()
	filter, err := ParseFilter(query.Get("category"), query.Get("status"), query.Get("priority"))
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error fetching tasks")
		return
	}

	tasks, err := h.guard.List(r.Context(), filter)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error fetching tasks")
		return
	}

	httputil.RespondList(w, tasks)
}

// Get returns one task
// @Summary      Get task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} DetailEnvelope
// @Failure      404 {object} httputil.Response
// @Router       /tasks/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		httputil.RespondAppError(w, ErrNotFound)
		return
	}

	t, err := h.guard.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error fetching task")
		return
	}

	httputil.RespondData(w, t, http.StatusOK)
}

// Create adds a task
// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body Input true "Task"
// @Success      201 {object} DetailEnvelope
// @Failure      400 {object} httputil.Response "Validation error or invalid category"
// @Router       /tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var in Input
	if err := httputil.DecodeJSON(w, r, &in); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	t, err := h.guard.Create(r.Context(), in)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error creating task")
		return
	}

	logger.Info("task created", "task_id", t.ID.String(), "category_id", t.CategoryID.String())
	httputil.RespondData(w, t, http.StatusCreated)
}

// Update changes the given fields of a task
// @Summary      Update task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Param        request body Input true "Fields to change"
// @Success      200 {object} DetailEnvelope
// @Failure      400 {object} httputil.Response
// @Failure      404 {object} httputil.Response
// @Router       /tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		httputil.RespondAppError(w, ErrNotFound)
		return
	}

	var in Input
	if err := httputil.DecodeJSON(w, r, &in); err != nil {
		httputil.RespondInvalidBody(w, logger, err)
		return
	}

	t, err := h.guard.Update(r.Context(), id, in)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error updating task")
		return
	}

	httputil.RespondData(w, t, http.StatusOK)
}

// Delete removes a task and returns it
// @Summary      Delete task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Task ID"
// @Success      200 {object} DetailEnvelope
// @Failure      404 {object} httputil.Response
// @Router       /tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		httputil.RespondAppError(w, ErrNotFound)
		return
	}

	t, err := h.guard.Delete(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, logger, err, "Error deleting task")
		return
	}

	logger.Info("task deleted", "task_id", t.ID.String())
	httputil.RespondJSON(w, httputil.Response{
		Success: true,
		Message: "Task deleted successfully",
		Data:    t,
	}, http.StatusOK)
}

func taskID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
