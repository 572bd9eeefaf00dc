package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/redmonkez12/go-task-api/internal/category"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	statuses   = map[string]bool{StatusPending: true, StatusInProgress: true, StatusCompleted: true}
	priorities = map[string]bool{PriorityLow: true, PriorityMedium: true, PriorityHigh: true}
)

// Task is a stored task. It references its category by id only.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      string
	Priority    string
	CategoryID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Detail is a task with its category resolved to the full record
type Detail struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	CategoryID  uuid.UUID          `json:"categoryId"`
	Category    *category.Category `json:"category"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// Input carries the fields of a create or update request. Nil fields are
// defaulted on create and left untouched on update.
type Input struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
}

// Changes is the validated form of an update
type Changes struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	CategoryID  *uuid.UUID
}

// Filter narrows a task listing. Zero fields match everything.
type Filter struct {
	CategoryID *uuid.UUID
	Status     string
	Priority   string
}

func newDetail(t *Task, c *category.Category) *Detail {
	return &Detail{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CategoryID:  t.CategoryID,
		Category:    c,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
