package task

import "github.com/redmonkez12/go-task-api/internal/apperr"

var (
	ErrNotFound = apperr.NotFound("Task not found")

	ErrTitleRequired      = apperr.Validation("title", "Please add a title")
	ErrTitleTooLong       = apperr.Validation("title", "Title cannot be more than 200 characters")
	ErrDescriptionTooLong = apperr.Validation("description", "Description cannot be more than 1000 characters")
	ErrInvalidStatus      = apperr.Validation("status", "Status must be one of pending, in-progress, completed")
	ErrInvalidPriority    = apperr.Validation("priority", "Priority must be one of low, medium, high")
	ErrCategoryRequired   = apperr.Validation("category", "Please select a category")
	ErrInvalidCategory    = apperr.Validation("category", "Invalid category")
)
