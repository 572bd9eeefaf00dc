package category

import "github.com/redmonkez12/go-task-api/internal/apperr"

var (
	ErrNotFound         = apperr.NotFound("Category not found")
	ErrDuplicate        = apperr.Conflict("Category with this name or slug already exists")
	ErrNameSlugRequired = apperr.Validation("", "Name and slug are required")
	ErrNameTooLong      = apperr.Validation("name", "Category name cannot exceed 100 characters")
	ErrSlugTooLong      = apperr.Validation("slug", "Category slug cannot exceed 100 characters")

	ErrUpdateNotAllowed = apperr.OperationNotAllowed("Updating categories is not allowed")
	ErrDeleteNotAllowed = apperr.OperationNotAllowed("Deleting categories is not allowed")
)
