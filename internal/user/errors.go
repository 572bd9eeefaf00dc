package user

import "github.com/redmonkez12/go-task-api/internal/apperr"

var (
	ErrNotFound       = apperr.NotFound("User not found")
	ErrDuplicateEmail = apperr.Conflict("User with this email already exists")

	ErrForbiddenUpdate = apperr.Forbidden("You can only update your own profile")
	ErrEmailImmutable  = apperr.Validation("email", "Email cannot be updated")
	ErrNameTooLong     = apperr.Validation("name", "Name must be at most 100 characters")
	ErrInvalidAge      = apperr.Validation("age", "Age must be between 0 and 120")
	ErrInvalidImageURL = apperr.Validation("profileImage", "Profile image must be an http or https URL")
	ErrImageTooLarge   = apperr.Validation("profileImage", "Profile image must be at most 1 MB")
	ErrImageType       = apperr.Validation("profileImage", "Profile image must be a JPEG, PNG, GIF or WebP image")
	ErrAmbiguousImage  = apperr.Validation("profileImage", "Provide either a profile image URL or a file, not both")
	ErrMalformedForm   = apperr.Validation("body", "Invalid multipart form")
)
