package auth

import "github.com/redmonkez12/go-task-api/internal/apperr"

// Gate failures. Malformed and expired tokens share ErrTokenRejected.
var (
	ErrTokenMissing      = apperr.Unauthenticated("TOKEN_MISSING", "Not authorized, token missing")
	ErrTokenRejected     = apperr.Unauthenticated("TOKEN_INVALID", "Not authorized, token invalid")
	ErrPrincipalNotFound = apperr.Unauthenticated("USER_NOT_FOUND", "Not authorized, user not found")
)

var (
	ErrInvalidCredentials  = apperr.Unauthenticated("INVALID_CREDENTIALS", "Invalid email or password")
	ErrCredentialsRequired = apperr.Validation("", "Email and password are required")
	ErrResetFieldsRequired = apperr.Validation("", "Email and new password are required")
	ErrInvalidEmailFormat  = apperr.Validation("email", "Invalid email format")
	ErrPasswordTooShort    = apperr.Validation("password", "Password must be at least 6 characters")
)
