// Package apperr defines the error kinds shared by the domain packages.
// Domain packages declare sentinel errors with these constructors and the
// HTTP layer maps the kind of an error to a status code.
package apperr

import "errors"

// Error kinds. Use errors.Is(err, apperr.ErrValidation) and friends to
// classify an error returned by a service.
var (
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrOperationNotAllowed = errors.New("operation not allowed")
)

// Error is a classified error carrying a client-facing message.
type Error struct {
	Kind    error
	Code    string
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the kind of e, so errors.Is works with both
// the sentinel itself and its kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Validation returns a validation error for a single field.
func Validation(field, message string) *Error {
	return &Error{Kind: ErrValidation, Code: "VALIDATION_ERROR", Field: field, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Code: "ALREADY_EXISTS", Message: message}
}

func Unauthenticated(code, message string) *Error {
	return &Error{Kind: ErrUnauthenticated, Code: code, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: ErrForbidden, Code: "FORBIDDEN", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Code: "NOT_FOUND", Message: message}
}

func OperationNotAllowed(message string) *Error {
	return &Error{Kind: ErrOperationNotAllowed, Code: "OPERATION_NOT_ALLOWED", Message: message}
}

// As extracts the classified error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
