package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// FieldError is one field-path/message pair from a validation pass.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validation builds an INVALID_INPUT error carrying every field error from the
// pass, not just the first one, so forms can render all of them at once.
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "The provided input is invalid",
		HTTPStatus: http.StatusBadRequest,
		Details:    fields,
	}
}
