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

	ErrTooManyRequests = New(
		CodeRateLimited,
		"Too many requests, please slow down",
		http.StatusTooManyRequests,
	)
)

// RequiredField builds a validation error for a single missing field.
func RequiredField(field string) *AppError {
	return Validation(map[string]string{field: field + " is required"})
}

// InvalidField builds a validation error for a single malformed field.
func InvalidField(field string) *AppError {
	return Validation(map[string]string{field: field + " is invalid"})
}

// Validation returns an INVALID_INPUT error carrying a per-field message map.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    "The provided input is invalid",
		HTTPStatus: http.StatusBadRequest,
		Details:    fields,
	}
}

// Dependency wraps a failure of an external collaborator (mail transport, broker).
func Dependency(err error, message string) *AppError {
	return Wrap(err, CodeDependencyFailure, message, http.StatusBadGateway)
}
