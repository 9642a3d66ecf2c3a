package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// errors is an optional slice of field errors (validation errors).
// This is designed for form validation and "you sent garbage" cases.
func NewBadRequestError(message string, errors []FieldError) *HTTPError {
	err := New(http.StatusBadRequest, message)
	err.Errors = errors

	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}

// NewUpstreamError creates an HTTPError carrying the status reported by an
// external service (data store, object store).
//
// Statuses below 400 make no sense for a failure and are coerced to 502.
func NewUpstreamError(status int, message string) *HTTPError {
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}

	return New(status, message)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error message:
// clients don't need stack traces.
func NewInternalServerError() *HTTPError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
