// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for API responses)
// to ensure the client receives meaningful and consistent
// error messages.
//
//   - Return one error shape to API clients (JSON).
//   - Support field-level validation errors for the quote form.
//   - Provide errors that play nicely with Go's standard errors package.
package errs

import (
	"net/http"
)

// FieldError represents a field-level validation error (typical for forms).
// Example:
//
//	{ "field": "email", "error": "must be a valid email address" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the failure envelope returned by every endpoint.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON:
//
//	{ "statusCode": 400, "statusMessage": "Bad Request", "message": "Invalid quote ID format" }
//
// Fields:
//   - StatusCode: HTTP status code, also used for the response status line.
//   - StatusMessage: short status text (usually http.StatusText of StatusCode).
//   - Message: human-friendly message.
//   - Errors: list of per-field errors (validation only, omitted otherwise).
type HTTPError struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Message       string `json:"message"`

	// Errors holds field-level validation errors, typically for form inputs.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// It returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// This implementation returns true if `target` is also a *HTTPError.
// It does NOT compare StatusCode/Message, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// New builds an HTTPError for an arbitrary status.
//
// The status message defaults to http.StatusText(status). Unknown
// statuses (e.g. 0 from a misbehaving upstream) fall back to 500.
func New(status int, message string) *HTTPError {
	text := http.StatusText(status)
	if text == "" {
		status = http.StatusInternalServerError
		text = http.StatusText(status)
	}

	return &HTTPError{
		StatusCode:    status,
		StatusMessage: text,
		Message:       message,
	}
}
