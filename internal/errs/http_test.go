package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPErrorEnvelope(t *testing.T) {
	err := NewBadRequestError("Invalid quote ID format", nil)

	body, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("marshal failed: %v", marshalErr)
	}

	want := `{"statusCode":400,"statusMessage":"Bad Request","message":"Invalid quote ID format"}`
	if string(body) != want {
		t.Errorf("expected %s, got %s", want, body)
	}
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("fetching quote: %w", NewNotFoundError("Quote not found"))

	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("wrapped HTTPError should match errors.Is")
	}

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As should find the HTTPError")
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.StatusCode)
	}
}

func TestNewFallsBackOnUnknownStatus(t *testing.T) {
	err := New(0, "boom")
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.StatusCode)
	}
	if err.StatusMessage != "Internal Server Error" {
		t.Errorf("unexpected status message %q", err.StatusMessage)
	}
}

func TestNewUpstreamErrorCoercesSuccessStatus(t *testing.T) {
	err := NewUpstreamError(http.StatusOK, "weird")
	if err.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", err.StatusCode)
	}

	err = NewUpstreamError(http.StatusConflict, "duplicate")
	if err.StatusCode != http.StatusConflict {
		t.Errorf("expected 409, got %d", err.StatusCode)
	}
}
