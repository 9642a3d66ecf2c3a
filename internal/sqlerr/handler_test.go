package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yardsolutions/quotes-backend/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestHandleErrorPgErrors(t *testing.T) {
	tests := []struct {
		name        string
		pgErr       *pgconn.PgError
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unique violation",
			pgErr:       &pgconn.PgError{Code: "23505", TableName: "quotes", ConstraintName: "quotes_email_key"},
			wantStatus:  http.StatusConflict,
			wantMessage: "A Quote with this Email already exists",
		},
		{
			name:        "not null violation",
			pgErr:       &pgconn.PgError{Code: "23502", TableName: "quotes", ColumnName: "given_name"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The Given Name is required",
		},
		{
			name:        "invalid date",
			pgErr:       &pgconn.PgError{Code: "22007", Message: `invalid input syntax for type date: "tomorrow"`},
			wantStatus:  http.StatusBadRequest,
			wantMessage: `invalid input syntax for type date: "tomorrow"`,
		},
		{
			name:        "permission denied",
			pgErr:       &pgconn.PgError{Code: "42501", TableName: "quotes"},
			wantStatus:  http.StatusForbidden,
			wantMessage: "An error occurred while processing your request",
		},
		{
			name:        "unknown",
			pgErr:       &pgconn.PgError{Code: "XX000", Message: "internal detail"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert quote: %w", tt.pgErr)))

			if httpErr.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, httpErr.StatusCode)
			}
			if httpErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, httpErr.Message)
			}
		})
	}
}

func TestHandleErrorNotNullFieldErrors(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", ColumnName: "Email"})
	httpErr := asHTTPError(t, err)

	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "email" {
		t.Errorf("expected one field error for email, got %+v", httpErr.Errors)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(TableNotFound("quotes", pgx.ErrNoRows)))
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.StatusCode)
	}
	if httpErr.Message != "Quote not found" {
		t.Errorf("expected 'Quote not found', got %q", httpErr.Message)
	}

	httpErr = asHTTPError(t, HandleError(pgx.ErrNoRows))
	if httpErr.Message != "Resource not found" {
		t.Errorf("expected generic not found, got %q", httpErr.Message)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewBadRequestError("nope", nil)
	if got := HandleError(original); got != original {
		t.Errorf("expected the same error back, got %v", got)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.StatusCode)
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23514", Severity: "ERROR"})
	if ErrCode(fmt.Errorf("wrap: %w", converted)) != CheckViolation {
		t.Error("expected check violation")
	}
	if ErrCode(errors.New("plain")) != Other {
		t.Error("expected other for non sql errors")
	}
}
