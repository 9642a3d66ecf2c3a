package model

import (
	"io"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/yardsolutions/quotes-backend/internal/errs"
	"github.com/yardsolutions/quotes-backend/internal/validation"
)

// Quote is a stored quote request.
//
// Optional text columns are nullable, so they are pointers. PreferredJobDate
// is read back as text (YYYY-MM-DD) to keep the wire format stable.
type Quote struct {
	ID               string    `json:"id" db:"id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	AddressLine1     *string   `json:"address_line1" db:"address_line1"`
	AddressLine2     *string   `json:"address_line2" db:"address_line2"`
	City             *string   `json:"city" db:"city"`
	State            *string   `json:"state" db:"state"`
	PostalCode       *string   `json:"postal_code" db:"postal_code"`
	GivenName        string    `json:"given_name" db:"given_name"`
	FamilyName       string    `json:"family_name" db:"family_name"`
	Email            string    `json:"email" db:"email"`
	PhoneNumber      *string   `json:"phone_number" db:"phone_number"`
	JobType          string    `json:"job_type" db:"job_type"`
	PreferredJobDate *string   `json:"preferred_job_date" db:"preferred_job_date"`
	Description      *string   `json:"description" db:"description"`
}

// FullName is "<given> <family>", the display name used for email recipients.
func (q *Quote) FullName() string {
	return strings.TrimSpace(q.GivenName + " " + q.FamilyName)
}

// CreateQuotePayload is the body of POST /api/quotes.
//
// Only these fields are ever written; anything else in the body is ignored.
type CreateQuotePayload struct {
	AddressLine1     *string `json:"address_line1" validate:"omitempty,max=255"`
	AddressLine2     *string `json:"address_line2" validate:"omitempty,max=255"`
	City             *string `json:"city" validate:"omitempty,max=100"`
	State            *string `json:"state" validate:"omitempty,max=100"`
	PostalCode       *string `json:"postal_code" validate:"omitempty,max=20"`
	GivenName        string  `json:"given_name" validate:"required,max=100"`
	FamilyName       string  `json:"family_name" validate:"required,max=100"`
	Email            string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber      *string `json:"phone_number" validate:"omitempty,max=30"`
	JobType          string  `json:"job_type" validate:"required,max=50"`
	PreferredJobDate *string `json:"preferred_job_date" validate:"omitempty,datetime=2006-01-02"`
	Description      *string `json:"description" validate:"omitempty,max=5000"`
}

func (p *CreateQuotePayload) BindBody(c echo.Context) error {
	return validation.ReadLenientJSON(c, p)
}

func (p *CreateQuotePayload) Validate() error {
	p.GivenName = strings.TrimSpace(p.GivenName)
	p.FamilyName = strings.TrimSpace(p.FamilyName)
	p.Email = strings.TrimSpace(p.Email)
	p.JobType = strings.TrimSpace(p.JobType)
	if p.PreferredJobDate != nil && strings.TrimSpace(*p.PreferredJobDate) == "" {
		p.PreferredJobDate = nil
	}

	return validation.Struct(p)
}

// QuoteIDParam carries the :id path parameter shared by the per-quote routes.
type QuoteIDParam struct {
	ID string `param:"id"`
}

// ValidatePath rejects a missing or non-canonical quote id before the body
// is read or any external call is made.
func (p *QuoteIDParam) ValidatePath() error {
	if p.ID == "" {
		return errs.NewBadRequestError("Quote ID is required", nil)
	}
	if !validation.IsValidUUID(p.ID) {
		return errs.NewBadRequestError("Invalid quote ID format", nil)
	}
	return nil
}

func (p *QuoteIDParam) Validate() error {
	return p.ValidatePath()
}

// GetQuoteRequest is GET /api/quotes/:id.
type GetQuoteRequest struct {
	QuoteIDParam
}

// ListQuoteImagesRequest is GET /api/quotes/:id/images.
type ListQuoteImagesRequest struct {
	QuoteIDParam
}

// UploadQuoteImagesRequest is POST /api/quotes/:id/images.
//
// The multipart files are read by the handler, not bound here.
type UploadQuoteImagesRequest struct {
	QuoteIDParam
}

// ValidateQuoteOwnershipRequest is POST /api/quotes/:id/validate.
type ValidateQuoteOwnershipRequest struct {
	QuoteIDParam
	Email string `json:"email"`
}

func (r *ValidateQuoteOwnershipRequest) BindBody(c echo.Context) error {
	return validation.ReadLenientJSON(c, r)
}

func (r *ValidateQuoteOwnershipRequest) Validate() error {
	if err := r.QuoteIDParam.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Email) == "" {
		return errs.NewBadRequestError("Validation failed", []errs.FieldError{
			{Field: "email", Error: "is required"},
		})
	}
	return nil
}

// ImageUpload is one file from a multipart upload.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// IsImage reports whether the declared MIME type is an image type.
func (u ImageUpload) IsImage() bool {
	return strings.HasPrefix(u.ContentType, "image/")
}

// Extension is the MIME subtype, "image/png" -> "png".
func (u ImageUpload) Extension() string {
	ct, _, _ := strings.Cut(u.ContentType, ";")
	return strings.TrimSpace(ct[strings.LastIndex(ct, "/")+1:])
}

// UploadedImage describes an image stored for a quote.
type UploadedImage struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
