package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yardsolutions/quotes-backend/internal/errs"
	"github.com/yardsolutions/quotes-backend/internal/lib/email"
	"github.com/yardsolutions/quotes-backend/internal/lib/storage"
	"github.com/yardsolutions/quotes-backend/internal/model"
	"github.com/yardsolutions/quotes-backend/internal/sqlerr"
)

// MaxListedImages bounds how many images are returned for a quote.
const MaxListedImages = 100

type QuoteStore interface {
	CreateQuote(ctx context.Context, payload *model.CreateQuotePayload) (*model.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (*model.Quote, error)
}

type ImageStore interface {
	List(ctx context.Context, dir string, limit int32) ([]storage.Object, error)
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(dir, name string) string
}

type QuoteNotifier interface {
	SendQuoteEmail(ctx context.Context, q email.QuoteEmail) error
}

type QuoteServiceDeps struct {
	Store    QuoteStore
	Images   ImageStore
	Notifier QuoteNotifier
	SiteHost string

	// NewName returns a unique object name (without extension) per upload.
	NewName func() string
}

type QuoteService struct {
	store    QuoteStore
	images   ImageStore
	notifier QuoteNotifier
	siteHost string
	newName  func() string
}

func NewQuoteService(deps QuoteServiceDeps) *QuoteService {
	return &QuoteService{
		store:    deps.Store,
		images:   deps.Images,
		notifier: deps.Notifier,
		siteHost: strings.TrimRight(deps.SiteHost, "/"),
		newName:  deps.NewName,
	}
}

// CreateQuote stores the quote, then makes one attempt at the confirmation email.
// An email failure is logged and does not fail the request.
func (s *QuoteService) CreateQuote(ctx context.Context, payload *model.CreateQuotePayload) (*model.Quote, error) {
	logger := zerolog.Ctx(ctx)

	quote, err := s.store.CreateQuote(ctx, payload)
	if err != nil {
		logger.Error().Err(err).Msg("failed to insert quote")
		return nil, sqlerr.HandleError(err)
	}

	logger.Info().
		Str("quote_id", quote.ID).
		Str("job_type", quote.JobType).
		Msg("quote created")

	if s.notifier != nil {
		if err := s.notifier.SendQuoteEmail(ctx, s.confirmationFor(quote)); err != nil {
			logger.Error().Err(err).Str("quote_id", quote.ID).Msg("failed to send quote email")
		}
	}

	return quote, nil
}

func (s *QuoteService) confirmationFor(quote *model.Quote) email.QuoteEmail {
	var phone string
	if quote.PhoneNumber != nil {
		phone = *quote.PhoneNumber
	}

	return email.QuoteEmail{
		ToEmail:          quote.Email,
		ToName:           quote.FullName(),
		JobType:          strings.ToLower(model.FormatJobType(quote.JobType)),
		URL:              s.QuoteURL(quote.ID),
		PreferredContact: phone,
	}
}

// QuoteURL is the public page of a quote on the website.
func (s *QuoteService) QuoteURL(id string) string {
	return s.siteHost + "/quotes/" + id
}

func (s *QuoteService) GetQuote(ctx context.Context, id string) (*model.Quote, error) {
	quote, err := s.store.GetQuoteByID(ctx, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if quote == nil {
		return nil, errs.NewNotFoundError("Quote not found")
	}
	return quote, nil
}

// ListImages returns the public URLs of a quote's images, ascending by name.
func (s *QuoteService) ListImages(ctx context.Context, id string) ([]string, error) {
	objects, err := s.images.List(ctx, id, MaxListedImages)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("quote_id", id).Msg("failed to list quote images")
		return nil, errs.NewUpstreamError(storage.StatusCode(err), storage.ErrorMessage(err))
	}

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		urls = append(urls, s.images.PublicURL(id, obj.Name))
	}

	return urls, nil
}

// UploadImages stores each image file under "<id>/" one at a time.
// Non-image files and failed uploads are skipped.
func (s *QuoteService) UploadImages(ctx context.Context, id string, files []model.ImageUpload) ([]model.UploadedImage, error) {
	if len(files) == 0 {
		return nil, errs.NewBadRequestError("No files provided", nil)
	}

	logger := zerolog.Ctx(ctx)
	uploaded := make([]model.UploadedImage, 0, len(files))

	for _, file := range files {
		if !file.IsImage() {
			logger.Debug().
				Str("filename", file.Filename).
				Str("content_type", file.ContentType).
				Msg("skipping non-image file")
			continue
		}

		name := s.newName() + "." + file.Extension()
		key := id + "/" + name

		if err := s.uploadOne(ctx, key, file); err != nil {
			logger.Error().
				Err(err).
				Str("filename", file.Filename).
				Str("key", key).
				Msg("failed to upload image")
			continue
		}

		uploaded = append(uploaded, model.UploadedImage{
			Path: key,
			URL:  s.images.PublicURL(id, name),
		})
	}

	if len(uploaded) == 0 {
		return nil, errs.NewBadRequestError("No valid images were uploaded", nil)
	}

	return uploaded, nil
}

func (s *QuoteService) uploadOne(ctx context.Context, key string, file model.ImageUpload) error {
	if file.Open == nil {
		return errors.New("file has no content")
	}

	body, err := file.Open()
	if err != nil {
		return err
	}
	defer body.Close()

	return s.images.Upload(ctx, key, body, file.Size, file.ContentType)
}

// ValidateOwnership reports whether submitted matches the quote's email, ignoring case.
// Lookup failures report false.
func (s *QuoteService) ValidateOwnership(ctx context.Context, id, submitted string) bool {
	quote, err := s.store.GetQuoteByID(ctx, id)
	if err != nil || quote == nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("quote_id", id).Msg("quote lookup failed during ownership check")
		return false
	}

	return strings.ToLower(quote.Email) == strings.ToLower(submitted)
}
