package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yardsolutions/quotes-backend/internal/errs"
	"github.com/yardsolutions/quotes-backend/internal/model"
	"github.com/yardsolutions/quotes-backend/internal/server"
	"github.com/yardsolutions/quotes-backend/internal/service"
)

// FilesField is the multipart field carrying uploaded images.
const FilesField = "files"

type QuoteHandler struct {
	Handler
	quoteService *service.QuoteService
}

func NewQuoteHandler(s *server.Server, quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		Handler:      NewHandler(s),
		quoteService: quoteService,
	}
}

func (h *QuoteHandler) CreateQuote(c echo.Context, payload *model.CreateQuotePayload) (*model.Quote, error) {
	return h.quoteService.CreateQuote(c.Request().Context(), payload)
}

func (h *QuoteHandler) GetQuote(c echo.Context, req *model.GetQuoteRequest) (*model.Quote, error) {
	return h.quoteService.GetQuote(c.Request().Context(), req.ID)
}

func (h *QuoteHandler) ListImages(c echo.Context, req *model.ListQuoteImagesRequest) ([]string, error) {
	return h.quoteService.ListImages(c.Request().Context(), req.ID)
}

func (h *QuoteHandler) UploadImages(c echo.Context, req *model.UploadQuoteImagesRequest) ([]model.UploadedImage, error) {
	files, cleanup, err := readImageUploads(c)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return h.quoteService.UploadImages(c.Request().Context(), req.ID, files)
}

func (h *QuoteHandler) ValidateOwnership(c echo.Context, req *model.ValidateQuoteOwnershipRequest) (bool, error) {
	return h.quoteService.ValidateOwnership(c.Request().Context(), req.ID, req.Email), nil
}

// readImageUploads collects the "files" parts of a multipart form. A request
// that is not multipart yields no files.
func readImageUploads(c echo.Context) ([]model.ImageUpload, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			return nil, noop, echoErr
		}
		return nil, noop, errs.NewBadRequestError("Invalid multipart form", nil)
	}

	headers := form.File[FilesField]
	uploads := make([]model.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, model.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Open:        opener(fh),
		})
	}

	return uploads, func() { _ = form.RemoveAll() }, nil
}

func opener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}
