package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yardsolutions/quotes-backend/internal/handler"
	"github.com/yardsolutions/quotes-backend/internal/middleware"
	"github.com/yardsolutions/quotes-backend/internal/model"
)

func registerQuoteRoutes(api *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	quotes := api.Group("/quotes")

	quotes.POST("", handler.Handle(
		h.Quote.CreateQuote,
		http.StatusCreated,
		func() *model.CreateQuotePayload { return &model.CreateQuotePayload{} },
	))

	quotes.GET("/:id", handler.Handle(
		h.Quote.GetQuote,
		http.StatusOK,
		func() *model.GetQuoteRequest { return &model.GetQuoteRequest{} },
	))

	quotes.GET("/:id/images", handler.Handle(
		h.Quote.ListImages,
		http.StatusOK,
		func() *model.ListQuoteImagesRequest { return &model.ListQuoteImagesRequest{} },
	))

	quotes.POST("/:id/images", handler.Handle(
		h.Quote.UploadImages,
		http.StatusOK,
		func() *model.UploadQuoteImagesRequest { return &model.UploadQuoteImagesRequest{} },
	), m.Global.BodyLimit())

	quotes.POST("/:id/validate", handler.Handle(
		h.Quote.ValidateOwnership,
		http.StatusOK,
		func() *model.ValidateQuoteOwnershipRequest { return &model.ValidateQuoteOwnershipRequest{} },
	))
}
