// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package,
// calls the service layer and wraps results in the {data} envelope.
// Every API endpoint runs through handleRequest, which logs the
// start, the serialized response or the error of each request.
package handler

import (
	"github.com/yardsolutions/quotes-backend/internal/server"
	"github.com/yardsolutions/quotes-backend/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Quote   *QuoteHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Quote:   NewQuoteHandler(s, services.Quote),
	}
}
