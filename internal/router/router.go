// Package router builds the echo router.
//
// It installs the middleware stack and maps the system routes and
// the /api route groups to their handlers
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/yardsolutions/quotes-backend/internal/handler"
	"github.com/yardsolutions/quotes-backend/internal/middleware"
	"github.com/yardsolutions/quotes-backend/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the context logger needs the request id and the
	// New Relic transaction, and the request logger needs the context logger.
	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	api := router.Group("/api", middlewares.RateLimit.Limit())
	registerQuoteRoutes(api, h, middlewares)

	return router
}
