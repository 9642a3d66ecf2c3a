package router

import (
	"github.com/labstack/echo/v4"
	"github.com/yardsolutions/quotes-backend/internal/handler"
)

// registerSystemRoutes registers health and documentation endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
