package router // package router defines how HTTP routes are registered for the till server

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/adilbekov/icecream-parlor/internal/handler" // import the handlers that implement the till operations
)

// RegisterRoutes registers every route of the till server on the provided
// Echo instance.  There is no authentication layer: the server fronts a
// single till operated by one person, so all endpoints are open.
func RegisterRoutes(e *echo.Echo, t *handler.TillHandler) {
	// Health check for monitoring; returns plain "ok".
	e.GET("/healthz", handler.Health)

	// The menu is read-only for the whole run; clients may fetch it as
	// often as they like.
	e.GET("/v1/menu", t.GetMenu)

	// Shift lifecycle.  Opening while open returns the existing shift
	// rather than an error; closing without an open shift is a 409.
	g := e.Group("/v1/shifts")
	g.POST("/open", t.OpenShift)
	g.POST("/close", t.CloseShift)
	g.GET("/current", t.GetCurrentShift)

	// Orders are placed against the currently open shift and paid as a
	// side effect of placement.
	e.POST("/v1/orders", t.CreateOrder)

	// Daily summary across all shifts of the run, open or closed.
	e.GET("/v1/summary/day", t.GetDailySummary)
}
