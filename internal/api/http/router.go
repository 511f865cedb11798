package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)

	dashboard := app.Group("/dashboard")
	dashboard.Get("/stats", cfg.Dashboard.Stats)
	dashboard.Get("/tickets", cfg.Dashboard.Tickets)
	dashboard.Get("/tasks", cfg.Dashboard.Tasks)
}
