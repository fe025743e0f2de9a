package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/teacher-dashboard/internal/config"
	"github.com/noah-isme/teacher-dashboard/internal/handler"
	"github.com/noah-isme/teacher-dashboard/internal/observability"
	"github.com/noah-isme/teacher-dashboard/internal/web"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Dashboard *web.Server
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	}, handler.HealthCheck(cfg))

	if cfg.MetricsEnabled {
		app.Get("/metrics", observability.MetricsHandler())
	}

	if deps.Dashboard != nil {
		deps.Dashboard.Register(app)
	}
}
