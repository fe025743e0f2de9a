package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/teacher-dashboard/internal/config"
	"github.com/noah-isme/teacher-dashboard/internal/utils"
)

// HealthResponse is the payload of the liveness endpoint.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Backend     string    `json:"backend"`
}

// HealthCheck reports that the dashboard process is serving and which backend it talks to.
func HealthCheck(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     cfg.AppName,
			Environment: cfg.AppEnv,
			Backend:     cfg.BackendURL,
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
