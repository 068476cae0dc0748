package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// BackendChecker is called by the readiness probe.
type BackendChecker interface {
	FetchStats(ctx context.Context) (*domain.Stats, error)
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	backend     BackendChecker
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, backend BackendChecker) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, backend: backend}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness by asking the ticket backend for its stats.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	if _, err := h.backend.FetchStats(ctx); err != nil {
		depStatus["ticket_api"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "one or more dependencies unavailable",
				"details": depStatus,
			},
		})
	}
	depStatus["ticket_api"] = "ok"

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": depStatus,
	})
}
