package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Health(c *fiber.Ctx) error
	}

	healthHandler struct{}
)

func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

func (h *healthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
