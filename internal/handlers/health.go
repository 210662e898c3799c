package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Health is the unauthenticated liveness probe.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "fintrack-api",
	})
}
