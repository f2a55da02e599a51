package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tixora/internal/utils"
)

// Health reports liveness for load balancers and probes.
func Health(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{"status": "ok"})
}
