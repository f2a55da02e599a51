package utils

import (
	"github.com/gofiber/fiber/v2"

	"tixora/internal/result"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Unauthorized sends a JSON error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// StatusForKind maps a domain error kind to an HTTP status code.
func StatusForKind(kind result.Kind) int {
	switch kind {
	case result.KindInvalidInput:
		return fiber.StatusBadRequest
	case result.KindNotFound:
		return fiber.StatusNotFound
	case result.KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondResult translates an operation result into the uniform JSON shape.
func RespondResult[T any](c *fiber.Ctx, res result.Result[T]) error {
	if res.IsSuccess() {
		return Success(c, fiber.Map{"data": res.Value})
	}
	return Respond(c, StatusForKind(res.Err.Kind), fiber.Map{
		"error":       res.Err.Message,
		"status_code": res.Err.Kind,
	})
}
