package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonSuccess wraps data in the standard envelope. The status code is left
// as set by the caller (200 by default).
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
