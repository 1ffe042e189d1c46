package api

import (
	"github.com/gofiber/fiber/v3"

	"schemebot/internal/handlers"
	"schemebot/internal/models"
	"schemebot/internal/schemes"
)

// ApplicationHandler accepts application forms via JSON API.
type ApplicationHandler struct {
	table schemes.Table
}

// NewApplicationHandler creates a new API application handler.
func NewApplicationHandler(table schemes.Table) *ApplicationHandler {
	return &ApplicationHandler{table: table}
}

// Submit validates the form and returns a receipt. Nothing is stored.
func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var form models.ApplicationForm
	if err := c.Bind().JSON(&form); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	receipt, msg := handlers.SubmitApplication(form, h.table)
	if receipt == nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	c.Status(fiber.StatusCreated)
	return jsonSuccess(c, receipt)
}
