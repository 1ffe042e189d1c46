package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"schemebot/internal/config"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

// RedirectHandler sends users to a scheme's external apply page.
type RedirectHandler struct {
	table schemes.Table
	cfg   *config.Config
}

// NewRedirectHandler creates a new redirect handler.
func NewRedirectHandler(table schemes.Table, cfg *config.Config) *RedirectHandler {
	return &RedirectHandler{table: table, cfg: cfg}
}

// Redirect looks up a scheme key and redirects to its apply URL.
func (h *RedirectHandler) Redirect(c fiber.Ctx) error {
	key := c.Params("scheme")

	s, ok := h.table.Lookup(key)
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("error", MergeBranding(fiber.Map{
			"Title":   "Not Found",
			"Message": "There is no scheme called '" + key + "'.",
		}, h.cfg))
	}

	if valid, msg := validation.ValidateURL(s.ApplyURL); !valid {
		slog.Error("refusing to redirect to invalid apply URL", "scheme", s.Key, "reason", msg)
		return fiber.NewError(fiber.StatusBadGateway, "The apply link for this scheme is unavailable.")
	}

	return c.Redirect().Status(fiber.StatusFound).To(s.ApplyURL)
}
