package api

import (
	"github.com/gofiber/fiber/v3"

	"schemebot/internal/models"
	"schemebot/internal/schemes"
)

// SchemeHandler exposes the scheme table.
type SchemeHandler struct {
	table schemes.Table
}

// NewSchemeHandler creates a new API scheme handler.
func NewSchemeHandler(table schemes.Table) *SchemeHandler {
	return &SchemeHandler{table: table}
}

// List returns every scheme in resolution priority order.
func (h *SchemeHandler) List(c fiber.Ctx) error {
	all := h.table.All()
	out := make([]models.SchemeResponse, 0, len(all))
	for i, s := range all {
		out = append(out, toSchemeResponse(s, i+1))
	}
	return jsonSuccess(c, out)
}

// Get returns one scheme by key, ignoring case.
func (h *SchemeHandler) Get(c fiber.Ctx) error {
	s, ok := h.table.Lookup(c.Params("key"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "scheme not found")
	}
	for i, key := range h.table.Keys() {
		if key == s.Key {
			return jsonSuccess(c, toSchemeResponse(s, i+1))
		}
	}
	return jsonError(c, fiber.StatusNotFound, "scheme not found")
}

func toSchemeResponse(s schemes.Scheme, priority int) models.SchemeResponse {
	return models.SchemeResponse{
		Key:         s.Key,
		Description: s.Description,
		ApplyURL:    s.ApplyURL,
		Priority:    priority,
	}
}
