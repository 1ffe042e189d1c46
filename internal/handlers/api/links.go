package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"schemebot/internal/models"
)

// LinkStatusSource provides the latest apply-link check results.
type LinkStatusSource interface {
	Statuses() []models.LinkStatus
}

// LinkHandler reports apply-link health.
type LinkHandler struct {
	source  LinkStatusSource
	enabled bool
}

// NewLinkHandler creates a new API link handler. enabled tells clients
// whether statuses are refreshed in the background.
func NewLinkHandler(source LinkStatusSource, enabled bool) *LinkHandler {
	return &LinkHandler{source: source, enabled: enabled}
}

// Status returns the latest result for every scheme.
func (h *LinkHandler) Status(c fiber.Ctx) error {
	return jsonSuccess(c, models.LinkStatusListResponse{
		Enabled: h.enabled,
		Links:   h.source.Statuses(),
		AsOf:    time.Now().UTC(),
	})
}
