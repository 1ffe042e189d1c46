package api

import (
	"github.com/gofiber/fiber/v3"

	"schemebot/internal/metrics"
	"schemebot/internal/models"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

// ResolveHandler resolves free-text queries via JSON API.
type ResolveHandler struct {
	table   schemes.Table
	metrics *metrics.Metrics
}

// NewResolveHandler creates a new API resolve handler.
func NewResolveHandler(table schemes.Table, m *metrics.Metrics) *ResolveHandler {
	return &ResolveHandler{table: table, metrics: m}
}

// Resolve matches ?q= against the scheme table. A miss is a normal 200
// response with found=false.
func (h *ResolveHandler) Resolve(c fiber.Ctx) error {
	q := validation.NormalizeQuery(c.Query("q"))
	if valid, msg := validation.ValidateQuery(q); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	res := schemes.Resolve(q, h.table)
	h.metrics.RecordResolution(res.Key(), res.Outcome())
	return jsonSuccess(c, NewResolveResponse(q, res))
}

// NewResolveResponse builds the API view of a resolution.
func NewResolveResponse(q string, res schemes.Resolution) models.ResolveResponse {
	resp := models.ResolveResponse{
		Query:     q,
		Message:   schemes.FallbackMessage,
		ReplyHTML: schemes.Compose(res),
	}
	if s, ok := res.Scheme(); ok {
		resp.Found = true
		resp.Scheme = s.Key
		resp.Description = s.Description
		resp.ApplyURL = s.ApplyURL
		resp.Message = s.Description
	}
	return resp
}
