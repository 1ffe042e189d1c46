package handlers

import (
	"github.com/gofiber/fiber/v3"

	"schemebot/internal/config"
	"schemebot/internal/metrics"
	"schemebot/internal/middleware"
	"schemebot/internal/models"
	"schemebot/internal/schemes"
	"schemebot/internal/validation"
)

// ChatHandler serves the query page and answers queries.
type ChatHandler struct {
	table   schemes.Table
	cfg     *config.Config
	metrics *metrics.Metrics
	history *middleware.HistoryMiddleware
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(table schemes.Table, cfg *config.Config, m *metrics.Metrics, history *middleware.HistoryMiddleware) *ChatHandler {
	return &ChatHandler{table: table, cfg: cfg, metrics: m, history: history}
}

// Index renders the query page with the session transcript.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	return c.Render("index", h.pageData(c, nil, ""))
}

// Ask resolves the submitted query. htmx requests receive only the reply
// partial; plain form posts get the whole page back.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	q := validation.NormalizeQuery(c.FormValue("q"))

	if valid, msg := validation.ValidateQuery(q); !valid {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return c.Status(fiber.StatusUnprocessableEntity).Render("index", h.pageData(c, nil, msg))
	}

	exchange := Answer(q, h.table)
	h.metrics.RecordResolution(exchange.Scheme, outcomeOf(exchange))
	h.history.Append(c, exchange)

	if isHTMX(c) {
		return c.Render("partials/reply", exchange, "")
	}
	return c.Render("index", h.pageData(c, &exchange, ""))
}

// ClearHistory empties the transcript and returns to the query page.
func (h *ChatHandler) ClearHistory(c fiber.Ctx) error {
	h.history.Clear(c)
	if isHTMX(c) {
		return c.SendString("")
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

func (h *ChatHandler) pageData(c fiber.Ctx, latest *models.Exchange, notice string) fiber.Map {
	history := middleware.History(c)
	data := fiber.Map{
		"Instruction": h.cfg.Instruction,
		"Greeting":    h.cfg.GreetingMessage,
		"Schemes":     h.table.All(),
	}
	if latest != nil {
		data["Latest"] = *latest
		// latest is already the last transcript entry
		if n := len(history); n > 0 {
			history = history[:n-1]
		}
	}
	data["History"] = history
	if notice != "" {
		data["Notice"] = notice
	}
	return MergeBranding(data, h.cfg)
}

// Answer resolves q and builds the transcript entry for it.
func Answer(q string, table schemes.Table) models.Exchange {
	res := schemes.Resolve(q, table)
	s, ok := res.Scheme()
	if !ok {
		return models.Exchange{Query: q, Reply: schemes.FallbackMessage}
	}
	return models.Exchange{Query: q, Reply: s.Description, Scheme: s.Key, ApplyURL: s.ApplyURL}
}

func outcomeOf(e models.Exchange) string {
	if e.Found() {
		return schemes.OutcomeFound
	}
	return schemes.OutcomeNotFound
}
