package middleware

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"schemebot/internal/models"
)

const (
	historySessionKey = "history"
	historyLocalsKey  = "history"
)

// HistoryMiddleware keeps a short chat transcript in the session.
type HistoryMiddleware struct {
	size int
}

// NewHistoryMiddleware creates a transcript middleware keeping the last size
// exchanges.
func NewHistoryMiddleware(size int) *HistoryMiddleware {
	if size <= 0 {
		size = 10
	}
	return &HistoryMiddleware{size: size}
}

// Load reads the transcript from the session into c.Locals.
// Requests without a session get an empty transcript.
func (m *HistoryMiddleware) Load(c fiber.Ctx) error {
	c.Locals(historyLocalsKey, readHistory(c))
	return c.Next()
}

// Append adds an exchange to the transcript, dropping the oldest ones beyond
// the configured size, and refreshes c.Locals.
func (m *HistoryMiddleware) Append(c fiber.Ctx, e models.Exchange) {
	history := append(History(c), e)
	if len(history) > m.size {
		history = history[len(history)-m.size:]
	}
	c.Locals(historyLocalsKey, history)

	sess := session.FromContext(c)
	if sess == nil {
		return
	}
	data, err := json.Marshal(history)
	if err != nil {
		slog.Error("failed to encode chat history", "error", err)
		return
	}
	sess.Set(historySessionKey, string(data))
}

// Clear empties the transcript.
func (m *HistoryMiddleware) Clear(c fiber.Ctx) {
	c.Locals(historyLocalsKey, []models.Exchange(nil))
	if sess := session.FromContext(c); sess != nil {
		sess.Delete(historySessionKey)
	}
}

// History returns the transcript loaded for this request.
func History(c fiber.Ctx) []models.Exchange {
	h, _ := c.Locals(historyLocalsKey).([]models.Exchange)
	return h
}

func readHistory(c fiber.Ctx) []models.Exchange {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}
	raw, ok := sess.Get(historySessionKey).(string)
	if !ok || raw == "" {
		return nil
	}
	var history []models.Exchange
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		slog.Warn("discarding unreadable chat history", "error", err)
		sess.Delete(historySessionKey)
		return nil
	}
	return history
}
