package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"schemebot/internal/handlers"
	"schemebot/internal/handlers/api"
	"schemebot/internal/jobs"
	"schemebot/internal/metrics"
	"schemebot/internal/middleware"
	"schemebot/internal/schemes"
)

// Deps are the components routes are wired to.
type Deps struct {
	Table       schemes.Table
	Metrics     *metrics.Metrics
	LinkChecker *jobs.LinkChecker
	Gatherer    prometheus.Gatherer
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(deps Deps) {
	history := middleware.NewHistoryMiddleware(s.Cfg.HistorySize)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(deps.Table, s.Cfg, deps.Metrics, history)
	applyHandler := handlers.NewApplyHandler(deps.Table, s.Cfg)
	redirectHandler := handlers.NewRedirectHandler(deps.Table, s.Cfg)

	resolveAPI := api.NewResolveHandler(deps.Table, deps.Metrics)
	schemeAPI := api.NewSchemeHandler(deps.Table)
	applicationAPI := api.NewApplicationHandler(deps.Table)

	// Operational endpoints
	s.App.Get("/healthz", func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Frontend routes
	s.App.Get("/", history.Load, chatHandler.Index)
	s.App.Post("/ask", history.Load, chatHandler.Ask)
	s.App.Post("/history/clear", history.Load, chatHandler.ClearHistory)
	s.App.Get("/apply", applyHandler.Form)
	s.App.Post("/apply", applyHandler.Submit)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/resolve", resolveAPI.Resolve)
	v1.Get("/schemes", schemeAPI.List)
	v1.Get("/schemes/:key", schemeAPI.Get)
	v1.Post("/applications", applicationAPI.Submit)
	if deps.LinkChecker != nil {
		linkAPI := api.NewLinkHandler(deps.LinkChecker, s.Cfg.LinkCheckEnabled())
		v1.Get("/links", linkAPI.Status)
	}

	// Apply-link redirect - registered last
	s.App.Get("/go/:scheme", redirectHandler.Redirect)
}
