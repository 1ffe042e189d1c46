package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"schemebot/internal/config"
	"schemebot/internal/db"
	"schemebot/internal/jobs"
	"schemebot/internal/logging"
	"schemebot/internal/metrics"
	"schemebot/internal/schemes"
	"schemebot/internal/server"
	"schemebot/internal/validation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logging.Setup(os.Stderr, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		slog.Error("failed to load YAML config", "error", err)
		os.Exit(1)
	}
	yamlCfg.Apply(cfg)

	table := schemes.Initialize()
	for _, s := range table.All() {
		if valid, msg := validation.ValidateURL(s.ApplyURL); !valid {
			slog.Error("invalid apply URL in scheme table", "scheme", s.Key, "reason", msg)
			os.Exit(1)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Resolution statistics are optional
	var m *metrics.Metrics
	if cfg.StatsEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations completed successfully")
		m = metrics.New(reg, database)
	} else {
		slog.Info("resolution statistics are in-memory only. Set DATABASE_URL to persist them.")
		m = metrics.New(reg, nil)
	}
	defer m.Wait()

	var sink jobs.StatusSink
	if cfg.LinkCheckEnabled() {
		sink = m
	}
	checker := jobs.NewLinkChecker(table, cfg.LinkCheckInterval, cfg.LinkCheckMaxAge, sink)
	if cfg.LinkCheckEnabled() {
		go checker.Start(ctx)
	}

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}
	srv.RegisterRoutes(server.Deps{
		Table:       table,
		Metrics:     m,
		LinkChecker: checker,
		Gatherer:    reg,
	})

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	slog.Info("server exited")
}
