// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/steamlens/docs" // Import generated swagger docs
	"github.com/tomtom215/steamlens/internal/api"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/supervisor"
	"github.com/tomtom215/steamlens/internal/supervisor/services"
)

// Build information, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Steamlens exited with error")
	}
}

func run() error {
	started := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("commit", commit).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Steamlens with supervisor tree")
	for _, w := range cfg.ProductionWarnings() {
		logging.Warn().Msg(w)
	}

	api.Version = version
	metrics.SetAppInfo(version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The dataset is loaded once; a failure here is fatal.
	res, err := database.Open(ctx, &cfg.Data)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	counts := res.Dataset.Counts()
	logging.Info().
		Str("source", res.Source).
		Int("playtime_by_genre", counts.PlaytimeByGenre).
		Int("user_genre_playtime", counts.UserGenrePlaytime).
		Int("user_reviews", counts.UserReviews).
		Int("sentiment_by_year", counts.SentimentByYear).
		Dur("duration", res.Duration).
		Msg("Dataset loaded")

	handler := api.NewHandler(cfg)
	handler.SetDataset(res)

	router := api.NewRouter(handler)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(handler.Cache())
	tree.AddMaintenanceService(services.NewPerformanceReportService(
		handler.PerformanceMonitor(), cfg.Supervisor.ReportInterval, started))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	handler.PerformanceMonitor().LogSummary()
	logging.Info().Dur("uptime", time.Since(started)).Msg("Application stopped gracefully")

	if ctx.Err() == nil {
		return errors.New("supervisor tree stopped without a shutdown signal")
	}
	return nil
}
