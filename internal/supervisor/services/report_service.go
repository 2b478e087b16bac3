// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package services

import (
	"context"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// Reporter is implemented by *middleware.PerformanceMonitor.
type Reporter interface {
	LogSummary()
	LogSlowRequests() int
}

// PerformanceReportService periodically logs endpoint latency percentiles
// and refreshes the uptime gauge.
type PerformanceReportService struct {
	reporter Reporter
	interval time.Duration
	started  time.Time
	name     string
}

// NewPerformanceReportService creates a report service. A non-positive
// interval falls back to one minute.
func NewPerformanceReportService(reporter Reporter, interval time.Duration, started time.Time) *PerformanceReportService {
	if interval <= 0 {
		interval = time.Minute
	}
	if started.IsZero() {
		started = time.Now()
	}
	return &PerformanceReportService{
		reporter: reporter,
		interval: interval,
		started:  started,
		name:     "performance-report",
	}
}

// Serve implements suture.Service. It returns ctx.Err() on shutdown.
func (s *PerformanceReportService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *PerformanceReportService) report() {
	metrics.UpdateUptime(s.started)
	if s.reporter == nil {
		return
	}
	if slow := s.reporter.LogSlowRequests(); slow > 0 {
		logging.Warn().Int("endpoints", slow).Msg("Slow endpoints detected")
	}
	s.reporter.LogSummary()
}

// String implements fmt.Stringer.
func (s *PerformanceReportService) String() string {
	return s.name
}
