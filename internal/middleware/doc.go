// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the logging context
  - RequestLogger: one zerolog access line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - PerformanceMonitor: per-endpoint HDR latency histograms with slow
    request detection, surfaced through /api/v1/stats

All middleware has the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMonitor.Middleware)

Metrics and latency are keyed by the chi route pattern, so they must run
inside a chi router for the label to be the pattern rather than "unmatched".
*/
package middleware
