// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/steamlens/internal/middleware"
)

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)        // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(middleware.RequestLogger)    // Access log, after RealIP so remote_addr is the client
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(chimiddleware.Compress(5))   // gzip/deflate
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/", router.Index)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Query Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		router.queryMiddleware(r)

		r.Get("/stats", router.handler.Stats)
		r.Get("/genres", router.handler.Genres)
		r.Get("/genres/{genre}/top-year", router.handler.TopYearByGenre)
		r.Get("/genres/{genre}/top-user", router.handler.TopUserByGenre)
		r.Get("/years/{year}/recommended", router.handler.TopRecommendedByYear)
		r.Get("/years/{year}/not-recommended", router.handler.TopNotRecommendedByYear)
		r.Get("/years/{year}/sentiment", router.handler.SentimentTally)
	})

	// ========================
	// Legacy Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		router.queryMiddleware(r)

		r.Get("/PlayTimeGenre/{genre}", router.handler.LegacyPlayTimeGenre)
		r.Get("/UserForGenre/{genre}", router.handler.LegacyUserForGenre)
		r.Get("/UsersRecommend/{year}", router.handler.LegacyUsersRecommend)
		r.Get("/UsersNotRecommend/{year}", router.handler.LegacyUsersNotRecommend)
		r.Get("/sentiment_analysis/{year}", router.handler.LegacySentimentAnalysis)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

// queryMiddleware is the stack shared by query routes. The Prometheus and
// latency middleware run inside the route group so the chi route pattern is
// known when they record.
func (router *Router) queryMiddleware(r chi.Router) {
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(APISecurityHeaders())
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.handler.perfMon.Middleware)
}
