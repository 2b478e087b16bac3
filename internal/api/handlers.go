// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/steamlens/internal/cache"
	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/middleware"
	"github.com/tomtom215/steamlens/internal/query"
	"github.com/tomtom215/steamlens/internal/validation"
)

// DefaultCacheEntries bounds the query result cache.
const DefaultCacheEntries = 10000

// Version is reported by the health endpoint. It is set by cmd/server.
var Version = "dev"

// dataset is the engine together with the provenance of its data.
type dataset struct {
	engine *query.Engine
	load   *database.LoadResult
	// generation increases with every SetDataset and is part of each cache
	// key, so a query still running on a replaced engine cannot publish its
	// result under the new dataset's keys.
	generation uint64
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, dataset swap (this file)
//   - handlers_helpers.go: JSON responses, ETags, parameter validation
//   - handlers_query.go: the five query endpoints and genre listing
//   - handlers_legacy.go: unversioned aliases returning bare results
//   - handlers_health.go: health probes and stats
//   - router_core.go: route registration and the HTML landing page
//   - query_executor.go: cache-first execution shared by query handlers
type Handler struct {
	data      atomic.Pointer[dataset]
	gen       atomic.Uint64
	config    *config.Config
	limits    validation.Limits
	startTime time.Time
	cache     *cache.Cache
	perfMon   *middleware.PerformanceMonitor
}

// NewHandler creates the API handler. The dataset is installed separately
// with SetDataset; until then query endpoints answer 503 and the readiness
// probe fails.
//
// Example:
//
//	handler := api.NewHandler(cfg)
//	handler.SetDataset(loadResult)
//	router := api.NewRouter(handler)
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = &config.Config{}
	}

	limits, verr := validation.NewLimits(cfg.API.MinYear, cfg.API.MaxYear, cfg.API.MaxGenreLength)
	if verr != nil {
		logging.Warn().Err(verr).Msg("Invalid API limits, using defaults")
	}

	ttl := cfg.API.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Handler{
		config:    cfg,
		limits:    limits,
		startTime: time.Now(),
		cache:     cache.New(ttl, DefaultCacheEntries),
		perfMon:   middleware.NewPerformanceMonitor(cfg.Supervisor.SlowRequestThreshold),
	}
}

// SetDataset installs a loaded dataset and clears cached results computed
// from any previous one. Safe to call while serving.
func (h *Handler) SetDataset(res *database.LoadResult) {
	if res == nil || res.Dataset == nil {
		return
	}
	h.data.Store(&dataset{
		engine:     query.New(res.Dataset),
		load:       res,
		generation: h.gen.Add(1),
	})
	h.ClearCache()

	logging.Info().
		Str("source", res.Source).
		Int("rows", res.Dataset.Counts().Total()).
		Msg("Dataset installed")
}

// engine returns the current engine, or nil before SetDataset.
func (h *Handler) engine() *query.Engine {
	if d := h.data.Load(); d != nil {
		return d.engine
	}
	return nil
}

// loadInfo returns the current load result, or nil before SetDataset.
func (h *Handler) loadInfo() *database.LoadResult {
	if d := h.data.Load(); d != nil {
		return d.load
	}
	return nil
}

// ClearCache invalidates all cached query results.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		metrics.CacheEntries.Set(0)
	}
}

// Cache exposes the result cache so its janitor can be supervised.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}

// PerformanceMonitor exposes the latency monitor for periodic reporting.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// Limits returns the parameter limits applied to requests.
func (h *Handler) Limits() validation.Limits {
	return h.limits
}
