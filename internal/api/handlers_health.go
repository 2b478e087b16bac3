// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns dataset status, row counts per table, version and uptime
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved successfully"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "degraded",
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if load := h.loadInfo(); load != nil {
		health.Status = "healthy"
		health.DatasetLoaded = true
		health.DatasetSource = load.Source
		health.Rows = load.Dataset.Counts()
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles Kubernetes liveness probe requests.
// Returns 200 if the process is alive, regardless of dataset state.
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 if the process is running
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]string "Process is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondRaw(w, r, http.StatusOK, map[string]string{
		"status": "alive",
	})
}

// HealthReady handles Kubernetes readiness probe requests.
// Returns 200 once a dataset is installed, 503 otherwise.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 when the dataset is loaded and queries can be served
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]string "Ready to serve"
// @Failure 503 {object} map[string]string "Dataset not loaded"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine() == nil {
		respondRaw(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "dataset not loaded",
		})
		return
	}

	respondRaw(w, r, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// Stats reports dataset provenance, cache effectiveness and per-endpoint
// latency percentiles.
//
// @Summary Dataset, cache and latency statistics
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetStats}
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	load := h.loadInfo()
	if load == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Dataset not loaded", nil, nil)
		return
	}

	counts := load.Dataset.Counts()
	stats := models.DatasetStats{
		Rows:       counts,
		TotalRows:  counts.Total(),
		Source:     load.Source,
		LoadedAt:   load.LoadedAt,
		LoadTimeMS: load.Duration.Milliseconds(),
		Endpoints:  h.perfMon.GetStats(),
	}

	if h.cache != nil {
		cs := h.cache.GetStats()
		stats.Cache = models.CacheStats{
			Hits:      cs.Hits,
			Misses:    cs.Misses,
			Entries:   h.cache.Len(),
			HitRate:   h.cache.HitRate(),
			Evictions: cs.Evictions,
		}
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
