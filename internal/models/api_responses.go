// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

import (
	"time"
)

// APIResponse is the envelope returned by every /api/v1 endpoint.
//
// Status is "success" (see Data) or "error" (see Error).
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"Negative": 3, "Neutral": 10, "Positive": 41},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "VALIDATION_ERROR", "message": "year must be an integer"},
//	  "metadata": {"timestamp": "2026-01-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and cache information for a response.
// QueryTimeMS is 0 and Cached is true when the result came from the cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a structured error payload.
//
// Codes in use:
//   - VALIDATION_ERROR: malformed genre or year
//   - NOT_FOUND: unknown route
//   - SERVICE_UNAVAILABLE: dataset not loaded
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	// RequestID matches the X-Request-ID response header and the server log.
	RequestID string `json:"request_id,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status        string        `json:"status"`
	Version       string        `json:"version"`
	DatasetLoaded bool          `json:"dataset_loaded"`
	DatasetSource string        `json:"dataset_source,omitempty"`
	Rows          DatasetCounts `json:"rows"`
	Uptime        float64       `json:"uptime_seconds"`
}

// EndpointLatency summarises observed latencies for one route.
type EndpointLatency struct {
	Endpoint  string  `json:"endpoint"`
	Count     int64   `json:"count"`
	MeanMS    float64 `json:"mean_ms"`
	P50MS     float64 `json:"p50_ms"`
	P95MS     float64 `json:"p95_ms"`
	P99MS     float64 `json:"p99_ms"`
	MaxMS     float64 `json:"max_ms"`
	SlowCount int64   `json:"slow_count"`
}

// CacheStats mirrors the query cache counters.
type CacheStats struct {
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Entries   int     `json:"entries"`
	HitRate   float64 `json:"hit_rate"`
	Evictions int64   `json:"evictions"`
}

// DatasetStats is returned by /api/v1/stats.
type DatasetStats struct {
	Rows       DatasetCounts     `json:"rows"`
	TotalRows  int               `json:"total_rows"`
	Source     string            `json:"source"`
	LoadedAt   time.Time         `json:"loaded_at"`
	LoadTimeMS int64             `json:"load_time_ms"`
	Cache      CacheStats        `json:"cache"`
	Endpoints  []EndpointLatency `json:"endpoints"`
}
