// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes used as the "result" label of QueryExecutions.
const (
	ResultMatch   = "match"
	ResultNoMatch = "no_match"
	ResultError   = "error"
)

var (
	// Dataset Metrics
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "steamlens_dataset_rows",
			Help: "Number of rows loaded per dataset table",
		},
		[]string{"table"},
	)

	DatasetLoadDuration = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "steamlens_dataset_load_duration_seconds",
			Help: "Time taken by the most recent dataset load",
		},
		[]string{"source"},
	)

	DatasetLoadedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "steamlens_dataset_loaded_timestamp",
			Help: "Unix timestamp of the most recent dataset load",
		},
	)

	// Query Engine Metrics
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steamlens_query_duration_seconds",
			Help:    "Duration of query engine operations in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}, // in-memory scans
		},
		[]string{"operation"},
	)

	QueryExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_query_executions_total",
			Help: "Total number of query engine operations by outcome",
		},
		[]string{"operation", "result"},
	)

	// Result Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_cache_hits_total",
			Help: "Total number of query result cache hits",
		},
		[]string{"operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steamlens_cache_misses_total",
			Help: "Total number of query result cache misses",
		},
		[]string{"operation"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "steamlens_cache_entries",
			Help: "Current number of cached query results",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_validation_errors_total",
			Help: "Total number of requests rejected by parameter validation",
		},
		[]string{"endpoint"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APISlowRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_slow_requests_total",
			Help: "Total number of requests slower than the configured threshold",
		},
		[]string{"endpoint"},
	)

	// Supervisor Metrics
	ServiceRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "supervisor_service_restarts_total",
			Help: "Total number of supervised service restarts",
		},
		[]string{"service"},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDatasetLoad records table sizes and load time of a dataset load.
func RecordDatasetLoad(source string, rows map[string]int, duration time.Duration) {
	for table, n := range rows {
		DatasetRows.WithLabelValues(table).Set(float64(n))
	}
	DatasetLoadDuration.WithLabelValues(source).Set(duration.Seconds())
	DatasetLoadedAt.Set(float64(time.Now().Unix()))
}

// RecordQuery records a query engine operation and its outcome.
func RecordQuery(operation string, duration time.Duration, found bool, err error) {
	QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	result := ResultMatch
	switch {
	case err != nil:
		result = ResultError
	case !found:
		result = ResultNoMatch
	}
	QueryExecutions.WithLabelValues(operation, result).Inc()
}

// RecordCacheLookup records a cache hit or miss for operation.
func RecordCacheLookup(operation string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(operation).Inc()
	} else {
		CacheMisses.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordValidationError counts a rejected request parameter.
func RecordValidationError(endpoint string) {
	APIValidationErrors.WithLabelValues(endpoint).Inc()
}

// RecordRateLimitHit counts a rate limit rejection.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordSlowRequest counts a request over the slow threshold.
func RecordSlowRequest(endpoint string) {
	APISlowRequests.WithLabelValues(endpoint).Inc()
}

// RecordServiceRestart counts a supervisor restart of service.
func RecordServiceRestart(service string) {
	ServiceRestarts.WithLabelValues(service).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the running version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets app_uptime_seconds from the process start time.
func UpdateUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}
