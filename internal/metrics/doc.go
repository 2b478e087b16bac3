// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

Dataset:
  - steamlens_dataset_rows{table}: rows loaded per table (gauge)
  - steamlens_dataset_load_duration_seconds{source}: last load time (gauge)
  - steamlens_dataset_loaded_timestamp: unix time of the last load (gauge)

Query engine:
  - steamlens_query_duration_seconds{operation}: engine call latency (histogram)
  - steamlens_query_executions_total{operation,result}: calls by outcome, where
    result is match, no_match or error (counter)

Result cache:
  - steamlens_cache_hits_total{operation}, steamlens_cache_misses_total{operation}
  - steamlens_cache_entries (gauge)

HTTP:
  - api_requests_total{method,endpoint,status_code} (counter)
  - api_request_duration_seconds{method,endpoint} (histogram)
  - api_active_requests (gauge)
  - api_validation_errors_total{endpoint}, api_rate_limit_hits_total{endpoint}
  - api_slow_requests_total{endpoint}

Process:
  - supervisor_service_restarts_total{service}
  - app_info{version,go_version}, app_uptime_seconds

# Usage

	start := time.Now()
	res := engine.TopYearByGenre(genre)
	metrics.RecordQuery("top_year_by_genre", time.Since(start), res.Found, nil)

Endpoint labels use the chi route pattern (for example
/api/v1/genres/{genre}/top-year) so label cardinality stays bounded no matter
which genres or years clients ask for.
*/
package metrics
