// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package config loads and validates Steamlens configuration.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/steamlens/config.yaml or /etc/steamlens/config.yml
 3. Environment variables, after a .env file in the working directory has
    been merged into the process environment

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 8000), SERVER_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Dataset:
  - DATA_DIR (default ./Data/parquet)
  - PLAYTIME_GENRE_FILE, USER_GENRE_FILE, USER_REVIEWS_FILE, SENTIMENT_YEAR_FILE
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - SEED_MOCK_DATA: serve the built-in demo dataset instead of reading files

API:
  - API_CACHE_TTL, API_MIN_YEAR, API_MAX_YEAR, API_MAX_GENRE_LENGTH

Security:
  - CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Supervisor:
  - SUPERVISOR_FAILURE_THRESHOLD, SUPERVISOR_FAILURE_BACKOFF
  - SLOW_REQUEST_THRESHOLD, PERF_REPORT_INTERVAL
*/
package config
