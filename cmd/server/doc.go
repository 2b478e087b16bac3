// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package main is the entry point for the Steamlens server.

Steamlens loads four pre-aggregated Steam tables (playtime by genre, user
playtime by genre, user reviews, sentiment by year) once at startup and
answers five read-only queries over HTTP.

# Application Architecture

	RootSupervisor ("steamlens")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server (chi router)
	└── MaintenanceSupervisor ("maintenance-layer")
	    ├── Result cache janitor
	    └── Performance report

Startup order:

 1. Configuration: Koanf v2 with defaults, config.yaml, .env and environment
 2. Logging: zerolog with JSON or console output
 3. Dataset: the four tables read through DuckDB (or the built-in demo data)
 4. Handler: query engine and result cache
 5. Supervisor Tree: suture v4 process supervision
 6. HTTP Server: chi router with middleware stack

# Configuration

	HTTP_PORT=8000                    # listen port
	DATA_DIR=Data/parquet             # directory holding the four files
	SEED_MOCK_DATA=true               # serve the built-in demo dataset
	API_CACHE_TTL=5m                  # query result cache lifetime
	RATE_LIMIT_REQUESTS=100           # per IP per RATE_LIMIT_WINDOW
	LOG_LEVEL=info                    # trace, debug, info, warn, error
	LOG_FORMAT=json                   # json or console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for SHUTDOWN_TIMEOUT before the
process exits.

# Example Usage

	SEED_MOCK_DATA=true LOG_FORMAT=console ./steamlens-server
	curl localhost:8000/api/v1/genres/Action/top-year
	curl localhost:8000/sentiment_analysis/2015
*/
package main
