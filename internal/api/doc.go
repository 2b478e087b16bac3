// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package api provides the HTTP REST API layer for Steamlens.

It exposes the five read-only queries of the query engine, their unversioned
legacy aliases, health probes and statistics.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers holding the current dataset, result cache and
    latency monitor
  - QueryExecutor: cache-first execution shared by every query handler
  - ChiMiddleware: go-chi/cors, go-chi/httprate and security headers

API Categories:

1. Query Endpoints (/api/v1/):
  - genres/{genre}/top-year, genres/{genre}/top-user
  - years/{year}/recommended, years/{year}/not-recommended, years/{year}/sentiment
  - genres, stats

2. Legacy Endpoints (bare results, no envelope):
  - /PlayTimeGenre/{genre}, /UserForGenre/{genre}
  - /UsersRecommend/{year}, /UsersNotRecommend/{year}, /sentiment_analysis/{year}

3. Health Endpoints (/api/v1/health):
  - health, health/live, health/ready

4. Observability:
  - /metrics (Prometheus), /docs/ (Swagger UI)

Usage Example:

	res, err := database.Open(ctx, &cfg.Data)
	if err != nil {
	    log.Fatal(err)
	}
	handler := api.NewHandler(cfg)
	handler.SetDataset(res)
	router := api.NewRouter(handler)
	http.ListenAndServe(":8000", router.SetupChi())

Response Format:

Versioned endpoints answer with models.APIResponse:

	{
	  "status": "success",
	  "data": {"Release year with the most hours played for the genre Action": 2012},
	  "metadata": {"timestamp": "2026-01-28T12:00:00Z", "query_time_ms": 1}
	}

Genre and year parameters are validated by the validation package. A
malformed parameter is a 400 VALIDATION_ERROR; a well-formed query that
matches nothing is a 200 carrying the empty result. Successful responses
carry an ETag and honour If-None-Match.
*/
package api
