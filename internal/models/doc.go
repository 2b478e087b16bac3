// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

/*
Package models defines the data structures shared by the Steamlens loader,
query engine, API, and CLI.

Model Categories:

1. Dataset rows (dataset.go):
  - PlaytimeGenreRow: hours played per genre and release year
  - UserGenreRow: hours played per user, genre, and release year
  - UserReviewRow: one review with its posted year, recommend flag, and sentiment
  - SentimentYearRow: one sentiment value per release year
  - Dataset: the four tables, immutable once loaded

2. Query results (results.go):
  - GenreYear, GenreTopUser, RankedItem, SentimentTally
  - Each has a MarshalJSON that produces the labeled legacy shape, for example:

	{"Release year with the most hours played for the genre Action": 2013}
	[{"Position 1: Terraria": 4}, {"Position 2: Rust": 3}]

3. API envelope (api_responses.go):
  - APIResponse, APIError, Metadata
  - HealthStatus, DatasetStats, CacheStats, EndpointLatency

Thread Safety:

Rows and results are plain values. A Dataset must not be modified after it
is handed to query.New.
*/
package models
