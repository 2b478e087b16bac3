// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package main provides the Steamlens HTTP server
//
// @title Steamlens API
// @version 1.0
// @description Read-only query API over Steam playtime, review, and sentiment data.
// @description
// @description ## Queries
// @description
// @description - **Top year by genre**: release year with the most playtime for a genre
// @description - **Top user by genre**: user with the most playtime in a genre, with hours per year
// @description - **Recommended / not recommended by year**: top three games by review count
// @description - **Sentiment tally by year**: negative, neutral, and positive review counts
// @description
// @description The pre-versioned paths (`/PlayTimeGenre/{genre}`, `/UserForGenre/{genre}`,
// @description `/UsersRecommend/{year}`, `/UsersNotRecommend/{year}`, `/sentiment_analysis/{year}`)
// @description return the bare legacy JSON shapes without the response envelope.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Exceeding it returns 429 with a `Retry-After` header.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "Human-readable error message",
// @description     "details": {"field": "year", "tag": "numeric"}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/steamlens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks, dataset statistics, and genre listing
//
// @tag.name Queries
// @tag.description The five dataset queries
//
// @tag.name Legacy
// @tag.description Pre-versioned query paths with bare JSON responses
package main
