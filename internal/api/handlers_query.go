// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/query"
)

// Operation names used for cache keys and metric labels.
const (
	OpTopYearByGenre          = "top_year_by_genre"
	OpTopUserByGenre          = "top_user_by_genre"
	OpTopRecommendedByYear    = "top_recommended_by_year"
	OpTopNotRecommendedByYear = "top_not_recommended_by_year"
	OpSentimentTally          = "sentiment_tally"
)

func topYearQuery(genre string) QueryFunc {
	return func(e *query.Engine) (any, bool) {
		res := e.TopYearByGenre(genre)
		return res, res.Found
	}
}

func topUserQuery(genre string) QueryFunc {
	return func(e *query.Engine) (any, bool) {
		res := e.TopUserByGenre(genre)
		return res, res.Found
	}
}

func recommendedQuery(year int) QueryFunc {
	return func(e *query.Engine) (any, bool) {
		res := e.TopRecommendedByYear(year)
		return res, len(res) > 0
	}
}

func notRecommendedQuery(year int) QueryFunc {
	return func(e *query.Engine) (any, bool) {
		res := e.TopNotRecommendedByYear(year)
		return res, len(res) > 0
	}
}

func sentimentQuery(year int) QueryFunc {
	return func(e *query.Engine) (any, bool) {
		res := e.SentimentTally(year)
		return res, res.Total() > 0
	}
}

// TopYearByGenre returns the release year with the most hours played for a genre.
//
// @Summary Release year with the most hours played for a genre
// @Description Genre matching is case-insensitive. An unknown genre yields a "No data available" record, not a 404.
// @Tags Queries
// @Produce json
// @Param genre path string true "Genre name" example(Action)
// @Success 200 {object} models.APIResponse "Single labeled key holding the year (or null)"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/genres/{genre}/top-year [get]
func (h *Handler) TopYearByGenre(w http.ResponseWriter, r *http.Request) {
	genre, ok := h.genreParam(w, r)
	if !ok {
		return
	}
	NewQueryExecutor(h).Execute(w, r, OpTopYearByGenre, genre, topYearQuery(genre))
}

// TopUserByGenre returns the user with the most hours in a genre and their
// per-year breakdown.
//
// @Summary User with the most hours played for a genre
// @Description Ties go to the user seen first in the dataset. Hours per year keep dataset order.
// @Tags Queries
// @Produce json
// @Param genre path string true "Genre name" example(Action)
// @Success 200 {object} models.APIResponse "User key and ordered hours-per-year map"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/genres/{genre}/top-user [get]
func (h *Handler) TopUserByGenre(w http.ResponseWriter, r *http.Request) {
	genre, ok := h.genreParam(w, r)
	if !ok {
		return
	}
	NewQueryExecutor(h).Execute(w, r, OpTopUserByGenre, genre, topUserQuery(genre))
}

// TopRecommendedByYear returns the three most recommended games for a posting year.
//
// @Summary Top 3 recommended games for a posting year
// @Description Counts reviews with recommend=true and neutral or positive sentiment.
// @Tags Queries
// @Produce json
// @Param year path integer true "Posting year" example(2015)
// @Success 200 {object} models.APIResponse "Up to three \"Position k: name\" records"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/years/{year}/recommended [get]
func (h *Handler) TopRecommendedByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewQueryExecutor(h).Execute(w, r, OpTopRecommendedByYear, year, recommendedQuery(year))
}

// TopNotRecommendedByYear returns the three least recommended games for a posting year.
//
// @Summary Top 3 not-recommended games for a posting year
// @Description Counts reviews with recommend=false and negative sentiment.
// @Tags Queries
// @Produce json
// @Param year path integer true "Posting year" example(2015)
// @Success 200 {object} models.APIResponse "Up to three \"Position k: name\" records"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/years/{year}/not-recommended [get]
func (h *Handler) TopNotRecommendedByYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewQueryExecutor(h).Execute(w, r, OpTopNotRecommendedByYear, year, notRecommendedQuery(year))
}

// SentimentTally counts reviews per sentiment class for a release year.
//
// @Summary Review sentiment counts for a release year
// @Tags Queries
// @Produce json
// @Param year path integer true "Release year" example(2015)
// @Success 200 {object} models.APIResponse{data=models.SentimentTally} "Negative, Neutral and Positive counts"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/years/{year}/sentiment [get]
func (h *Handler) SentimentTally(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewQueryExecutor(h).Execute(w, r, OpSentimentTally, year, sentimentQuery(year))
}

// Genres lists the distinct genres known to the playtime table.
//
// @Summary List genres
// @Tags Queries
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string} "Genre names as first spelled in the dataset"
// @Failure 503 {object} models.APIResponse "Dataset not loaded"
// @Router /api/v1/genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	engine := h.engine()
	if engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Dataset not loaded", nil, nil)
		return
	}
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     engine.Genres(),
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
