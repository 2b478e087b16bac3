// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package api

import "net/http"

// Legacy routes keep the unversioned paths of the first public release.
// They answer with the bare result record; errors still use the envelope.

// LegacyPlayTimeGenre serves /PlayTimeGenre/{genre}.
//
// @Summary Release year with the most hours played for a genre (legacy)
// @Tags Legacy
// @Produce json
// @Param genre path string true "Genre name"
// @Success 200 {object} map[string]int "Single labeled key"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Router /PlayTimeGenre/{genre} [get]
func (h *Handler) LegacyPlayTimeGenre(w http.ResponseWriter, r *http.Request) {
	genre, ok := h.genreParam(w, r)
	if !ok {
		return
	}
	NewLegacyQueryExecutor(h).Execute(w, r, OpTopYearByGenre, genre, topYearQuery(genre))
}

// LegacyUserForGenre serves /UserForGenre/{genre}.
//
// @Summary User with the most hours played for a genre (legacy)
// @Tags Legacy
// @Produce json
// @Param genre path string true "Genre name"
// @Success 200 {object} map[string]interface{} "User key and hours-per-year map"
// @Failure 400 {object} models.APIResponse "Invalid genre"
// @Router /UserForGenre/{genre} [get]
func (h *Handler) LegacyUserForGenre(w http.ResponseWriter, r *http.Request) {
	genre, ok := h.genreParam(w, r)
	if !ok {
		return
	}
	NewLegacyQueryExecutor(h).Execute(w, r, OpTopUserByGenre, genre, topUserQuery(genre))
}

// LegacyUsersRecommend serves /UsersRecommend/{year}.
//
// @Summary Top 3 recommended games for a posting year (legacy)
// @Tags Legacy
// @Produce json
// @Param year path integer true "Posting year"
// @Success 200 {array} map[string]int "Up to three ranked records"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Router /UsersRecommend/{year} [get]
func (h *Handler) LegacyUsersRecommend(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewLegacyQueryExecutor(h).Execute(w, r, OpTopRecommendedByYear, year, recommendedQuery(year))
}

// LegacyUsersNotRecommend serves /UsersNotRecommend/{year}.
//
// @Summary Top 3 not-recommended games for a posting year (legacy)
// @Tags Legacy
// @Produce json
// @Param year path integer true "Posting year"
// @Success 200 {array} map[string]int "Up to three ranked records"
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Router /UsersNotRecommend/{year} [get]
func (h *Handler) LegacyUsersNotRecommend(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewLegacyQueryExecutor(h).Execute(w, r, OpTopNotRecommendedByYear, year, notRecommendedQuery(year))
}

// LegacySentimentAnalysis serves /sentiment_analysis/{year}.
//
// @Summary Review sentiment counts for a release year (legacy)
// @Tags Legacy
// @Produce json
// @Param year path integer true "Release year"
// @Success 200 {object} models.SentimentTally
// @Failure 400 {object} models.APIResponse "Invalid year"
// @Router /sentiment_analysis/{year} [get]
func (h *Handler) LegacySentimentAnalysis(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	NewLegacyQueryExecutor(h).Execute(w, r, OpSentimentTally, year, sentimentQuery(year))
}
