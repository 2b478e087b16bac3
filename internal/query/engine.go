// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package query answers the five fixed questions over the loaded dataset:
// top release year per genre, top user per genre, top recommended and not
// recommended games per posting year, and the sentiment tally per release year.
//
// An Engine is built once from an immutable models.Dataset and never mutates
// it. All methods are pure, synchronous and safe for concurrent use.
//
// Ties are resolved deterministically: the first row (or the first user, or
// the first game) encountered in table order wins.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/steamlens/internal/models"
)

// TopN is the number of games returned by the ranking queries.
const TopN = 3

// Engine evaluates queries against a dataset. Rows are pre-indexed by
// lower-cased genre and by year, preserving table order inside each bucket.
type Engine struct {
	ds *models.Dataset

	playtimeByGenre map[string][]int
	userByGenre     map[string][]int
	reviewsByYear   map[int][]int
	sentimentByYear map[int][]int
	genres          []string
}

// New builds an engine over ds. A nil dataset behaves as four empty tables.
func New(ds *models.Dataset) *Engine {
	if ds == nil {
		ds = &models.Dataset{}
	}
	e := &Engine{
		ds:              ds,
		playtimeByGenre: make(map[string][]int),
		userByGenre:     make(map[string][]int),
		reviewsByYear:   make(map[int][]int),
		sentimentByYear: make(map[int][]int),
	}

	seen := make(map[string]bool)
	for i, r := range ds.PlaytimeByGenre {
		key := strings.ToLower(r.Genre)
		e.playtimeByGenre[key] = append(e.playtimeByGenre[key], i)
		if !seen[key] {
			seen[key] = true
			e.genres = append(e.genres, r.Genre)
		}
	}
	for i, r := range ds.UserGenrePlaytime {
		key := strings.ToLower(r.Genre)
		e.userByGenre[key] = append(e.userByGenre[key], i)
	}
	for i, r := range ds.UserReviews {
		e.reviewsByYear[r.PostedYear] = append(e.reviewsByYear[r.PostedYear], i)
	}
	for i, r := range ds.SentimentByYear {
		e.sentimentByYear[r.ReleaseYear] = append(e.sentimentByYear[r.ReleaseYear], i)
	}
	return e
}

// Dataset returns the underlying dataset.
func (e *Engine) Dataset() *models.Dataset {
	return e.ds
}

// Genres returns the distinct genres of the playtime table in first-seen order.
func (e *Engine) Genres() []string {
	out := make([]string, len(e.genres))
	copy(out, e.genres)
	return out
}

// NormalizeGenre lower-cases a genre argument. Anything that is not a string
// cannot match a genre and reports false.
func NormalizeGenre(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.ToLower(s), true
}

// genreLabel is the genre as the caller spelled it, used in result labels.
func genreLabel(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return "None"
	}
	return fmt.Sprint(v)
}

// TopYearByGenre returns the release year of the playtime row with the most
// hours for genre. When no row matches, the result has Found set to false.
func (e *Engine) TopYearByGenre(genre any) models.GenreYear {
	res := models.GenreYear{Genre: genreLabel(genre)}

	key, ok := NormalizeGenre(genre)
	if !ok {
		return res
	}

	var best float64
	for _, i := range e.playtimeByGenre[key] {
		r := e.ds.PlaytimeByGenre[i]
		if !res.Found || r.PlaytimeForever > best {
			best = r.PlaytimeForever
			res.Year = r.ReleaseYear
			res.Found = true
		}
	}
	return res
}

// TopUserByGenre returns the user with the largest total hours for genre and
// that user's hours per release year.
//
// The per-year breakdown takes, for every year, the hours of the last row seen
// for that year rather than their sum.
func (e *Engine) TopUserByGenre(genre any) models.GenreTopUser {
	res := models.GenreTopUser{Genre: genreLabel(genre), HoursByYear: []models.YearHours{}}

	key, ok := NormalizeGenre(genre)
	if !ok {
		return res
	}
	rows := e.userByGenre[key]
	if len(rows) == 0 {
		return res
	}

	totals := make(map[string]float64)
	var order []string
	for _, i := range rows {
		r := e.ds.UserGenrePlaytime[i]
		if _, seen := totals[r.UserID]; !seen {
			order = append(order, r.UserID)
		}
		totals[r.UserID] += r.PlaytimeHours
	}

	top := order[0]
	for _, u := range order[1:] {
		if totals[u] > totals[top] {
			top = u
		}
	}
	res.UserID = top
	res.Found = true

	pos := make(map[int]int)
	for _, i := range rows {
		r := e.ds.UserGenrePlaytime[i]
		if r.UserID != top {
			continue
		}
		if p, seen := pos[r.ReleaseYear]; seen {
			res.HoursByYear[p].Hours = r.PlaytimeHours
			continue
		}
		pos[r.ReleaseYear] = len(res.HoursByYear)
		res.HoursByYear = append(res.HoursByYear, models.YearHours{Year: r.ReleaseYear, Hours: r.PlaytimeHours})
	}
	return res
}

// TopRecommendedByYear returns up to three games with the most reviews posted
// in year that recommend the game and carry neutral or positive sentiment.
func (e *Engine) TopRecommendedByYear(year int) []models.RankedItem {
	return e.rankReviews(year, func(r models.UserReviewRow) bool {
		return r.Recommend && (r.Sentiment == models.SentimentNeutral || r.Sentiment == models.SentimentPositive)
	})
}

// TopNotRecommendedByYear returns up to three games with the most reviews
// posted in year that do not recommend the game and carry negative sentiment.
func (e *Engine) TopNotRecommendedByYear(year int) []models.RankedItem {
	return e.rankReviews(year, func(r models.UserReviewRow) bool {
		return !r.Recommend && r.Sentiment == models.SentimentNegative
	})
}

func (e *Engine) rankReviews(year int, keep func(models.UserReviewRow) bool) []models.RankedItem {
	counts := make(map[string]int)
	var order []string
	for _, i := range e.reviewsByYear[year] {
		r := e.ds.UserReviews[i]
		if !keep(r) {
			continue
		}
		if _, seen := counts[r.ItemName]; !seen {
			order = append(order, r.ItemName)
		}
		counts[r.ItemName]++
	}

	// Stable so that equal counts keep first-seen order.
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	n := min(len(order), TopN)
	items := make([]models.RankedItem, 0, n)
	for k := 0; k < n; k++ {
		items = append(items, models.RankedItem{
			Position: k + 1,
			ItemName: order[k],
			Count:    counts[order[k]],
		})
	}
	return items
}

// SentimentTally counts the sentiment rows of a release year per class.
// Values outside the three classes are ignored.
func (e *Engine) SentimentTally(year int) models.SentimentTally {
	var t models.SentimentTally
	for _, i := range e.sentimentByYear[year] {
		switch e.ds.SentimentByYear[i].Sentiment {
		case models.SentimentNegative:
			t.Negative++
		case models.SentimentNeutral:
			t.Neutral++
		case models.SentimentPositive:
			t.Positive++
		}
	}
	return t
}
