// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package models

// PlaytimeGenreRow is one row of the playtime-by-genre table: total minutes
// played for a game of a given genre released in a given year.
//
// Source columns: genres, release_year, playtime_forever.
type PlaytimeGenreRow struct {
	Genre           string  `json:"genre"`
	ReleaseYear     int     `json:"release_year"`
	PlaytimeForever float64 `json:"playtime_forever"`
}

// UserGenreRow is one row of the user-genre playtime table. The same
// (genre, user, year) combination may appear more than once.
//
// Source columns: genres, user_id, release_year, playtime_hours.
type UserGenreRow struct {
	Genre         string  `json:"genre"`
	UserID        string  `json:"user_id"`
	ReleaseYear   int     `json:"release_year"`
	PlaytimeHours float64 `json:"playtime_hours"`
}

// UserReviewRow is one user review.
//
// Source columns: item_name, posted, recommend, sentiment_analysis.
type UserReviewRow struct {
	ItemName   string `json:"item_name"`
	PostedYear int    `json:"posted_year"`
	Recommend  bool   `json:"recommend"`
	Sentiment  int    `json:"sentiment_analysis"`
}

// SentimentYearRow is one sentiment observation tied to a release year.
//
// Source columns: release_year, sentiment_analysis.
type SentimentYearRow struct {
	ReleaseYear int `json:"release_year"`
	Sentiment   int `json:"sentiment_analysis"`
}

// Sentiment classes as produced by the upstream review classifier.
const (
	SentimentNegative = 0
	SentimentNeutral  = 1
	SentimentPositive = 2
)

// ValidSentiment reports whether s is one of the three sentiment classes.
func ValidSentiment(s int) bool {
	return s >= SentimentNegative && s <= SentimentPositive
}

// Dataset holds the four immutable tables the query engine reads. It is
// built once at startup and never modified afterwards, so it can be shared by
// any number of concurrent readers.
type Dataset struct {
	PlaytimeByGenre   []PlaytimeGenreRow
	UserGenrePlaytime []UserGenreRow
	UserReviews       []UserReviewRow
	SentimentByYear   []SentimentYearRow
}

// DatasetCounts reports the number of rows per table.
type DatasetCounts struct {
	PlaytimeByGenre   int `json:"playtime_by_genre"`
	UserGenrePlaytime int `json:"user_genre_playtime"`
	UserReviews       int `json:"user_reviews"`
	SentimentByYear   int `json:"sentiment_by_year"`
}

// Total returns the number of rows across all tables.
func (c DatasetCounts) Total() int {
	return c.PlaytimeByGenre + c.UserGenrePlaytime + c.UserReviews + c.SentimentByYear
}

// Counts returns the row count of every table. A nil dataset has no rows.
func (d *Dataset) Counts() DatasetCounts {
	if d == nil {
		return DatasetCounts{}
	}
	return DatasetCounts{
		PlaytimeByGenre:   len(d.PlaytimeByGenre),
		UserGenrePlaytime: len(d.UserGenrePlaytime),
		UserReviews:       len(d.UserReviews),
		SentimentByYear:   len(d.SentimentByYear),
	}
}
