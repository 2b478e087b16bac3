// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/steamlens/internal/models"
	"github.com/tomtom215/steamlens/internal/validation"
)

func newTopYearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "top-year <genre>",
		Short:   "Release year with the most hours played for a genre",
		Example: "  steamlens top-year Action\n  steamlens top-year rpg -o json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			genre, verr := validation.ParseGenre(args[0], s.limits)
			if verr != nil {
				return verr
			}

			res := s.engine.TopYearByGenre(genre)
			return render(cmd, opts, res, func(t *table) {
				if !res.Found {
					t.line(fmt.Sprintf("No data available for genre %s", res.Genre))
					return
				}
				t.header("GENRE", "YEAR")
				t.row(res.Genre, strconv.Itoa(res.Year))
			})
		},
	}
}

func newTopUserCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "top-user <genre>",
		Short:   "User with the most hours played for a genre, with hours per year",
		Example: "  steamlens top-user Action",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			genre, verr := validation.ParseGenre(args[0], s.limits)
			if verr != nil {
				return verr
			}

			res := s.engine.TopUserByGenre(genre)
			return render(cmd, opts, res, func(t *table) {
				if !res.Found {
					t.line(fmt.Sprintf("No data available for genre %s", res.Genre))
					return
				}
				t.line(fmt.Sprintf("Top user for %s: %s", res.Genre, res.UserID))
				t.header("YEAR", "HOURS")
				for _, yh := range res.HoursByYear {
					t.row(strconv.Itoa(yh.Year), strconv.FormatFloat(yh.Hours, 'f', -1, 64))
				}
			})
		},
	}
}

func newRecommendedCmd(opts *options) *cobra.Command {
	return newRankedCmd(opts, "recommended <year>",
		"Top three most recommended games for a review year",
		func(s *session, year int) []models.RankedItem { return s.engine.TopRecommendedByYear(year) })
}

func newNotRecommendedCmd(opts *options) *cobra.Command {
	return newRankedCmd(opts, "not-recommended <year>",
		"Top three least recommended games for a review year",
		func(s *session, year int) []models.RankedItem { return s.engine.TopNotRecommendedByYear(year) })
}

func newRankedCmd(opts *options, use, short string, rank func(*session, int) []models.RankedItem) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			year, verr := validation.ParseYear(args[0], s.limits)
			if verr != nil {
				return verr
			}

			items := rank(s, year)
			return render(cmd, opts, items, func(t *table) {
				if len(items) == 0 {
					t.line(fmt.Sprintf("No reviews for %d", year))
					return
				}
				t.header("POSITION", "GAME", "REVIEWS")
				for _, it := range items {
					t.row(strconv.Itoa(it.Position), it.ItemName, strconv.Itoa(it.Count))
				}
			})
		},
	}
}

func newSentimentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "sentiment <year>",
		Short:   "Count of negative, neutral, and positive reviews for a release year",
		Example: "  steamlens sentiment 2015",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			year, verr := validation.ParseYear(args[0], s.limits)
			if verr != nil {
				return verr
			}

			res := s.engine.SentimentTally(year)
			return render(cmd, opts, res, func(t *table) {
				t.header("NEGATIVE", "NEUTRAL", "POSITIVE", "TOTAL")
				t.row(strconv.Itoa(res.Negative), strconv.Itoa(res.Neutral),
					strconv.Itoa(res.Positive), strconv.Itoa(res.Total()))
			})
		},
	}
}

func newGenresCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the genres present in the playtime table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			genres := s.engine.Genres()
			return render(cmd, opts, genres, func(t *table) {
				t.header("GENRE")
				for _, g := range genres {
					t.row(g)
				}
			})
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dataset source and row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			counts := s.load.Dataset.Counts()
			stats := models.DatasetStats{
				Rows:       counts,
				TotalRows:  counts.Total(),
				Source:     s.load.Source,
				LoadedAt:   s.load.LoadedAt,
				LoadTimeMS: s.load.Duration.Milliseconds(),
			}
			return render(cmd, opts, stats, func(t *table) {
				t.line("Source: " + stats.Source)
				t.header("TABLE", "ROWS")
				t.row("playtime_by_genre", strconv.Itoa(counts.PlaytimeByGenre))
				t.row("user_genre_playtime", strconv.Itoa(counts.UserGenrePlaytime))
				t.row("user_reviews", strconv.Itoa(counts.UserReviews))
				t.row("sentiment_by_year", strconv.Itoa(counts.SentimentByYear))
				t.row("total", strconv.Itoa(stats.TotalRows))
			})
		},
	}
}
