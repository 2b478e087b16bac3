// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
	"github.com/tomtom215/steamlens/internal/models"
)

// Logical table names, used in logs, metrics and errors.
const (
	TablePlaytimeByGenre   = "playtime_by_genre"
	TableUserGenrePlaytime = "user_genre_playtime"
	TableUserReviews       = "user_reviews"
	TableSentimentByYear   = "sentiment_by_year"
)

// Source columns, cast to the model types. Column names follow the upstream
// Steam dataset exports.
const (
	playtimeGenreColumns = `CAST(genres AS VARCHAR), CAST(release_year AS INTEGER), CAST(playtime_forever AS DOUBLE)`
	userGenreColumns     = `CAST(genres AS VARCHAR), CAST(user_id AS VARCHAR), CAST(release_year AS INTEGER), CAST(playtime_hours AS DOUBLE)`
	userReviewsColumns   = `CAST(item_name AS VARCHAR), CAST(posted AS INTEGER), CAST(recommend AS BOOLEAN), CAST(sentiment_analysis AS INTEGER)`
	sentimentYearColumns = `CAST(release_year AS INTEGER), CAST(sentiment_analysis AS INTEGER)`
)

// SourceSeed marks a dataset built from SeedDataset rather than files.
const SourceSeed = "seed"

// LoadResult is a loaded dataset plus provenance.
type LoadResult struct {
	Dataset  *models.Dataset
	Source   string // data directory, or SourceSeed
	LoadedAt time.Time
	Duration time.Duration
}

// Open produces the dataset described by cfg: the built-in seed when
// SeedMockData is set, otherwise the four configured files read through a
// short-lived DuckDB instance.
func Open(ctx context.Context, cfg *config.DataConfig) (*LoadResult, error) {
	start := time.Now()

	if cfg.SeedMockData {
		ds := SeedDataset()
		res := &LoadResult{Dataset: ds, Source: SourceSeed, LoadedAt: time.Now(), Duration: time.Since(start)}
		recordLoad(res)
		loaderLog := logging.WithComponent("loader")
		loaderLog.Warn().Int("rows", ds.Counts().Total()).Msg("Serving built-in demo dataset (SEED_MOCK_DATA=true)")
		return res, nil
	}

	db, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defer closeWithLog(db, "duckdb")

	ds, err := db.LoadDataset(ctx)
	if err != nil {
		return nil, err
	}

	source := cfg.Dir
	if source == "" {
		source = "."
	}
	res := &LoadResult{Dataset: ds, Source: source, LoadedAt: time.Now(), Duration: time.Since(start)}
	recordLoad(res)
	return res, nil
}

func recordLoad(res *LoadResult) {
	c := res.Dataset.Counts()
	metrics.RecordDatasetLoad(res.Source, map[string]int{
		TablePlaytimeByGenre:   c.PlaytimeByGenre,
		TableUserGenrePlaytime: c.UserGenrePlaytime,
		TableUserReviews:       c.UserReviews,
		TableSentimentByYear:   c.SentimentByYear,
	}, res.Duration)
}

// LoadDataset reads all four tables from the files configured for db.
func (db *DB) LoadDataset(ctx context.Context) (*models.Dataset, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	ds := &models.Dataset{}
	var err error

	if ds.PlaytimeByGenre, err = db.LoadPlaytimeByGenre(ctx, db.cfg.PlaytimeGenrePath()); err != nil {
		return nil, err
	}
	if ds.UserGenrePlaytime, err = db.LoadUserGenrePlaytime(ctx, db.cfg.UserGenrePath()); err != nil {
		return nil, err
	}
	if ds.UserReviews, err = db.LoadUserReviews(ctx, db.cfg.UserReviewsPath()); err != nil {
		return nil, err
	}
	if ds.SentimentByYear, err = db.LoadSentimentByYear(ctx, db.cfg.SentimentYearPath()); err != nil {
		return nil, err
	}

	c := ds.Counts()
	loaderLog := logging.WithComponent("loader")
	loaderLog.Info().
		Int(TablePlaytimeByGenre, c.PlaytimeByGenre).
		Int(TableUserGenrePlaytime, c.UserGenrePlaytime).
		Int(TableUserReviews, c.UserReviews).
		Int(TableSentimentByYear, c.SentimentByYear).
		Msg("Dataset loaded")

	return ds, nil
}

// LoadPlaytimeByGenre reads the playtime-by-genre table from path.
func (db *DB) LoadPlaytimeByGenre(ctx context.Context, path string) ([]models.PlaytimeGenreRow, error) {
	var out []models.PlaytimeGenreRow
	err := db.scanTable(ctx, TablePlaytimeByGenre, path, playtimeGenreColumns, func(row int, rows *sql.Rows) error {
		var (
			genre    sql.NullString
			year     sql.NullInt64
			playtime sql.NullFloat64
		)
		if err := rows.Scan(&genre, &year, &playtime); err != nil {
			return err
		}
		if !genre.Valid || !year.Valid || !playtime.Valid {
			return invalidRow(TablePlaytimeByGenre, row, "NULL in genres, release_year or playtime_forever")
		}
		if playtime.Float64 < 0 {
			return invalidRow(TablePlaytimeByGenre, row, "negative playtime_forever %v", playtime.Float64)
		}
		out = append(out, models.PlaytimeGenreRow{
			Genre:           genre.String,
			ReleaseYear:     int(year.Int64),
			PlaytimeForever: playtime.Float64,
		})
		return nil
	})
	return out, err
}

// LoadUserGenrePlaytime reads the user-genre playtime table from path.
func (db *DB) LoadUserGenrePlaytime(ctx context.Context, path string) ([]models.UserGenreRow, error) {
	var out []models.UserGenreRow
	err := db.scanTable(ctx, TableUserGenrePlaytime, path, userGenreColumns, func(row int, rows *sql.Rows) error {
		var (
			genre, user sql.NullString
			year        sql.NullInt64
			hours       sql.NullFloat64
		)
		if err := rows.Scan(&genre, &user, &year, &hours); err != nil {
			return err
		}
		if !genre.Valid || !user.Valid || !year.Valid || !hours.Valid {
			return invalidRow(TableUserGenrePlaytime, row, "NULL in genres, user_id, release_year or playtime_hours")
		}
		if hours.Float64 < 0 {
			return invalidRow(TableUserGenrePlaytime, row, "negative playtime_hours %v", hours.Float64)
		}
		out = append(out, models.UserGenreRow{
			Genre:         genre.String,
			UserID:        user.String,
			ReleaseYear:   int(year.Int64),
			PlaytimeHours: hours.Float64,
		})
		return nil
	})
	return out, err
}

// LoadUserReviews reads the user reviews table from path.
func (db *DB) LoadUserReviews(ctx context.Context, path string) ([]models.UserReviewRow, error) {
	var out []models.UserReviewRow
	err := db.scanTable(ctx, TableUserReviews, path, userReviewsColumns, func(row int, rows *sql.Rows) error {
		var (
			item      sql.NullString
			posted    sql.NullInt64
			recommend sql.NullBool
			sentiment sql.NullInt64
		)
		if err := rows.Scan(&item, &posted, &recommend, &sentiment); err != nil {
			return err
		}
		if !item.Valid || !posted.Valid || !recommend.Valid || !sentiment.Valid {
			return invalidRow(TableUserReviews, row, "NULL in item_name, posted, recommend or sentiment_analysis")
		}
		if !models.ValidSentiment(int(sentiment.Int64)) {
			return invalidRow(TableUserReviews, row, "sentiment_analysis %d not in {0,1,2}", sentiment.Int64)
		}
		out = append(out, models.UserReviewRow{
			ItemName:   item.String,
			PostedYear: int(posted.Int64),
			Recommend:  recommend.Bool,
			Sentiment:  int(sentiment.Int64),
		})
		return nil
	})
	return out, err
}

// LoadSentimentByYear reads the sentiment-by-year table from path.
func (db *DB) LoadSentimentByYear(ctx context.Context, path string) ([]models.SentimentYearRow, error) {
	var out []models.SentimentYearRow
	err := db.scanTable(ctx, TableSentimentByYear, path, sentimentYearColumns, func(row int, rows *sql.Rows) error {
		var year, sentiment sql.NullInt64
		if err := rows.Scan(&year, &sentiment); err != nil {
			return err
		}
		if !year.Valid || !sentiment.Valid {
			return invalidRow(TableSentimentByYear, row, "NULL in release_year or sentiment_analysis")
		}
		if !models.ValidSentiment(int(sentiment.Int64)) {
			return invalidRow(TableSentimentByYear, row, "sentiment_analysis %d not in {0,1,2}", sentiment.Int64)
		}
		out = append(out, models.SentimentYearRow{
			ReleaseYear: int(year.Int64),
			Sentiment:   int(sentiment.Int64),
		})
		return nil
	})
	return out, err
}

// scanTable runs SELECT columns FROM <reader>(path) and calls scan for every
// row in file order.
func (db *DB) scanTable(ctx context.Context, table, path, columns string, scan func(row int, rows *sql.Rows) error) error {
	src, err := sourceExpr(path)
	if err != nil {
		return fmt.Errorf("%s: %w", table, err)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w: %s", table, ErrSourceNotFound, path)
		}
		return fmt.Errorf("%s: stat %s: %w", table, path, err)
	}

	start := time.Now()
	query := "SELECT " + columns + " FROM " + src

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to read %s: %w", table, path, err)
	}
	defer closeWithLog(rows, "rows")

	n := 0
	for rows.Next() {
		n++
		if err := scan(n, rows); err != nil {
			var rowErr *RowError
			if errors.As(err, &rowErr) {
				return err
			}
			return fmt.Errorf("%s: failed to scan row %d: %w", table, n, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: failed to read %s: %w", table, path, err)
	}

	loaderLog := logging.WithComponent("loader")
	loaderLog.Debug().
		Str("table", table).
		Str("path", path).
		Int("rows", n).
		Dur("duration", time.Since(start)).
		Msg("Table loaded")
	return nil
}

// sourceExpr returns the DuckDB table function reading path, chosen by extension.
func sourceExpr(path string) (string, error) {
	lit := quoteLiteral(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return "read_parquet(" + lit + ")", nil
	case ".csv":
		return "read_csv_auto(" + lit + ", header = true)", nil
	case ".tsv":
		return "read_csv_auto(" + lit + ", header = true, delim = '\t')", nil
	case ".json", ".ndjson":
		return "read_json_auto(" + lit + ")", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// quoteLiteral renders s as a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
