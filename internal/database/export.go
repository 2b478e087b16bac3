// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/models"
)

// Export formats accepted by ExportDataset.
const (
	FormatParquet = "parquet"
	FormatCSV     = "csv"
	FormatJSON    = "json"
)

// Base file names written by ExportDataset. They match the default
// data.*_file settings so an exported directory can be served as-is.
const (
	PlaytimeGenreBase = "playtime_genre"
	UserGenreBase     = "user_for_genre"
	UserReviewsBase   = "user_recommend"
	SentimentYearBase = "sentiment_year"
)

// exportTable describes one staging table and how to fill it.
type exportTable struct {
	name   string
	base   string
	schema string
	insert string
	rows   int
	args   func(i int) []any
}

// ExportDataset writes ds to dir as four files in format, using the same
// column names the loader reads. It returns the written paths in table order.
func (db *DB) ExportDataset(ctx context.Context, ds *models.Dataset, dir, format string) ([]string, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	copyOpts, ext, err := copyOptions(format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	tables := []exportTable{
		{
			name:   TablePlaytimeByGenre,
			base:   PlaytimeGenreBase,
			schema: "genres VARCHAR, release_year INTEGER, playtime_forever DOUBLE",
			insert: "INSERT INTO %s VALUES (?, ?, ?)",
			rows:   len(ds.PlaytimeByGenre),
			args: func(i int) []any {
				r := ds.PlaytimeByGenre[i]
				return []any{r.Genre, r.ReleaseYear, r.PlaytimeForever}
			},
		},
		{
			name:   TableUserGenrePlaytime,
			base:   UserGenreBase,
			schema: "genres VARCHAR, user_id VARCHAR, release_year INTEGER, playtime_hours DOUBLE",
			insert: "INSERT INTO %s VALUES (?, ?, ?, ?)",
			rows:   len(ds.UserGenrePlaytime),
			args: func(i int) []any {
				r := ds.UserGenrePlaytime[i]
				return []any{r.Genre, r.UserID, r.ReleaseYear, r.PlaytimeHours}
			},
		},
		{
			name:   TableUserReviews,
			base:   UserReviewsBase,
			schema: "item_name VARCHAR, posted INTEGER, recommend BOOLEAN, sentiment_analysis INTEGER",
			insert: "INSERT INTO %s VALUES (?, ?, ?, ?)",
			rows:   len(ds.UserReviews),
			args: func(i int) []any {
				r := ds.UserReviews[i]
				return []any{r.ItemName, r.PostedYear, r.Recommend, r.Sentiment}
			},
		},
		{
			name:   TableSentimentByYear,
			base:   SentimentYearBase,
			schema: "release_year INTEGER, sentiment_analysis INTEGER",
			insert: "INSERT INTO %s VALUES (?, ?)",
			rows:   len(ds.SentimentByYear),
			args: func(i int) []any {
				r := ds.SentimentByYear[i]
				return []any{r.ReleaseYear, r.Sentiment}
			},
		},
	}

	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, t.base+ext)
		if err := db.exportTable(ctx, t, path, copyOpts); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	logging.Info().
		Str("dir", dir).
		Str("format", format).
		Int("rows", ds.Counts().Total()).
		Msg("Dataset exported")

	return paths, nil
}

func (db *DB) exportTable(ctx context.Context, t exportTable, path, copyOpts string) error {
	staging := "export_" + t.name

	if _, err := db.conn.ExecContext(ctx, fmt.Sprintf("CREATE OR REPLACE TABLE %s (%s)", staging, t.schema)); err != nil {
		return fmt.Errorf("%s: failed to create staging table: %w", t.name, err)
	}
	defer func() {
		if _, err := db.conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+staging); err != nil {
			logging.Warn().Err(err).Str("table", staging).Msg("Failed to drop staging table")
		}
	}()

	if err := db.fillTable(ctx, t, staging); err != nil {
		return err
	}

	copyQuery := fmt.Sprintf("COPY (SELECT * FROM %s ORDER BY rowid) TO %s (%s)", staging, quoteLiteral(path), copyOpts)
	if _, err := db.conn.ExecContext(ctx, copyQuery); err != nil {
		return fmt.Errorf("%s: failed to export to %s: %w", t.name, path, err)
	}
	return nil
}

func (db *DB) fillTable(ctx context.Context, t exportTable, staging string) (err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", t.name, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				logging.Warn().Err(rbErr).Str("table", t.name).Msg("Failed to roll back export")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(t.insert, staging))
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert: %w", t.name, err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for i := 0; i < t.rows; i++ {
		if _, err = stmt.ExecContext(ctx, t.args(i)...); err != nil {
			return fmt.Errorf("%s: failed to insert row %d: %w", t.name, i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", t.name, err)
	}
	return nil
}

// copyOptions returns the COPY options and file extension for format.
func copyOptions(format string) (string, string, error) {
	switch format {
	case FormatParquet, "":
		return "FORMAT PARQUET, COMPRESSION 'ZSTD'", ".parquet", nil
	case FormatCSV:
		return "FORMAT CSV, HEADER true", ".csv", nil
	case FormatJSON:
		return "FORMAT JSON", ".ndjson", nil
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
