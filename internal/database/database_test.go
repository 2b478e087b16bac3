// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/models"
)

// dbSemaphore caps concurrent DuckDB instances across parallel tests.
var dbSemaphore = make(chan struct{}, 4)

// setupTestDB opens an in-memory DuckDB reading from dir.
func setupTestDB(t *testing.T, dir string) *DB {
	t.Helper()

	dbSemaphore <- struct{}{}
	t.Cleanup(func() { <-dbSemaphore })

	cfg := &config.DataConfig{
		Dir:               dir,
		PlaytimeGenreFile: PlaytimeGenreBase + ".parquet",
		UserGenreFile:     UserGenreBase + ".parquet",
		UserReviewsFile:   UserReviewsBase + ".parquet",
		SentimentYearFile: SentimentYearBase + ".parquet",
		MaxMemory:         "256MB",
		Threads:           2,
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { closeWithLog(db, "duckdb") })
	return db
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestSeedDataset(t *testing.T) {
	t.Parallel()

	ds := SeedDataset()
	c := ds.Counts()
	if c.PlaytimeByGenre == 0 || c.UserGenrePlaytime == 0 || c.UserReviews == 0 || c.SentimentByYear == 0 {
		t.Fatalf("seed has an empty table: %+v", c)
	}

	if !reflect.DeepEqual(ds, SeedDataset()) {
		t.Error("SeedDataset() is not deterministic")
	}

	seen := map[int]bool{}
	for _, r := range ds.UserReviews {
		if !models.ValidSentiment(r.Sentiment) {
			t.Fatalf("review sentiment %d out of range", r.Sentiment)
		}
		seen[r.Sentiment] = true
	}
	for _, s := range []int{models.SentimentNegative, models.SentimentNeutral, models.SentimentPositive} {
		if !seen[s] {
			t.Errorf("seed reviews never use sentiment %d", s)
		}
	}
	for _, r := range ds.UserGenrePlaytime {
		if r.PlaytimeHours < 0 {
			t.Fatalf("negative playtime for %s", r.UserID)
		}
	}
}

func TestExportLoadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		ext    string
	}{
		{FormatParquet, ".parquet"},
		{FormatCSV, ".csv"},
		{FormatJSON, ".ndjson"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			db := setupTestDB(t, dir)
			ctx := testContext(t)
			seed := SeedDataset()

			paths, err := db.ExportDataset(ctx, seed, dir, tt.format)
			if err != nil {
				t.Fatalf("ExportDataset() error = %v", err)
			}
			if len(paths) != 4 {
				t.Fatalf("ExportDataset() wrote %d files, want 4", len(paths))
			}
			for _, p := range paths {
				if filepath.Ext(p) != tt.ext {
					t.Errorf("path %s, want extension %s", p, tt.ext)
				}
			}

			db.cfg.PlaytimeGenreFile = PlaytimeGenreBase + tt.ext
			db.cfg.UserGenreFile = UserGenreBase + tt.ext
			db.cfg.UserReviewsFile = UserReviewsBase + tt.ext
			db.cfg.SentimentYearFile = SentimentYearBase + tt.ext

			got, err := db.LoadDataset(ctx)
			if err != nil {
				t.Fatalf("LoadDataset() error = %v", err)
			}
			if !reflect.DeepEqual(got, seed) {
				t.Errorf("round trip mismatch: got counts %+v, want %+v", got.Counts(), seed.Counts())
			}
		})
	}
}

func TestLoadPreservesFileOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := setupTestDB(t, dir)
	path := writeFile(t, dir, "playtime.csv", "genres,release_year,playtime_forever\n"+
		"RPG,2015,10\nAction,2001,5\nRPG,2011,10\nRPG,2015,3\n")

	rows, err := db.LoadPlaytimeByGenre(testContext(t), path)
	if err != nil {
		t.Fatalf("LoadPlaytimeByGenre() error = %v", err)
	}
	want := []models.PlaytimeGenreRow{
		{Genre: "RPG", ReleaseYear: 2015, PlaytimeForever: 10},
		{Genre: "Action", ReleaseYear: 2001, PlaytimeForever: 5},
		{Genre: "RPG", ReleaseYear: 2011, PlaytimeForever: 10},
		{Genre: "RPG", ReleaseYear: 2015, PlaytimeForever: 3},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestLoadTSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := setupTestDB(t, dir)
	path := writeFile(t, dir, "sentiment.tsv", "release_year\tsentiment_analysis\n2010\t2\n2010\t0\n")

	rows, err := db.LoadSentimentByYear(testContext(t), path)
	if err != nil {
		t.Fatalf("LoadSentimentByYear() error = %v", err)
	}
	if len(rows) != 2 || rows[0].Sentiment != 2 || rows[1].Sentiment != 0 {
		t.Errorf("rows = %+v", rows)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := setupTestDB(t, dir)
	ctx := testContext(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := db.LoadUserReviews(ctx, filepath.Join(dir, "nope.parquet"))
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("error = %v, want ErrSourceNotFound", err)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeFile(t, dir, "reviews.xlsx", "whatever")
		_, err := db.LoadUserReviews(ctx, path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("negative hours", func(t *testing.T) {
		path := writeFile(t, dir, "users.csv", "genres,user_id,release_year,playtime_hours\n"+
			"RPG,alice,2010,4\nRPG,bob,2011,-1\n")
		_, err := db.LoadUserGenrePlaytime(ctx, path)
		if !errors.Is(err, ErrInvalidRow) {
			t.Fatalf("error = %v, want ErrInvalidRow", err)
		}
		var rowErr *RowError
		if !errors.As(err, &rowErr) || rowErr.Row != 2 || rowErr.Table != TableUserGenrePlaytime {
			t.Errorf("RowError = %+v, want row 2 of %s", rowErr, TableUserGenrePlaytime)
		}
	})

	t.Run("sentiment out of range", func(t *testing.T) {
		path := writeFile(t, dir, "reviews.csv", "item_name,posted,recommend,sentiment_analysis\n"+
			"Portal 2,2011,true,5\n")
		_, err := db.LoadUserReviews(ctx, path)
		if !errors.Is(err, ErrInvalidRow) {
			t.Errorf("error = %v, want ErrInvalidRow", err)
		}
	})

	t.Run("null value", func(t *testing.T) {
		path := writeFile(t, dir, "playtime_null.csv", "genres,release_year,playtime_forever\n"+
			"Action,2010,5\nAction,,10\n")
		_, err := db.LoadPlaytimeByGenre(ctx, path)
		if !errors.Is(err, ErrInvalidRow) {
			t.Errorf("error = %v, want ErrInvalidRow", err)
		}
	})
}

func TestExportDataset_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db := setupTestDB(t, dir)
	_, err := db.ExportDataset(testContext(t), SeedDataset(), dir, "xml")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("seed", func(t *testing.T) {
		t.Parallel()
		res, err := Open(testContext(t), &config.DataConfig{SeedMockData: true})
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if res.Source != SourceSeed {
			t.Errorf("Source = %q, want %q", res.Source, SourceSeed)
		}
		if res.Dataset.Counts().Total() != SeedDataset().Counts().Total() {
			t.Error("seeded Open returned a different dataset")
		}
	})

	t.Run("files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		db := setupTestDB(t, dir)
		if _, err := db.ExportDataset(testContext(t), SeedDataset(), dir, FormatParquet); err != nil {
			t.Fatalf("ExportDataset() error = %v", err)
		}

		res, err := Open(testContext(t), db.cfg)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if res.Source != dir {
			t.Errorf("Source = %q, want %q", res.Source, dir)
		}
		if got := res.Dataset.Counts(); got != SeedDataset().Counts() {
			t.Errorf("Counts() = %+v", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		cfg := &config.DataConfig{
			Dir:               filepath.Join(t.TempDir(), "absent"),
			PlaytimeGenreFile: "playtime_genre.parquet",
			UserGenreFile:     "user_for_genre.parquet",
			UserReviewsFile:   "user_recommend.parquet",
			SentimentYearFile: "sentiment_year.parquet",
			Threads:           1,
		}
		_, err := Open(testContext(t), cfg)
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("error = %v, want ErrSourceNotFound", err)
		}
		if err != nil && !strings.Contains(err.Error(), TablePlaytimeByGenre) {
			t.Errorf("error %q should name the first table", err)
		}
	})
}
