// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package database reads the four Steam datasets through an in-memory DuckDB
// instance. DuckDB scans parquet, CSV and JSON files directly, so the loader
// only selects and casts the expected columns, validates every row and hands
// an immutable models.Dataset to the query engine. The database is not used
// once loading has finished.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/steamlens/internal/config"
)

// defaultOpTimeout bounds statements issued without a caller deadline.
const defaultOpTimeout = 2 * time.Minute

// DB wraps an in-memory DuckDB connection pool.
type DB struct {
	conn *sql.DB
	cfg  *config.DataConfig
}

// New opens an in-memory DuckDB instance tuned by cfg.
func New(cfg *config.DataConfig) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	// Insertion order must be preserved: tie-breaks depend on file row order.
	connStr := fmt.Sprintf(":memory:?threads=%d&max_memory=%s&preserve_insertion_order=true", threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	conn.SetMaxOpenConns(threads)
	conn.SetMaxIdleConns(2)

	db := &DB{conn: conn, cfg: cfg}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}

	return db, nil
}

// Conn returns the underlying connection pool.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks that the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close releases the DuckDB instance.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

// ensureContext applies defaultOpTimeout when ctx has no deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, defaultOpTimeout)
	}
	return ctx, func() {}
}
