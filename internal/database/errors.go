// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/steamlens/internal/logging"
)

var (
	// ErrSourceNotFound is returned when a dataset file does not exist.
	ErrSourceNotFound = errors.New("dataset source not found")

	// ErrUnsupportedFormat is returned for file extensions DuckDB is not asked to read.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrInvalidRow is returned when a row violates a table invariant
	// (NULL key, negative playtime, unknown sentiment class).
	ErrInvalidRow = errors.New("invalid dataset row")
)

// RowError describes the offending row of an ErrInvalidRow failure.
type RowError struct {
	Table  string
	Row    int // 1-based, in file order
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Table, e.Row, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidRow.
func (e *RowError) Unwrap() error {
	return ErrInvalidRow
}

func invalidRow(table string, row int, format string, args ...any) error {
	return &RowError{Table: table, Row: row, Reason: fmt.Sprintf(format, args...)}
}

// closeWithLog closes a resource and logs a failure.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource on an error path where the close error is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
