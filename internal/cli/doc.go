// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package cli implements the steamlens command line tool: one-shot runs of
// the five dataset queries, dataset statistics, and export of the dataset
// to parquet, csv, or json files.
package cli
