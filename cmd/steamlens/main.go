// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

// Package main provides the steamlens command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/tomtom215/steamlens/internal/cli"
)

// version is set via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
