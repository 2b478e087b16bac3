// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = 1 * time.Second
	maxRateLimitWindow   = 1 * time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// supportedExtensions are the dataset file formats the loader can read.
var supportedExtensions = map[string]bool{
	".parquet": true,
	".csv":     true,
	".tsv":     true,
	".json":    true,
	".ndjson":  true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if err := c.validateSupervisor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateData checks file names only. Whether the files exist is reported by
// the loader, which can say which table is missing.
func (c *Config) validateData() error {
	if c.Data.SeedMockData {
		return nil
	}
	files := map[string]string{
		"PLAYTIME_GENRE_FILE": c.Data.PlaytimeGenreFile,
		"USER_GENRE_FILE":     c.Data.UserGenreFile,
		"USER_REVIEWS_FILE":   c.Data.UserReviewsFile,
		"SENTIMENT_YEAR_FILE": c.Data.SentimentYearFile,
	}
	for name, file := range files {
		if file == "" {
			return fmt.Errorf("%s is required unless SEED_MOCK_DATA=true", name)
		}
		ext := strings.ToLower(filepath.Ext(file))
		if !supportedExtensions[ext] {
			return fmt.Errorf("%s has unsupported extension %q (want parquet, csv, tsv, json or ndjson)", name, ext)
		}
	}
	if c.Data.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MinYear > c.API.MaxYear {
		return fmt.Errorf("API_MIN_YEAR (%d) must not exceed API_MAX_YEAR (%d)", c.API.MinYear, c.API.MaxYear)
	}
	if c.API.MaxGenreLength < 1 {
		return fmt.Errorf("API_MAX_GENRE_LENGTH must be at least 1")
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateSupervisor() error {
	if c.Supervisor.FailureThreshold <= 0 {
		return fmt.Errorf("SUPERVISOR_FAILURE_THRESHOLD must be positive")
	}
	if c.Supervisor.ReportInterval <= 0 {
		return fmt.Errorf("PERF_REPORT_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// ProductionWarnings lists settings that pass validation but should not be
// used in production. It returns nil outside production.
func (c *Config) ProductionWarnings() []string {
	if !c.IsProduction() {
		return nil
	}
	var warnings []string
	if c.HasWildcardCORS() {
		warnings = append(warnings, "CORS allows any origin; set CORS_ORIGINS")
	}
	if c.Data.SeedMockData {
		warnings = append(warnings, "serving the built-in demo dataset; unset SEED_MOCK_DATA")
	}
	return warnings
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
