// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"path/filepath"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Data       DataConfig       `koanf:"data"`
	API        APIConfig        `koanf:"api"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// DataConfig locates the four dataset files and tunes the DuckDB instance
// used to read them. Relative file names are resolved against Dir.
type DataConfig struct {
	Dir               string `koanf:"dir"`
	PlaytimeGenreFile string `koanf:"playtime_genre_file"`
	UserGenreFile     string `koanf:"user_genre_file"`
	UserReviewsFile   string `koanf:"user_reviews_file"`
	SentimentYearFile string `koanf:"sentiment_year_file"`
	MaxMemory         string `koanf:"max_memory"`
	Threads           int    `koanf:"threads"` // 0 = runtime.NumCPU()
	SeedMockData      bool   `koanf:"seed_mock_data"`
}

// Resolve returns name joined to Dir unless name is absolute.
func (d *DataConfig) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || d.Dir == "" {
		return name
	}
	return filepath.Join(d.Dir, name)
}

// PlaytimeGenrePath returns the resolved playtime-by-genre file path.
func (d *DataConfig) PlaytimeGenrePath() string { return d.Resolve(d.PlaytimeGenreFile) }

// UserGenrePath returns the resolved user-genre playtime file path.
func (d *DataConfig) UserGenrePath() string { return d.Resolve(d.UserGenreFile) }

// UserReviewsPath returns the resolved user reviews file path.
func (d *DataConfig) UserReviewsPath() string { return d.Resolve(d.UserReviewsFile) }

// SentimentYearPath returns the resolved sentiment-by-year file path.
func (d *DataConfig) SentimentYearPath() string { return d.Resolve(d.SentimentYearFile) }

// APIConfig holds query API settings.
type APIConfig struct {
	CacheTTL       time.Duration `koanf:"cache_ttl"`
	MinYear        int           `koanf:"min_year"`
	MaxYear        int           `koanf:"max_year"`
	MaxGenreLength int           `koanf:"max_genre_length"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SupervisorConfig tunes the suture supervisor tree and the periodic
// performance report.
type SupervisorConfig struct {
	FailureThreshold     float64       `koanf:"failure_threshold"`
	FailureBackoff       time.Duration `koanf:"failure_backoff"`
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
	ReportInterval       time.Duration `koanf:"report_interval"`
}

// Load reads configuration from defaults, the first config file found and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf("")
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
