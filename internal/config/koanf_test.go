// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the .env lookup at an empty temp dir for the duration of a test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := DotEnvFile
	DotEnvFile = filepath.Join(dir, ".env")
	t.Cleanup(func() { DotEnvFile = orig })
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Data.Dir != "Data/parquet" {
		t.Errorf("Data.Dir = %q", cfg.Data.Dir)
	}
	if cfg.Data.UserReviewsFile != "user_recommend.parquet" {
		t.Errorf("Data.UserReviewsFile = %q", cfg.Data.UserReviewsFile)
	}
	if cfg.API.CacheTTL != 5*time.Minute {
		t.Errorf("API.CacheTTL = %v, want 5m", cfg.API.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"HTTP_PORT", "server.port"},
		{"DATA_DIR", "data.dir"},
		{"USER_REVIEWS_FILE", "data.user_reviews_file"},
		{"SEED_MOCK_DATA", "data.seed_mock_data"},
		{"API_CACHE_TTL", "api.cache_ttl"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PERF_REPORT_INTERVAL", "supervisor.report_interval"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDataConfig_Resolve(t *testing.T) {
	t.Parallel()

	d := &DataConfig{
		Dir:               "Data/parquet",
		PlaytimeGenreFile: "playtime_genre.parquet",
		UserGenreFile:     "/abs/user_for_genre.csv",
	}
	if got := d.PlaytimeGenrePath(); got != filepath.Join("Data/parquet", "playtime_genre.parquet") {
		t.Errorf("PlaytimeGenrePath() = %q", got)
	}
	if got := d.UserGenrePath(); got != "/abs/user_for_genre.csv" {
		t.Errorf("UserGenrePath() = %q", got)
	}
	if got := (&DataConfig{}).Resolve("x.parquet"); got != "x.parquet" {
		t.Errorf("Resolve without dir = %q", got)
	}
}

func TestLoadWithKoanf_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/srv/steam")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("API_CACHE_TTL", "30s")

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Data.Dir != "/srv/steam" {
		t.Errorf("Data.Dir = %q", cfg.Data.Dir)
	}
	if cfg.API.CacheTTL != 30*time.Second {
		t.Errorf("API.CacheTTL = %v, want 30s", cfg.API.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Data.UserGenreFile != "user_for_genre.parquet" {
		t.Errorf("unset values should keep defaults, got %q", cfg.Data.UserGenreFile)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "steamlens.yaml")
	writeFile(t, path, `
server:
  port: 8888
  host: "127.0.0.1"
data:
  dir: "/data"
  user_reviews_file: "reviews.csv"
logging:
  level: "warn"
`)

	cfg, err := LoadWithKoanf(path)
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if got := cfg.Data.UserReviewsPath(); got != filepath.Join("/data", "reviews.csv") {
		t.Errorf("UserReviewsPath() = %q", got)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, "server:\n  port: 8888\nlogging:\n  level: warn\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_DotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, DotEnvFile, "SEED_MOCK_DATA=true\nAPI_MAX_YEAR=2030\n")
	// godotenv never overrides variables that are already set.
	t.Setenv("API_MAX_YEAR", "2040")
	t.Cleanup(func() { os.Unsetenv("SEED_MOCK_DATA") })

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !cfg.Data.SeedMockData {
		t.Error("SEED_MOCK_DATA from .env was not applied")
	}
	if cfg.API.MaxYear != 2040 {
		t.Errorf("API.MaxYear = %d, want 2040 from the environment", cfg.API.MaxYear)
	}
}

func TestLoadWithKoanf_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad environment", map[string]string{"ENVIRONMENT": "qa"}, "ENVIRONMENT"},
		{"inverted years", map[string]string{"API_MIN_YEAR": "2020", "API_MAX_YEAR": "2010"}, "API_MIN_YEAR"},
		{"unsupported file", map[string]string{"USER_REVIEWS_FILE": "reviews.xlsx"}, "USER_REVIEWS_FILE"},
		{"rate limit out of range", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf("")
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_SeedSkipsFiles(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Data.UserReviewsFile = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing file should fail validation")
	}
	cfg.Data.SeedMockData = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("seeded config should validate: %v", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "server:\n  port: 8001\n")

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Chdir(dir)
	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://steamlens.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin is not a wildcard")
	}
}

func TestProductionWarnings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		environment string
		origins     []string
		seed        bool
		want        int
	}{
		{"development ignores everything", "development", []string{"*"}, true, 0},
		{"production wildcard and seed", "production", []string{"*"}, true, 2},
		{"production seed only", "production", []string{"https://steamlens.example"}, true, 1},
		{"production clean", "production", []string{"https://steamlens.example"}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.Server.Environment = tt.environment
			cfg.Security.CORSOrigins = tt.origins
			cfg.Data.SeedMockData = tt.seed

			if got := cfg.IsProduction(); got != (tt.environment == "production") {
				t.Errorf("IsProduction() = %v", got)
			}
			if got := cfg.ProductionWarnings(); len(got) != tt.want {
				t.Errorf("ProductionWarnings() = %q, want %d entries", got, tt.want)
			}
		})
	}
}
