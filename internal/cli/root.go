// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/steamlens/internal/config"
	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/query"
	"github.com/tomtom215/steamlens/internal/validation"
)

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

var supportedFormats = []OutputFormat{FormatTable, FormatJSON}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	seed       bool
	format     string
	logLevel   string
}

// session is a loaded dataset plus the settings used to load it.
type session struct {
	cfg    *config.Config
	load   *database.LoadResult
	engine *query.Engine
	limits validation.Limits
}

// NewRootCmd builds the steamlens command tree.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "steamlens",
		Short: "Query Steam playtime, review, and sentiment tables",
		Long: `Steamlens answers one-shot queries over the four Steam tables the API server
serves: playtime by genre, user playtime by genre, user reviews, and
sentiment by year.

Data files are located through the same configuration as the server
(config.yaml, .env, DATA_DIR and friends). Use --seed to run against the
built-in demo dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.Config{
				Level:  opts.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			return validateFormat(opts.format)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search CONFIG_PATH and standard locations)")
	flags.BoolVar(&opts.seed, "seed", false, "Use the built-in demo dataset instead of data files")
	flags.StringVarP(&opts.format, "format", "o", string(FormatTable), "Output format (table, json)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	_ = root.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(FormatTable), string(FormatJSON)}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newTopYearCmd(opts),
		newTopUserCmd(opts),
		newRecommendedCmd(opts),
		newNotRecommendedCmd(opts),
		newSentimentCmd(opts),
		newGenresCmd(opts),
		newStatsCmd(opts),
		newExportCmd(opts),
		newVersionCmd(version),
	)

	return root
}

func validateFormat(format string) error {
	for _, f := range supportedFormats {
		if format == string(f) {
			return nil
		}
	}
	names := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		names[i] = string(f)
	}
	return fmt.Errorf("unsupported format %q, must be one of: %s", format, strings.Join(names, ", "))
}

// loadConfig reads configuration the way the server does and applies
// command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadWithKoanf(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.seed {
		cfg.Data.SeedMockData = true
	}
	return cfg, nil
}

// openSession loads the dataset and builds a query engine over it.
func openSession(cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	res, err := database.Open(cmd.Context(), &cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	limits, verr := validation.NewLimits(cfg.API.MinYear, cfg.API.MaxYear, cfg.API.MaxGenreLength)
	if verr != nil {
		logging.Warn().Err(verr).Msg("Invalid API limits, using defaults")
	}

	return &session{
		cfg:    cfg,
		load:   res,
		engine: query.New(res.Dataset),
		limits: limits,
	}, nil
}
