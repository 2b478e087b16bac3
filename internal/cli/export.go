// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/steamlens/internal/database"
	"github.com/tomtom215/steamlens/internal/logging"
)

func newExportCmd(opts *options) *cobra.Command {
	var fileFormat string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Write the loaded dataset to a directory as parquet, csv, or json files",
		Long: `Write the four tables to <dir> using the file names the loader expects.

With --seed this produces a ready-to-serve demo data directory:

  steamlens export --seed ./Data/parquet
  DATA_DIR=./Data/parquet steamlens-server`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			db, err := database.New(&s.cfg.Data)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					logging.Warn().Err(cerr).Msg("Error closing DuckDB")
				}
			}()

			paths, err := db.ExportDataset(cmd.Context(), s.load.Dataset, args[0], fileFormat)
			if err != nil {
				return err
			}

			return render(cmd, opts, paths, func(t *table) {
				t.line(fmt.Sprintf("Exported %d rows from %s", s.load.Dataset.Counts().Total(), s.load.Source))
				for _, p := range paths {
					t.line(p)
				}
			})
		},
	}

	cmd.Flags().StringVar(&fileFormat, "export-format", database.FormatParquet,
		fmt.Sprintf("File format (%s, %s, %s)", database.FormatParquet, database.FormatCSV, database.FormatJSON))
	_ = cmd.RegisterFlagCompletionFunc("export-format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{database.FormatParquet, database.FormatCSV, database.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
