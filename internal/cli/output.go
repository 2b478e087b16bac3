// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// table accumulates tab-separated output for a tabwriter.
type table struct {
	w   *tabwriter.Writer
	out io.Writer
	err error
}

func newTable(out io.Writer) *table {
	return &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0), out: out}
}

func (t *table) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

func (t *table) header(cols ...string) { t.write(strings.Join(cols, "\t")) }

func (t *table) row(cols ...string) { t.write(strings.Join(cols, "\t")) }

// line writes text outside the column layout.
func (t *table) line(s string) {
	if err := t.w.Flush(); err != nil && t.err == nil {
		t.err = err
	}
	t.write(s)
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

// render prints v as indented JSON, or through fill as a table.
// JSON output uses the same shapes as the API's legacy routes.
func render(cmd *cobra.Command, opts *options, v any, fill func(*table)) error {
	out := cmd.OutOrStdout()

	if OutputFormat(opts.format) == FormatJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	t := newTable(out)
	fill(t)
	return t.flush()
}
