// Steamlens - Steam Game Review and Playtime Query API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("test")

	if root.Use != "steamlens" {
		t.Errorf("Use = %q, want steamlens", root.Use)
	}

	want := []string{"top-year", "top-user", "recommended", "not-recommended", "sentiment",
		"genres", "stats", "export", "version"}
	have := map[string]bool{}
	for _, sub := range root.Commands() {
		have[sub.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	for _, flag := range []string{"config", "seed", "format", "log-level"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("--%s flag not found", flag)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "Steamlens version test") {
		t.Errorf("output = %q", out)
	}
}

func TestTopYearCmd(t *testing.T) {
	out, err := runCLI(t, "--seed", "-o", "json", "top-year", "Action")
	if err != nil {
		t.Fatalf("top-year: %v", err)
	}

	var got map[string]int
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if year := got["Release year with the most hours played for the genre Action"]; year != 2013 {
		t.Errorf("result = %v, want 2013", got)
	}
}

func TestTopYearCmd_Table(t *testing.T) {
	tests := []struct {
		name  string
		genre string
		want  []string
	}{
		{"known genre", "action", []string{"GENRE", "YEAR", "action", "2013"}},
		{"unknown genre", "Racing", []string{"No data available for genre Racing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, "--seed", "top-year", tt.genre)
			if err != nil {
				t.Fatalf("top-year: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestTopUserCmd(t *testing.T) {
	out, err := runCLI(t, "--seed", "top-user", "RPG")
	if err != nil {
		t.Fatalf("top-user: %v", err)
	}
	if !strings.Contains(out, "Top user for RPG: steam_user_") {
		t.Errorf("output missing top user:\n%s", out)
	}
	if !strings.Contains(out, "HOURS") {
		t.Errorf("output missing hours table:\n%s", out)
	}
}

func TestSentimentCmd(t *testing.T) {
	out, err := runCLI(t, "--seed", "--format", "json", "sentiment", "2015")
	if err != nil {
		t.Fatalf("sentiment: %v", err)
	}

	var got map[string]int
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got["Negative"] != 4 || got["Neutral"] != 0 || got["Positive"] != 2 {
		t.Errorf("tally = %v, want Negative 4, Neutral 0, Positive 2", got)
	}
}

func TestRankedCmds(t *testing.T) {
	for _, name := range []string{"recommended", "not-recommended"} {
		t.Run(name, func(t *testing.T) {
			out, err := runCLI(t, "--seed", "-o", "json", name, "2014")
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}

			var got []map[string]int
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if len(got) == 0 || len(got) > 3 {
				t.Fatalf("got %d positions, want 1..3", len(got))
			}
			for key := range got[0] {
				if !strings.HasPrefix(key, "Position 1: ") {
					t.Errorf("first key = %q", key)
				}
			}
		})
	}

	out, err := runCLI(t, "--seed", "recommended", "1999")
	if err != nil {
		t.Fatalf("recommended 1999: %v", err)
	}
	if !strings.Contains(out, "No reviews for 1999") {
		t.Errorf("output = %q", out)
	}
}

func TestGenresAndStatsCmds(t *testing.T) {
	out, err := runCLI(t, "--seed", "-o", "json", "genres")
	if err != nil {
		t.Fatalf("genres: %v", err)
	}
	var genres []string
	if err := json.Unmarshal([]byte(out), &genres); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(genres) != 7 || genres[0] != "Action" {
		t.Errorf("genres = %v", genres)
	}

	out, err = runCLI(t, "--seed", "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Source: seed", "playtime_by_genre", "70"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestQueryCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"non-numeric year", []string{"--seed", "sentiment", "later"}, "year"},
		{"year out of range", []string{"--seed", "recommended", "3000"}, "year"},
		{"bad format", []string{"--seed", "-o", "yaml", "genres"}, "unsupported format"},
		{"missing argument", []string{"--seed", "top-year"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestExportCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	out, err := runCLI(t, "--seed", "-o", "json", "export", "--export-format", "csv", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var paths []string
	if err := json.Unmarshal([]byte(out), &paths); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(paths) != 4 {
		t.Fatalf("exported %d files, want 4", len(paths))
	}
	for _, p := range paths {
		if filepath.Ext(p) != ".csv" {
			t.Errorf("%s: want .csv extension", p)
		}
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s: missing or empty (%v)", p, err)
		}
	}
}

func TestExportCmd_Flags(t *testing.T) {
	var export *cobra.Command
	for _, sub := range NewRootCmd("test").Commands() {
		if sub.Name() == "export" {
			export = sub
		}
	}
	if export == nil {
		t.Fatal("export subcommand not found")
	}
	flag := export.Flags().Lookup("export-format")
	if flag == nil || flag.DefValue != "parquet" {
		t.Errorf("--export-format flag = %+v", flag)
	}
}
