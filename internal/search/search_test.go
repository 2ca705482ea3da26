// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scan-engine/pkg/types"
)

// setupCorpus writes the given name->content text files into a temp dir.
func setupCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	corpus := map[string]string{
		"a.txt": "alpha beta",
		"b.txt": "gamma",
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"and not", "alpha AND NOT gamma", []string{"a.txt"}},
		{"or", "alpha OR gamma", []string{"a.txt", "b.txt"}},
		{"no matches", "delta", nil},
		{"phrase", `"alpha beta"`, []string{"a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupCorpus(t, corpus)
			output := filepath.Join(dir, "results.out")

			matches, err := Run(dir, tt.query, output, types.SearchConfig{}, zerolog.Nop())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !reflect.DeepEqual(matches, tt.want) {
				t.Errorf("matches = %v, want %v", matches, tt.want)
			}

			data, err := os.ReadFile(output)
			if err != nil {
				t.Fatalf("reading output file: %v", err)
			}
			var wantContent strings.Builder
			for _, m := range tt.want {
				wantContent.WriteString(m + "\n")
			}
			if string(data) != wantContent.String() {
				t.Errorf("output content = %q, want %q", data, wantContent.String())
			}
		})
	}
}

func TestRunInvalidQueryScansNothing(t *testing.T) {
	dir := setupCorpus(t, map[string]string{"a.txt": "alpha"})
	output := filepath.Join(dir, "results.out")

	_, err := Run(dir, "(alpha AND beta", output, types.SearchConfig{}, zerolog.Nop())
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if _, err := os.Stat(output); err == nil {
		t.Error("output file was written despite query validation failure")
	}
}

func TestRunIgnoresNonTextFiles(t *testing.T) {
	dir := setupCorpus(t, map[string]string{
		"a.txt": "alpha",
		"a.png": "alpha",
	})
	output := filepath.Join(dir, "results.out")

	matches, err := Run(dir, "alpha", output, types.SearchConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(matches, []string{"a.txt"}) {
		t.Errorf("matches = %v, want only a.txt", matches)
	}
}

func TestRunOverwritesOutput(t *testing.T) {
	dir := setupCorpus(t, map[string]string{"a.txt": "alpha"})
	output := filepath.Join(dir, "results.out")
	if err := os.WriteFile(output, []byte("stale\nlines\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Run(dir, "alpha", output, types.SearchConfig{}, zerolog.Nop()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a.txt\n" {
		t.Errorf("output = %q, want %q", data, "a.txt\n")
	}
}

func TestRunDefaultOutputFromConfig(t *testing.T) {
	dir := setupCorpus(t, map[string]string{"a.txt": "alpha"})
	output := filepath.Join(dir, "configured.out")
	cfg := types.SearchConfig{OutputFile: output}

	matches, err := Run(dir, "alpha", "", cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(matches, []string{"a.txt"}) {
		t.Fatalf("matches = %v, want [a.txt]", matches)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("configured output file not written: %v", err)
	}
	if string(data) != "a.txt\n" {
		t.Errorf("output = %q, want %q", data, "a.txt\n")
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "results.out")

	matches, err := Run(dir, "alpha", output, types.SearchConfig{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("output = %q, want empty", data)
	}
}

func TestReportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")

	matches := []string{"a.txt", "c.txt"}
	if err := WriteReport(path, "alpha OR gamma", "texts/", matches); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	r, err := ReadReport(path)
	if err != nil {
		t.Fatalf("ReadReport: %v", err)
	}
	if r.Query != "alpha OR gamma" || r.Directory != "texts/" || r.Total != 2 {
		t.Errorf("report = %+v, want query/directory/total preserved", r)
	}
	if !reflect.DeepEqual(r.Matches, matches) {
		t.Errorf("matches = %v, want %v", r.Matches, matches)
	}
	if r.Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}
}
