// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search evaluates a boolean keyword query against a directory
// of text files and writes the names of matching files to an output
// file, one per line.
package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scan-engine/internal/query"
	"github.com/pdiddy/scan-engine/pkg/types"
)

const (
	defaultTextExt    = ".txt"
	defaultOutputFile = "search_results.txt"
)

// Run parses queryExpr, evaluates it against every text file directly
// under searchDir, writes the matching filenames to outputFilename
// (overwriting it), and returns the matches in listing order. An empty
// outputFilename falls back to cfg.OutputFile, then to
// "search_results.txt".
//
// A malformed expression fails before any file is read. A file that
// cannot be read is logged and skipped; only a failure to list
// searchDir or to write the output file is fatal.
func Run(searchDir, queryExpr, outputFilename string, cfg types.SearchConfig, logger zerolog.Logger) ([]string, error) {
	expr, err := query.Parse(queryExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", queryExpr, err)
	}

	textExt := cfg.TextExt
	if textExt == "" {
		textExt = defaultTextExt
	}
	if outputFilename == "" {
		outputFilename = cfg.OutputFile
	}
	if outputFilename == "" {
		outputFilename = defaultOutputFile
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, fmt.Errorf("listing search directory %s: %w", searchDir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), textExt) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(searchDir, entry.Name()))
		if err != nil {
			logger.Error().Err(err).Str("file", entry.Name()).Msg("reading text file")
			continue
		}

		if expr.Eval(string(content)) {
			matches = append(matches, entry.Name())
			logger.Info().Str("file", entry.Name()).Msg("match found")
		}
	}

	var b strings.Builder
	for _, m := range matches {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(outputFilename, []byte(b.String()), 0o644); err != nil {
		return nil, fmt.Errorf("writing results to %s: %w", outputFilename, err)
	}

	logger.Info().
		Str("dir", searchDir).
		Str("query", expr.String()).
		Int("matches", len(matches)).
		Str("output", outputFilename).
		Msg("search complete")
	return matches, nil
}
