// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Report is the on-disk YAML record of one search run. It lets the
// operator keep the query alongside its results without re-scanning
// the corpus.
type Report struct {
	Query     string    `yaml:"query"`
	Directory string    `yaml:"directory"`
	Matches   []string  `yaml:"matches,omitempty"`
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteReport saves one run's query and matches to a YAML file.
func WriteReport(path, queryExpr, searchDir string, matches []string) error {
	r := Report{
		Query:     queryExpr,
		Directory: searchDir,
		Matches:   matches,
		Total:     len(matches),
		Timestamp: time.Now(),
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling search report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReport loads a previously saved search report from disk.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing search report: %w", err)
	}
	return &r, nil
}
