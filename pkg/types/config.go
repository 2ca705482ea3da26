// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration structures shared across
// pipeline stages.
package types

import "time"

// LogConfig holds shared diagnostic log settings used by every stage.
type LogConfig struct {
	// LogFile is the path of the pipeline log file. Records are also
	// mirrored to the console.
	LogFile string `json:"log_file" yaml:"log_file"`
}

// ExtractConfig holds settings for the archive extraction stage.
type ExtractConfig struct {
	// ArchiveExt is the archive filename extension recognized by
	// directory scans (default ".zip").
	ArchiveExt string `json:"archive_ext" yaml:"archive_ext"`

	// DestRoot is the directory under which per-archive extraction
	// directories are created.
	DestRoot string `json:"dest_root" yaml:"dest_root"`
}

// OCRConfig holds settings for the recognition stage.
type OCRConfig struct {
	// Languages lists trained-data language hints passed to the OCR
	// engine (default ["eng"]).
	Languages []string `json:"languages" yaml:"languages"`

	// ImageExts lists the image filename extensions picked up by a
	// directory run, matched case-insensitively
	// (default [".tif", ".tiff", ".png", ".jpg", ".jpeg"]).
	ImageExts []string `json:"image_exts" yaml:"image_exts"`

	// Timeout bounds a single recognition call. Zero disables the bound.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// BatchConfig holds settings for the batch orchestrator.
type BatchConfig struct {
	LogConfig `yaml:",inline"`

	// ArchiveExt is the archive filename extension scanned for under
	// the root directory (default ".zip").
	ArchiveExt string `json:"archive_ext" yaml:"archive_ext"`

	// Workers bounds the number of archives processed concurrently
	// (default 6).
	Workers int `json:"workers" yaml:"workers"`
}

// SearchConfig holds settings for the text search stage.
type SearchConfig struct {
	// TextExt is the filename extension of corpus files (default ".txt").
	TextExt string `json:"text_ext" yaml:"text_ext"`

	// OutputFile is the default path for the match list
	// (default "search_results.txt").
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Extract ExtractConfig `json:"extract" yaml:"extract"`
	OCR     OCRConfig     `json:"ocr" yaml:"ocr"`
	Batch   BatchConfig   `json:"batch" yaml:"batch"`
	Search  SearchConfig  `json:"search" yaml:"search"`
}
