// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch orchestrates the pipeline over a root directory of
// archives: each archive is extracted and its images recognized as one
// independent unit of work on a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/scan-engine/internal/archive"
	"github.com/pdiddy/scan-engine/internal/ocr"
	"github.com/pdiddy/scan-engine/pkg/types"
)

const (
	// DefaultWorkers bounds archive-level parallelism when the config
	// names no worker count.
	DefaultWorkers = 6

	// defaultArchiveExt is the archive extension scanned for by default.
	defaultArchiveExt = ".zip"

	// textDirSuffix derives an archive's text output directory from its
	// extraction directory name.
	textDirSuffix = "-text"
)

// Summary aggregates per-archive outcomes of one batch run.
type Summary struct {
	Archives  int
	Succeeded int
	Failed    int
	Images    int
}

// HasFailures reports whether any archive failed processing.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Processor scans a root directory for archives and runs the
// extract-then-recognize sequence for each.
type Processor struct {
	engine ocr.Engine
	cfg    types.BatchConfig
	ocrCfg types.OCRConfig
	logger zerolog.Logger
}

// NewProcessor builds a Processor. Zero-value config fields fall back
// to defaults.
func NewProcessor(engine ocr.Engine, cfg types.BatchConfig, ocrCfg types.OCRConfig, logger zerolog.Logger) *Processor {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.ArchiveExt == "" {
		cfg.ArchiveExt = defaultArchiveExt
	}

	return &Processor{
		engine: engine,
		cfg:    cfg,
		ocrCfg: ocrCfg,
		logger: logger,
	}
}

// Process scans rootDir (non-recursive) for archives and processes each
// on the worker pool: extraction into rootDir/<name>/ followed by
// recognition into rootDir/<name>-text/. A unit failure is logged and
// does not abort the other units; only a failure to list rootDir or to
// create the pool is fatal. The shared logger is the only state the
// units have in common, and zerolog serializes its writes.
func (p *Processor) Process(ctx context.Context, rootDir string) (Summary, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return Summary{}, fmt.Errorf("listing root directory %s: %w", rootDir, err)
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), p.cfg.ArchiveExt) {
			archives = append(archives, entry.Name())
		}
	}

	pool, err := ants.NewPool(p.cfg.Workers)
	if err != nil {
		return Summary{}, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary Summary
	)
	summary.Archives = len(archives)

	for _, name := range archives {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			images, err := p.processArchive(ctx, rootDir, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				return
			}
			summary.Succeeded++
			summary.Images += images
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			p.logger.Error().Err(err).Str("archive", name).Msg("submitting archive to worker pool")
			mu.Lock()
			summary.Failed++
			mu.Unlock()
		}
	}
	wg.Wait()

	p.logger.Info().
		Int("archives", summary.Archives).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int("images", summary.Images).
		Msg("batch complete")
	return summary, nil
}

// processArchive runs one archive's extract-then-recognize sequence and
// returns the number of images recognized. The extractor and runner log
// their own failures; this adds the unit-level record.
func (p *Processor) processArchive(ctx context.Context, rootDir, name string) (int, error) {
	archivePath := filepath.Join(rootDir, name)

	srcDir, err := archive.Extract(archivePath, rootDir, p.logger)
	if err != nil {
		return 0, err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	targetDir := filepath.Join(rootDir, base+textDirSuffix)

	runner := ocr.NewRunner(p.engine, p.ocrCfg, p.logger)
	res, err := runner.Run(ctx, srcDir, targetDir)
	if err != nil {
		return 0, err
	}
	return res.Processed, nil
}
