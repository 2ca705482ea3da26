// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scan-engine/pkg/types"
)

// defaultImageExts are the image extensions matched when the config
// names none. TIFF first: scanned-document archives are predominantly
// TIFF.
var defaultImageExts = []string{".tif", ".tiff", ".png", ".jpg", ".jpeg"}

// defaultLanguages is the trained-data hint used when the config names none.
var defaultLanguages = []string{"eng"}

// BatchResult holds the outcome of one directory run.
type BatchResult struct {
	Processed int
	Failed    int
}

// Total returns the total number of images attempted.
func (r BatchResult) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any image failed recognition.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Runner performs OCR over every matching image in a source directory,
// writing one text file per image into a target directory.
type Runner struct {
	engine Engine
	cfg    types.OCRConfig
	exts   map[string]bool
	logger zerolog.Logger
}

// NewRunner builds a Runner around the given engine. Zero-value config
// fields fall back to defaults.
func NewRunner(engine Engine, cfg types.OCRConfig, logger zerolog.Logger) *Runner {
	if len(cfg.ImageExts) == 0 {
		cfg.ImageExts = defaultImageExts
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = defaultLanguages
	}

	exts := make(map[string]bool, len(cfg.ImageExts))
	for _, e := range cfg.ImageExts {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[e] = true
	}

	return &Runner{
		engine: engine,
		cfg:    cfg,
		exts:   exts,
		logger: logger,
	}
}

// Run recognizes every matching image directly under sourceDir, writing
// each result to targetDir/<base>.txt and overwriting any existing
// output of that name. Per-image failures are logged and skipped; the
// run aborts only if targetDir cannot be created or sourceDir cannot be
// listed. The returned BatchResult counts successfully written outputs.
func (r *Runner) Run(ctx context.Context, sourceDir, targetDir string) (BatchResult, error) {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating target directory %s: %w", targetDir, err)
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("listing source directory %s: %w", sourceDir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !r.exts[ext] {
			continue
		}

		if err := r.processImage(ctx, sourceDir, targetDir, entry.Name(), ext); err != nil {
			r.logger.Error().Err(err).Str("image", entry.Name()).Msg("ocr failed")
			result.Failed++
			continue
		}
		result.Processed++
	}

	r.logger.Info().
		Str("source", sourceDir).
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Msg("ocr run complete")
	return result, nil
}

func (r *Runner) processImage(ctx context.Context, sourceDir, targetDir, name, ext string) error {
	data, err := os.ReadFile(filepath.Join(sourceDir, name))
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	data, err = normalizeImage(data, ext)
	if err != nil {
		return err
	}

	res, err := r.recognize(ctx, Input{Name: name, Image: data, Languages: r.cfg.Languages})
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(targetDir, base+".txt")
	if err := os.WriteFile(outPath, []byte(res.Text), 0o644); err != nil {
		return fmt.Errorf("writing text output: %w", err)
	}

	r.logger.Info().Str("image", name).Str("text", outPath).Msg("ocr completed")
	return nil
}

// recognize applies the configured per-image timeout around the engine
// call. The engine has no cancellation hook once recognition starts, so
// on timeout the in-flight goroutine is abandoned and its result
// discarded.
func (r *Runner) recognize(ctx context.Context, in Input) (Result, error) {
	if r.cfg.Timeout <= 0 {
		return r.engine.Recognize(ctx, in)
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	type outcome struct {
		res Result
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := r.engine.Recognize(ctx, in)
		ch <- outcome{res: res, err: err}
	}()

	select {
	case <-ctx.Done():
		return Result{}, fmt.Errorf("recognizing %s: %w", in.Name, ctx.Err())
	case o := <-ch:
		return o.res, o.err
	}
}
