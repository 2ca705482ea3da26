// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive unpacks zip archives of scanned documents into
// per-archive extraction directories.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Extract unpacks every entry of the archive at archivePath into a
// directory under destRoot named after the archive with its extension
// stripped, and returns that directory's path.
//
// A pre-existing extraction directory is reused: extraction is additive
// and overwrites per entry, it never removes files already present.
// Entries whose resolved path would escape the extraction directory are
// rejected. Failures are logged and returned; the caller decides whether
// to continue with other archives.
func Extract(archivePath, destRoot string, logger zerolog.Logger) (string, error) {
	base := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	destDir := filepath.Join(destRoot, base)

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		logger.Error().Err(err).Str("archive", archivePath).Msg("creating extraction directory")
		return "", fmt.Errorf("creating extraction directory %s: %w", destDir, err)
	}

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		logger.Error().Err(err).Str("archive", archivePath).Msg("opening archive")
		return "", fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer r.Close()

	for _, entry := range r.File {
		if err := extractEntry(entry, destDir); err != nil {
			logger.Error().Err(err).
				Str("archive", archivePath).
				Str("entry", entry.Name).
				Msg("extracting entry")
			return "", fmt.Errorf("extracting %s from %s: %w", entry.Name, archivePath, err)
		}
	}

	logger.Info().Str("archive", archivePath).Str("dest", destDir).Msg("archive extracted")
	return destDir, nil
}

// entryPath resolves an entry name inside destDir, rejecting names that
// would land outside it.
func entryPath(destDir, name string) (string, error) {
	p := filepath.Join(destDir, filepath.FromSlash(name))
	if p != destDir && !strings.HasPrefix(p, destDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry %q escapes extraction directory", name)
	}
	return p, nil
}

func extractEntry(entry *zip.File, destDir string) error {
	target, err := entryPath(destDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	perm := entry.Mode().Perm()
	if perm == 0 {
		perm = 0o644
	}
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
