// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scan-engine/internal/ocr"
	"github.com/pdiddy/scan-engine/pkg/types"
)

// fakeEngine returns canned text for every image.
type fakeEngine struct{}

func (fakeEngine) Name() string { return "fake" }

func (fakeEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	return ocr.Result{Name: in.Name, Text: "text of " + in.Name}, nil
}

// writeArchive creates a zip at rootDir/name holding the given image files.
func writeArchive(t *testing.T, rootDir, name string, images ...string) {
	t.Helper()
	f, err := os.Create(filepath.Join(rootDir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, img := range images {
		fw, err := w.Create(img)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte("png bytes")); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}

func newTestProcessor(workers int) *Processor {
	cfg := types.BatchConfig{Workers: workers}
	ocrCfg := types.OCRConfig{ImageExts: []string{".png"}}
	return NewProcessor(fakeEngine{}, cfg, ocrCfg, zerolog.Nop())
}

func TestProcess(t *testing.T) {
	rootDir := t.TempDir()
	writeArchive(t, rootDir, "batch01.zip", "a.png", "b.png")
	writeArchive(t, rootDir, "batch02.zip", "c.png")

	summary, err := newTestProcessor(2).Process(context.Background(), rootDir)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := Summary{Archives: 2, Succeeded: 2, Failed: 0, Images: 3}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}

	for archiveBase, outputs := range map[string][]string{
		"batch01": {"a.txt", "b.txt"},
		"batch02": {"c.txt"},
	} {
		for _, out := range outputs {
			path := filepath.Join(rootDir, archiveBase+"-text", out)
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading %s: %v", path, err)
			}
			if len(data) == 0 {
				t.Errorf("%s is empty", path)
			}
		}
	}
}

func TestProcessContinuesPastFailedArchive(t *testing.T) {
	rootDir := t.TempDir()
	writeArchive(t, rootDir, "good.zip", "a.png")
	if err := os.WriteFile(filepath.Join(rootDir, "corrupt.zip"), []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := newTestProcessor(2).Process(context.Background(), rootDir)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if summary.Archives != 2 || summary.Succeeded != 1 || summary.Failed != 1 {
		t.Fatalf("summary = %+v, want 1 succeeded and 1 failed of 2", summary)
	}
	if _, err := os.Stat(filepath.Join(rootDir, "good-text", "a.txt")); err != nil {
		t.Errorf("good archive output missing: %v", err)
	}
}

func TestProcessIgnoresOtherFiles(t *testing.T) {
	rootDir := t.TempDir()
	writeArchive(t, rootDir, "batch01.zip", "a.png")
	if err := os.WriteFile(filepath.Join(rootDir, "readme.md"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(rootDir, "subdir.zip.d"), 0o755); err != nil {
		t.Fatal(err)
	}

	summary, err := newTestProcessor(1).Process(context.Background(), rootDir)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summary.Archives != 1 {
		t.Fatalf("archives = %d, want 1", summary.Archives)
	}
}

func TestProcessEmptyRoot(t *testing.T) {
	summary, err := newTestProcessor(1).Process(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if summary != (Summary{}) {
		t.Fatalf("summary = %+v, want zero", summary)
	}
}

func TestProcessMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")
	if _, err := newTestProcessor(1).Process(context.Background(), root); err == nil {
		t.Fatal("expected error for missing root directory, got nil")
	}
}
