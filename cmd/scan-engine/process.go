// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scan-engine/internal/batch"
	"github.com/pdiddy/scan-engine/internal/ocr/tesseract"
	"github.com/pdiddy/scan-engine/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [root-dir]",
	Short: "Extract and OCR every archive under a root directory",
	Long: `Process scans root-dir for zip archives and runs the full pipeline on
each: extraction into root-dir/<name>/ followed by OCR into
root-dir/<name>-text/. Archives are processed concurrently up to
--workers; a failure in one archive is logged and does not stop the
others.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	rootDir := "."
	if len(args) > 0 {
		rootDir = args[0]
	}

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if !cmd.Flags().Changed("workers") && viper.IsSet("batch.workers") {
		workers = viper.GetInt("batch.workers")
	}
	archiveExt, _ := cmd.Flags().GetString("archive-ext")

	cfg := types.BatchConfig{
		ArchiveExt: archiveExt,
		Workers:    workers,
	}

	proc := batch.NewProcessor(tesseract.NewTesseractEngine(), cfg, ocrConfigFromFlags(cmd), logger)
	summary, err := proc.Process(cmd.Context(), rootDir)
	if err != nil {
		return err
	}

	fmt.Printf("%d archive(s): %d succeeded, %d failed, %d image(s) processed\n",
		summary.Archives, summary.Succeeded, summary.Failed, summary.Images)
	if summary.HasFailures() {
		return fmt.Errorf("%d archive(s) failed processing", summary.Failed)
	}
	return nil
}

func init() {
	processCmd.Flags().Int("workers", batch.DefaultWorkers, "number of archives processed concurrently")
	processCmd.Flags().String("archive-ext", ".zip", "archive extension scanned for under root-dir")
	processCmd.Flags().StringSlice("lang", nil, "OCR language hints (default eng)")
	processCmd.Flags().StringSlice("image-ext", nil, "image extensions to process (default .tif,.tiff,.png,.jpg,.jpeg)")
	processCmd.Flags().Duration("ocr-timeout", 0, "per-image recognition timeout (0 disables)")

	rootCmd.AddCommand(processCmd)
}
