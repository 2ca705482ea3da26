// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/scan-engine/internal/ocr"
	"github.com/pdiddy/scan-engine/internal/ocr/tesseract"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [source-dir] [target-dir]",
	Short: "Run OCR over a directory of scanned images",
	Long: `OCR recognizes every matching image directly under source-dir and
writes one text file per image into target-dir, overwriting outputs from
earlier runs. An image that cannot be read or recognized is logged and
skipped; the rest of the run continues.`,
	Args: cobra.ExactArgs(2),
	RunE: runOCR,
}

func runOCR(cmd *cobra.Command, args []string) error {
	sourceDir, targetDir := args[0], args[1]

	logger, err := loggerFromFlags(cmd)
	if err != nil {
		return err
	}

	runner := ocr.NewRunner(tesseract.NewTesseractEngine(), ocrConfigFromFlags(cmd), logger)
	result, err := runner.Run(cmd.Context(), sourceDir, targetDir)
	if err != nil {
		return err
	}

	fmt.Printf("%d image(s) processed, %d failed\n", result.Processed, result.Failed)
	return nil
}

func init() {
	ocrCmd.Flags().StringSlice("lang", nil, "OCR language hints (default eng)")
	ocrCmd.Flags().StringSlice("image-ext", nil, "image extensions to process (default .tif,.tiff,.png,.jpg,.jpeg)")
	ocrCmd.Flags().Duration("ocr-timeout", 0, "per-image recognition timeout (0 disables)")

	rootCmd.AddCommand(ocrCmd)
}
