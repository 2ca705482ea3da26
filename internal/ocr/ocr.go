// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr runs optical character recognition over directories of
// scanned images, writing one text file per image. Recognition is
// performed through the Engine interface; the Tesseract-backed provider
// lives in the tesseract subpackage so this package stays free of cgo.
package ocr

import "context"

// Input encapsulates a single encoded image submitted for recognition.
type Input struct {
	// Name identifies the input in results and diagnostics, typically
	// the source filename.
	Name string

	// Image is the encoded image payload (PNG, JPEG, or any format the
	// engine reads natively).
	Image []byte

	// Languages lists trained-data language hints (e.g. "eng", "deu").
	Languages []string
}

// Result captures recognition output for a single input image.
type Result struct {
	// Name mirrors the Input.Name that produced this result.
	Name string

	// Text is the extracted plain text with surrounding whitespace
	// trimmed.
	Text string
}

// Engine is the OCR provider contract: one image in, one result out.
// An Engine must be safe for concurrent use by multiple workers.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}
