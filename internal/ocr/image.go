// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"fmt"
	"image/png"

	"golang.org/x/image/tiff"
)

// normalizeImage re-encodes TIFF data to PNG so recognition does not
// depend on the engine's own TIFF support, which varies between
// Leptonica builds. Other formats pass through untouched.
func normalizeImage(data []byte, ext string) ([]byte, error) {
	switch ext {
	case ".tif", ".tiff":
	default:
		return data, nil
	}

	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding tiff: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
