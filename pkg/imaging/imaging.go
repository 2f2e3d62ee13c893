// Package imaging reads raster dimensions and computes aspect-preserving
// display sizes for placed images.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// ErrBadDimensions reports a raster or target size that cannot produce a
// valid placement.
var ErrBadDimensions = errors.New("imaging: non-positive dimension")

// Raster holds the native pixel dimensions of a decoded image.
type Raster struct {
	Width  int
	Height int
}

// Describe reads the dimensions of the image at path without decoding the
// full pixel data.
func Describe(path string) (Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Raster{}, fmt.Errorf("imaging: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Raster{}, fmt.Errorf("imaging: decode %s: %w", path, err)
	}
	return Raster{Width: cfg.Width, Height: cfg.Height}, nil
}

// DescribeBytes reads the dimensions of an in-memory encoded image.
func DescribeBytes(data []byte) (Raster, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Raster{}, fmt.Errorf("imaging: decode raster: %w", err)
	}
	return Raster{Width: cfg.Width, Height: cfg.Height}, nil
}

// HeightForWidth returns the display height that keeps the raster's
// native aspect ratio at the requested display width. A zero-dimension
// source signals a corrupt or placeholder asset, not a degenerate zero
// result.
func (r Raster) HeightForWidth(width float64) (float64, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, fmt.Errorf("%w: source %dx%d", ErrBadDimensions, r.Width, r.Height)
	}
	if width <= 0 {
		return 0, fmt.Errorf("%w: target width %g", ErrBadDimensions, width)
	}
	return width * float64(r.Height) / float64(r.Width), nil
}
