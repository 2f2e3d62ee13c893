// Package codes renders certificate identifiers as scannable raster codes.
package codes

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"

	"certgen/pkg/imaging"
)

// qrPixelSize is the square edge of the rendered QR raster. The symbol
// version inside it is chosen by the encoder to be the smallest that
// holds the payload at medium error correction.
const qrPixelSize = 400

// Raster is an encoded code image ready for placement.
type Raster struct {
	PNG    []byte
	Bounds imaging.Raster
}

// Code128 encodes payload as a Code 128 barcode. Payloads containing
// runes outside the symbology's character set are rejected, never
// truncated. The raster keeps the 5:1 aspect the templates display at
// 150x30 points.
func Code128(payload string) (Raster, error) {
	bc, err := code128.Encode(payload)
	if err != nil {
		return Raster{}, fmt.Errorf("codes: code128 %q: %w", payload, err)
	}

	// native 1-D codes are one pixel tall; stretch to print resolution
	w := bc.Bounds().Dx() * 3
	h := w / 5
	scaled, err := barcode.Scale(bc, w, h)
	if err != nil {
		return Raster{}, fmt.Errorf("codes: scale code128 %q: %w", payload, err)
	}

	// the scaled code reports 16-bit grayscale, which the PDF engine's
	// PNG parser rejects; redraw at 8 bits before encoding
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return Raster{}, fmt.Errorf("codes: render code128 %q: %w", payload, err)
	}
	return Raster{
		PNG:    buf.Bytes(),
		Bounds: imaging.Raster{Width: w, Height: h},
	}, nil
}

// QR encodes an arbitrary string payload as a square QR raster with
// medium error correction.
func QR(payload string) (Raster, error) {
	data, err := qrcode.Encode(payload, qrcode.Medium, qrPixelSize)
	if err != nil {
		return Raster{}, fmt.Errorf("codes: qr %q: %w", payload, err)
	}
	return Raster{
		PNG:    data,
		Bounds: imaging.Raster{Width: qrPixelSize, Height: qrPixelSize},
	}, nil
}
