package codes

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certgen/pkg/imaging"
)

// decodeRaster reads the payload back out of the rendered pixels with an
// independent decoder.
func decodeRaster(t *testing.T, r Raster, reader gozxing.Reader) string {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(r.PNG))
	require.NoError(t, err)
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := reader.Decode(bmp, nil)
	require.NoError(t, err)
	return res.GetText()
}

func TestCode128RoundTrip(t *testing.T) {
	const payload = "1-1111-11111111-1"

	r, err := Code128(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, r.PNG)
	assert.Equal(t, payload, decodeRaster(t, r, oned.NewCode128Reader()))
}

func TestCode128EightBitRaster(t *testing.T) {
	r, err := Code128("1-1111-11111111-1")
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(r.PNG))
	require.NoError(t, err)
	// the PDF engine rejects 16-bit PNGs
	assert.Equal(t, color.GrayModel, cfg.ColorModel)
}

func TestCode128RasterAspect(t *testing.T) {
	r, err := Code128("1-1111-11111111-1")
	require.NoError(t, err)

	d, err := imaging.DescribeBytes(r.PNG)
	require.NoError(t, err)
	assert.Equal(t, r.Bounds, d)

	// the templates place the barcode at 150x30
	h, err := d.HeightForWidth(150)
	require.NoError(t, err)
	assert.InDelta(t, 30, h, 0.5)
}

func TestCode128RejectsUnsupportedRunes(t *testing.T) {
	_, err := Code128("СПРАВКА-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "СПРАВКА-1")
}

func TestCode128RejectsEmptyPayload(t *testing.T) {
	_, err := Code128("")
	assert.Error(t, err)
}

func TestCode128Deterministic(t *testing.T) {
	a, err := Code128("1-1111-11111111-1")
	require.NoError(t, err)
	b, err := Code128("1-1111-11111111-1")
	require.NoError(t, err)
	assert.Equal(t, a.PNG, b.PNG)
}

func TestQR(t *testing.T) {
	r, err := QR("QR443323580")
	require.NoError(t, err)
	assert.Equal(t, "QR443323580", decodeRaster(t, r, zxqrcode.NewQRCodeReader()))

	d, err := imaging.DescribeBytes(r.PNG)
	require.NoError(t, err)
	assert.Equal(t, imaging.Raster{Width: qrPixelSize, Height: qrPixelSize}, d)
}

func TestQRRejectsOversizedPayload(t *testing.T) {
	_, err := QR(strings.Repeat("a", 4000))
	assert.Error(t, err)
}
