package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certgen/pkg/flow"
	"certgen/pkg/markup"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)
	assert.NotNil(t, doc)
}

func TestNewDocumentBadFont(t *testing.T) {
	style := DefaultStyle()
	style.FontBytes = []byte("not a font")

	_, err := NewDocument(style)
	assert.Error(t, err)
}

func TestBuildTextSequence(t *testing.T) {
	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	seq := flow.Sequence{
		flow.Text{Markup: markup.Text(12, "black", "МИНИСТЕРСТВО ОБРАЗОВАНИЯ", "Университет")},
		flow.Spacer{Height: 12},
		flow.Text{Markup: markup.Text(10, "black", "Справка выдана по месту требования.", "", "17.01.2023")},
	}
	require.NoError(t, doc.Build(seq, nil))
	assert.Equal(t, 1, doc.PageCount())

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestBuildImageBlock(t *testing.T) {
	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	seq := flow.Sequence{
		flow.Image{Name: "code", Data: encodeTestPNG(t, 300, 60), Width: 150, Height: 30},
	}
	require.NoError(t, doc.Build(seq, nil))

	data, err := doc.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuildInlineImageLine(t *testing.T) {
	sig := filepath.Join(t.TempDir(), "sig.png")
	writeTestPNG(t, sig, 160, 80)

	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	seq := flow.Sequence{
		flow.Text{Markup: markup.Text(10, "black", "Декан (Директор): "+markup.Img(sig, 80, 40))},
	}
	require.NoError(t, doc.Build(seq, nil))
}

func TestBuildOverlayRunsOncePerDocument(t *testing.T) {
	seal := filepath.Join(t.TempDir(), "seal.png")
	writeTestPNG(t, seal, 100, 100)

	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	calls := 0
	err = doc.Build(flow.Sequence{flow.Text{Markup: "текст"}}, func(c *Canvas) error {
		calls++
		return c.DrawImageFile(seal, 393, 432, 100)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestBuildOverlayMissingFile(t *testing.T) {
	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	err = doc.Build(flow.Sequence{flow.Text{Markup: "текст"}}, func(c *Canvas) error {
		return c.DrawImageFile(filepath.Join(t.TempDir(), "missing.png"), 0, 0, 100)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildBadMarkup(t *testing.T) {
	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)

	err = doc.Build(flow.Sequence{flow.Text{Markup: "<font size=big color=black>x</font>"}}, nil)
	assert.Error(t, err)
}

func TestWriteFileLeavesNoTemporaries(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.pdf")

	doc, err := NewDocument(DefaultStyle())
	require.NoError(t, err)
	require.NoError(t, doc.Build(flow.Sequence{flow.Text{Markup: "готово"}}, nil))
	require.NoError(t, doc.WriteFile(dest))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.pdf", entries[0].Name())

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0}, colorFor("black"))
	assert.Equal(t, Color{255, 0, 0}, colorFor("red"))
	assert.Equal(t, Color{16, 32, 48}, colorFor("#102030"))
	assert.Equal(t, Color{0, 0, 0}, colorFor("no-such-color"))
}
