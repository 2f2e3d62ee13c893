package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"certgen/pkg/flow"
	"certgen/pkg/imaging"
	"certgen/pkg/markup"
)

// Color represents an RGB text color
type Color struct {
	R int
	G int
	B int
}

var namedColors = map[string]Color{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"blue":  {0, 0, 255},
	"gray":  {128, 128, 128},
}

// colorFor resolves a markup color name or #rrggbb value; unknown names
// fall back to black.
func colorFor(name string) Color {
	if c, ok := namedColors[strings.ToLower(name)]; ok {
		return c
	}
	var c Color
	if n, err := fmt.Sscanf(strings.ToLower(name), "#%02x%02x%02x", &c.R, &c.G, &c.B); err == nil && n == 3 {
		return c
	}
	return Color{}
}

// Overlay draws on the first page at absolute coordinates after the flow
// content is laid out.
type Overlay func(c *Canvas) error

// Document renders one assembled block sequence to a paginated PDF. A
// document is single use: build, then write.
type Document struct {
	pdf   *gofpdf.Fpdf
	style Style
}

// NewDocument creates a document with the style's font registered and
// the first page opened.
func NewDocument(style Style) (*Document, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(style.Margin, style.Margin, style.Margin)
	pdf.SetAutoPageBreak(true, style.Margin)
	pdf.AddUTF8FontFromBytes(style.FontFamily, "", style.FontBytes)
	pdf.SetFont(style.FontFamily, "", style.BaseSize)
	pdf.AddPage()
	if pdf.Err() {
		return nil, fmt.Errorf("render: register font %s: %w", style.FontFamily, pdf.Error())
	}
	return &Document{pdf: pdf, style: style}, nil
}

// Build lays out the sequence top to bottom, then runs the overlay pass
// on the first page.
func (d *Document) Build(seq flow.Sequence, overlay Overlay) error {
	for i, b := range seq {
		var err error
		switch blk := b.(type) {
		case flow.Text:
			err = d.text(blk)
		case flow.Image:
			err = d.image(blk)
		case flow.Spacer:
			d.pdf.Ln(blk.Height)
		default:
			err = fmt.Errorf("render: unsupported block %T at index %d", b, i)
		}
		if err != nil {
			return err
		}
	}

	if overlay != nil {
		last := d.pdf.PageNo()
		d.pdf.SetPage(1)
		err := overlay(&Canvas{doc: d})
		d.pdf.SetPage(last)
		if err != nil {
			return err
		}
	}

	if d.pdf.Err() {
		return fmt.Errorf("render: layout: %w", d.pdf.Error())
	}
	return nil
}

// text parses one markup block and renders its lines centered.
func (d *Document) text(b flow.Text) error {
	par, err := markup.Parse(b.Markup)
	if err != nil {
		return err
	}

	c := colorFor(par.Color)
	d.pdf.SetTextColor(c.R, c.G, c.B)
	size := float64(par.Size)
	d.pdf.SetFont(d.style.FontFamily, "", size)
	lineHeight := size * d.style.LineSpacing

	for _, line := range par.Lines {
		if line.HasImage() {
			if err := d.inlineLine(line, lineHeight); err != nil {
				return err
			}
			continue
		}
		d.pdf.MultiCell(0, lineHeight, line.Text(), "", "C", false)
	}
	return nil
}

// inlineLine centers a caption line that embeds inline images, keeping
// text and images on a shared row.
func (d *Document) inlineLine(line markup.Line, lineHeight float64) error {
	rowHeight := lineHeight
	width := 0.0
	for _, seg := range line {
		if seg.Image != nil {
			width += seg.Image.Width
			if seg.Image.Height > rowHeight {
				rowHeight = seg.Image.Height
			}
			continue
		}
		width += d.pdf.GetStringWidth(seg.Text)
	}

	pageWidth, pageHeight := d.pdf.GetPageSize()
	left, _, right, bottom := d.pdf.GetMargins()
	if d.pdf.GetY()+rowHeight > pageHeight-bottom {
		d.pdf.AddPage()
	}

	x := left + (pageWidth-left-right-width)/2
	y := d.pdf.GetY()
	for _, seg := range line {
		if seg.Image != nil {
			if err := d.placeFile(seg.Image.Src, x, y, seg.Image.Width, seg.Image.Height); err != nil {
				return err
			}
			x += seg.Image.Width
			continue
		}
		w := d.pdf.GetStringWidth(seg.Text)
		d.pdf.SetXY(x, y)
		d.pdf.CellFormat(w, rowHeight, seg.Text, "", 0, "LM", false, 0, "")
		x += w
	}
	d.pdf.SetY(y + rowHeight)
	return nil
}

// image centers an in-memory raster block at its computed display size.
func (d *Document) image(b flow.Image) error {
	pageWidth, pageHeight := d.pdf.GetPageSize()
	left, _, right, bottom := d.pdf.GetMargins()
	if d.pdf.GetY()+b.Height > pageHeight-bottom {
		d.pdf.AddPage()
	}

	opts := gofpdf.ImageOptions{ImageType: "png"}
	d.pdf.RegisterImageOptionsReader(b.Name, opts, bytes.NewReader(b.Data))
	x := left + (pageWidth-left-right-b.Width)/2
	d.pdf.ImageOptions(b.Name, x, d.pdf.GetY(), b.Width, b.Height, false, opts, 0, "")
	d.pdf.SetY(d.pdf.GetY() + b.Height)

	if d.pdf.Err() {
		return fmt.Errorf("render: place %s: %w", b.Name, d.pdf.Error())
	}
	return nil
}

// placeFile registers the image file once and draws it with its top-left
// corner at (x, y).
func (d *Document) placeFile(path string, x, y, width, height float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("render: open image %s: %w", path, err)
	}
	defer f.Close()

	opts := gofpdf.ImageOptions{
		ImageType: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}
	d.pdf.RegisterImageOptionsReader(path, opts, f)
	d.pdf.ImageOptions(path, x, y, width, height, false, opts, 0, "")

	if d.pdf.Err() {
		return fmt.Errorf("render: place image %s: %w", path, d.pdf.Error())
	}
	return nil
}

// Canvas draws at absolute page coordinates during the overlay pass.
type Canvas struct {
	doc *Document
}

// DrawImageFile places the image at path with its top-left corner at
// (x, y), scaled to width with the native aspect preserved.
func (c *Canvas) DrawImageFile(path string, x, y, width float64) error {
	r, err := imaging.Describe(path)
	if err != nil {
		return err
	}
	height, err := r.HeightForWidth(width)
	if err != nil {
		return fmt.Errorf("render: overlay %s: %w", path, err)
	}
	return c.doc.placeFile(path, x, y, width, height)
}

// PageCount returns the number of rendered pages.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Bytes finalizes the document and returns the PDF content.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: output: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile finalizes the document and writes it to path atomically: the
// content goes to a temporary name in the same directory and is renamed
// into place only after a complete write, so a failed run leaves nothing
// at the destination.
func (d *Document) WriteFile(path string) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", tmp, err)
	}
	if err := d.pdf.Output(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("render: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("render: rename to %s: %w", path, err)
	}
	return nil
}
