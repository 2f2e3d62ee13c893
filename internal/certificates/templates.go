package certificates

import (
	"fmt"

	"certgen/pkg/codes"
	"certgen/pkg/flow"
	"certgen/pkg/imaging"
)

// Each variant describes its layout as an ordered section list; one
// assembler turns any of them into the renderable block sequence.

type sectionKind int

const (
	kindText sectionKind = iota
	kindSpacer
	kindBarcode
	kindQR
	kindSignature
)

// section is one slot in a variant's fixed layout order.
type section struct {
	kind    sectionKind
	markup  string  // kindText
	height  float64 // kindSpacer
	payload string  // kindBarcode, kindQR
	width   float64 // code or signature display width
	caption string  // kindSignature
	image   string  // kindSignature source path
}

const (
	gapHeight      = 12
	barcodeWidth   = 150
	qrWidth        = 100
	signatureWidth = 80
)

func spacer() section {
	return section{kind: kindSpacer, height: gapHeight}
}

func textOf(m string) section {
	return section{kind: kindText, markup: m}
}

func (d ReferenceData) sections() []section {
	return []section{
		textOf(d.titleSection()),
		spacer(),
		textOf(d.numberSection()),
		spacer(),
		textOf(d.studentSection()),
		spacer(),
		textOf(d.issueSection()),
		spacer(),
		{kind: kindBarcode, payload: d.CertificateNum, width: barcodeWidth},
		spacer(),
		spacer(),
		spacer(),
		{kind: kindSignature, caption: "Декан (Директор):", image: d.DeanSignaturePath, width: signatureWidth},
		spacer(),
		spacer(),
		{kind: kindSignature, caption: "Секретарь (методист) факультета:", image: d.SecretarySignaturePath, width: signatureWidth},
	}
}

func (d StudyStatusData) sections() []section {
	return []section{
		textOf(d.titleSection()),
		spacer(),
		textOf(d.headingSection()),
		spacer(),
		textOf(d.referenceSection()),
		spacer(),
		textOf(d.periodSection()),
		spacer(),
		textOf(d.destinationSection()),
		spacer(),
		textOf(d.semestersSection()),
		spacer(),
		textOf(d.numberSection()),
		spacer(),
		{kind: kindQR, payload: d.QRPayload, width: qrWidth},
		spacer(),
		textOf(d.executorSection()),
		spacer(),
		spacer(),
		{kind: kindSignature, caption: "Начальник учебного управления:", image: d.AuthoritySignaturePath, width: signatureWidth},
	}
}

func (d DraftBoardData) sections() []section {
	return []section{textOf(d.bodySection())}
}

// assemble converts an ordered section list into the renderable block
// sequence. Image-bearing sections resolve their rasters here; the rest
// is a pure mapping, so identical input gives an identical sequence.
func assemble(sections []section) (flow.Sequence, error) {
	seq := make(flow.Sequence, 0, len(sections))
	for i, s := range sections {
		switch s.kind {
		case kindText:
			seq = append(seq, flow.Text{Markup: s.markup})
		case kindSpacer:
			seq = append(seq, flow.Spacer{Height: s.height})
		case kindBarcode:
			blk, err := codeBlock(codes.Code128, s, fmt.Sprintf("code128-%d", i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, blk)
		case kindQR:
			blk, err := codeBlock(codes.QR, s, fmt.Sprintf("qr-%d", i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, blk)
		case kindSignature:
			blk, err := signatureBlock(s)
			if err != nil {
				return nil, err
			}
			seq = append(seq, blk)
		default:
			return nil, fmt.Errorf("certificates: unknown section kind %d", s.kind)
		}
	}
	return seq, nil
}

// codeBlock encodes a section's payload and sizes the raster for display.
func codeBlock(encode func(string) (codes.Raster, error), s section, name string) (flow.Image, error) {
	r, err := encode(s.payload)
	if err != nil {
		return flow.Image{}, err
	}
	height, err := r.Bounds.HeightForWidth(s.width)
	if err != nil {
		return flow.Image{}, err
	}
	return flow.Image{Name: name, Data: r.PNG, Width: s.width, Height: height}, nil
}

// signatureBlock reads the signature raster's dimensions and renders the
// caption with the inline image token.
func signatureBlock(s section) (flow.Text, error) {
	r, err := imaging.Describe(s.image)
	if err != nil {
		return flow.Text{}, err
	}
	height, err := r.HeightForWidth(s.width)
	if err != nil {
		return flow.Text{}, fmt.Errorf("certificates: signature %s: %w", s.image, err)
	}
	return flow.Text{Markup: signatureMarkup(s.caption, s.image, s.width, height)}, nil
}
