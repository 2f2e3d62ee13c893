package render

import "golang.org/x/image/font/gofont/goregular"

// Style is the one-time document configuration a caller creates before
// generating: font resources, text geometry, page margins. A Style is
// copied into each document, so one value can serve concurrent calls.
type Style struct {
	FontFamily  string
	FontBytes   []byte
	BaseSize    float64
	LineSpacing float64 // line height as a multiple of the font size
	Margin      float64 // uniform page margin in points
}

// DefaultStyle returns the standard certificate style: US Letter with
// one-inch margins and the embedded fallback face.
func DefaultStyle() Style {
	return Style{
		FontFamily:  "CertSans",
		FontBytes:   goregular.TTF,
		BaseSize:    10,
		LineSpacing: 1.2,
		Margin:      72,
	}
}
