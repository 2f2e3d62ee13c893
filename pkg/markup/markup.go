// Package markup builds and parses the inline styled markup carried by
// certificate text blocks: a font wrapper with size and color, explicit
// line breaks, and inline image tokens.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Break is the explicit line-break token.
const Break = "<br/>"

// Escape replaces characters in user-supplied data that would otherwise
// read as markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Text wraps pre-built lines in a font element, joining them with
// explicit line breaks. Lines carry already-escaped data and may embed
// image tokens.
func Text(size int, color string, lines ...string) string {
	return fmt.Sprintf("<font size=%d color=%s>%s</font>", size, color, strings.Join(lines, Break))
}

// Img returns an inline image token with a fixed display size in points.
func Img(src string, width, height float64) string {
	return fmt.Sprintf("<img src='%s' width='%s' height='%s'/>",
		html.EscapeString(src), formatPt(width), formatPt(height))
}

func formatPt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
