package markup

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Defaults applied when a block carries no font wrapper.
const (
	DefaultSize  = 10
	DefaultColor = "black"
)

// Paragraph is one parsed markup block: a font context plus its lines.
type Paragraph struct {
	Size  int
	Color string
	Lines []Line
}

// Line is an ordered run of text and inline-image segments.
type Line []Segment

// Segment is one run within a line; Image is nil for text segments.
type Segment struct {
	Text  string
	Image *InlineImage
}

// InlineImage is an image token with its source and display size.
type InlineImage struct {
	Src    string
	Width  float64
	Height float64
}

// Text returns the concatenated text content of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		if s.Image == nil {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// HasImage reports whether the line embeds an inline image.
func (l Line) HasImage() bool {
	for _, s := range l {
		if s.Image != nil {
			return true
		}
	}
	return false
}

// Parse reads one markup block into its paragraph structure.
func Parse(s string) (Paragraph, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return Paragraph{}, fmt.Errorf("markup: parse: %w", err)
	}
	p := &parser{par: Paragraph{Size: DefaultSize, Color: DefaultColor}}
	p.walk(doc)
	if p.err != nil {
		return Paragraph{}, p.err
	}
	if len(p.line) > 0 {
		p.endLine()
	}
	return p.par, nil
}

type parser struct {
	par  Paragraph
	line Line
	err  error
}

func (p *parser) walk(n *html.Node) {
	if p.err != nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		if n.Data != "" {
			p.line = append(p.line, Segment{Text: n.Data})
		}
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Font:
			p.applyFont(n)
		case atom.Br:
			p.endLine()
			return
		case atom.Img:
			p.addImage(n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c)
	}
}

func (p *parser) endLine() {
	p.par.Lines = append(p.par.Lines, p.line)
	p.line = nil
}

func (p *parser) applyFont(n *html.Node) {
	for _, a := range n.Attr {
		switch a.Key {
		case "size":
			size, err := strconv.Atoi(a.Val)
			if err != nil {
				p.err = fmt.Errorf("markup: bad font size %q", a.Val)
				return
			}
			p.par.Size = size
		case "color":
			p.par.Color = a.Val
		}
	}
}

func (p *parser) addImage(n *html.Node) {
	var img InlineImage
	for _, a := range n.Attr {
		switch a.Key {
		case "src":
			img.Src = a.Val
		case "width":
			img.Width = p.dim(a.Val)
		case "height":
			img.Height = p.dim(a.Val)
		}
	}
	if p.err != nil {
		return
	}
	if img.Src == "" {
		p.err = fmt.Errorf("markup: image token without src")
		return
	}
	p.line = append(p.line, Segment{Image: &img})
}

func (p *parser) dim(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.err = fmt.Errorf("markup: bad image dimension %q", v)
		return 0
	}
	return f
}
