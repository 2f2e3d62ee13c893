// Package flow defines the linear block sequence a certificate document
// is assembled from. Block order equals visual top-to-bottom order.
package flow

// Kind identifies the layout treatment of a block.
type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindSpacer Kind = "spacer"
)

// Block is one unit of vertically ordered document content.
type Block interface {
	Kind() Kind
}

// Text is a styled markup paragraph.
type Text struct {
	Markup string
}

// Image is an in-memory raster placed centered at a fixed display size.
type Image struct {
	Name   string  // registration name, unique within one document
	Data   []byte  // encoded PNG
	Width  float64 // display width in points
	Height float64 // display height in points
}

// Spacer is fixed vertical whitespace.
type Spacer struct {
	Height float64
}

func (Text) Kind() Kind   { return KindText }
func (Image) Kind() Kind  { return KindImage }
func (Spacer) Kind() Kind { return KindSpacer }

// Sequence is the ordered content of one document.
type Sequence []Block

// Kinds returns the ordered block kinds of the sequence.
func (s Sequence) Kinds() []Kind {
	out := make([]Kind, len(s))
	for i, b := range s {
		out[i] = b.Kind()
	}
	return out
}

// Texts returns the markup of every text block, in sequence order.
func (s Sequence) Texts() []string {
	var out []string
	for _, b := range s {
		if t, ok := b.(Text); ok {
			out = append(out, t.Markup)
		}
	}
	return out
}
