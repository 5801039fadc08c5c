package layout

import (
	"github.com/passqr/passqr/internal/text"
)

// TextBox places shaped text. (X, Y) is the shaping origin: the left edge
// of the wrap width and the baseline of the first line.
type TextBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	Shaped *text.ShapedText
}

func (b *TextBox) GetX() float64      { return b.X }
func (b *TextBox) GetY() float64      { return b.Y }
func (b *TextBox) GetWidth() float64  { return b.Width }
func (b *TextBox) GetHeight() float64 { return b.Height }
