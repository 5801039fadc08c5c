package layout

// ImageBox places a PNG image with its bottom-left corner at (X, Y).
// Width and Height are the rendered size in points, derived from the
// image's actual pixel size.
type ImageBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// PNG holds the encoded image.
	PNG []byte
	// Payload is the text the image encodes, kept for diagnostics.
	Payload string
}

func (b *ImageBox) GetX() float64      { return b.X }
func (b *ImageBox) GetY() float64      { return b.Y }
func (b *ImageBox) GetWidth() float64  { return b.Width }
func (b *ImageBox) GetHeight() float64 { return b.Height }
