package layout

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a page position or a size, in points, with the origin at the
// bottom-left corner of the page and y growing upwards.
type Point = vec.Vec2

// Rect is an axis-aligned rectangle given by its bottom-left corner and
// its size.
type Rect struct {
	Origin Point
	Size   Point
}

// Bounds returns r in corner form.
func (r Rect) Bounds() rect.Rect {
	return rect.Rect{
		LLx: r.Origin.X,
		LLy: r.Origin.Y,
		URx: r.Origin.X + r.Size.X,
		URy: r.Origin.Y + r.Size.Y,
	}
}

// Center returns the bottom-left corner at which content must be placed to
// be centred in container. Each axis is handled on its own. Content larger
// than the container yields an origin before the container's origin on
// that axis.
func Center(container Rect, content Point) Point {
	return Point{
		X: container.Origin.X + (container.Size.X-content.X)/2,
		Y: container.Origin.Y + (container.Size.Y-content.Y)/2,
	}
}

// Options describes the page and grid geometry shared by every page of a
// document. All lengths are in points.
type Options struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	Columns int
	Rows    int

	// LabelHeight is the height of the label band at the top of each cell.
	LabelHeight float64
	// FontSize, FontAscent and FontDescent describe the label font; with
	// LineHeight, the distance between baselines, they decide how many
	// label lines fit the band and where the first baseline goes.
	FontSize    float64
	FontAscent  float64
	FontDescent float64
	LineHeight  float64
}

// Workable returns the page area inside the margins.
func (o Options) Workable() Rect {
	return Rect{
		Origin: Point{X: o.Margin, Y: o.Margin},
		Size:   Point{X: o.PageWidth - 2*o.Margin, Y: o.PageHeight - 2*o.Margin},
	}
}
