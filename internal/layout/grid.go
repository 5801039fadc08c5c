package layout

import "math"

// Grid places QR codes and labels in a Columns × Rows grid of equal cells.
// Each cell is split into a label band at the top and a QR band below it.
// Column 0 is leftmost and row 0 is the bottom row.
type Grid struct {
	options Options

	cellWidth    float64
	cellHeight   float64
	qrBandHeight float64
	qrSize       float64
	labelLines   int
}

// NewGrid computes the cell geometry for options. Columns and Rows must be
// positive.
func NewGrid(options Options) *Grid {
	workable := options.Workable()

	g := &Grid{options: options}
	g.cellWidth = workable.Size.X / float64(options.Columns)
	g.cellHeight = workable.Size.Y / float64(options.Rows)
	g.qrBandHeight = g.cellHeight - options.LabelHeight
	g.qrSize = min(g.qrBandHeight, g.cellWidth)
	g.labelLines = 1
	if options.LineHeight > 0 {
		spare := options.LabelHeight - options.FontAscent - options.FontDescent
		g.labelLines += max(0, int(math.Floor(spare/options.LineHeight)))
	}
	return g
}

// Columns returns the number of grid columns
func (g *Grid) Columns() int { return g.options.Columns }

// Rows returns the number of grid rows
func (g *Grid) Rows() int { return g.options.Rows }

// Capacity returns the number of cells on one page.
func (g *Grid) Capacity() int { return g.options.Columns * g.options.Rows }

// CellWidth returns the width of a cell, which is also the label wrap width.
func (g *Grid) CellWidth() float64 { return g.cellWidth }

// CellHeight returns the height of a cell
func (g *Grid) CellHeight() float64 { return g.cellHeight }

// QRBandHeight returns the height left for the QR code below the label
func (g *Grid) QRBandHeight() float64 { return g.qrBandHeight }

// QRSize returns the side of the square QR target for every cell.
func (g *Grid) QRSize() float64 { return g.qrSize }

func (g *Grid) corner(i, j int) Point {
	return Point{
		X: g.options.Margin + g.cellWidth*float64(i),
		Y: g.options.Margin + g.cellHeight*float64(j),
	}
}

// QRBand returns the QR band of cell (i, j).
func (g *Grid) QRBand(i, j int) Rect {
	return Rect{
		Origin: g.corner(i, j),
		Size:   Point{X: g.cellWidth, Y: g.qrBandHeight},
	}
}

// LabelBand returns the label band of cell (i, j).
func (g *Grid) LabelBand(i, j int) Rect {
	c := g.corner(i, j)
	return Rect{
		Origin: Point{X: c.X, Y: c.Y + g.qrBandHeight},
		Size:   Point{X: g.cellWidth, Y: g.options.LabelHeight},
	}
}

// LabelLines returns how many label lines fit in the label band. It is
// at least one.
func (g *Grid) LabelLines() int { return g.labelLines }

// LabelPlacement returns the left edge of cell (i, j) and the baseline of
// the first of the given number of label lines, so that the block from the
// first line's ascent to the last line's descent is vertically centred in
// the label band. Later lines step down by LineHeight. Horizontal centring
// within CellWidth is left to the text shaper.
func (g *Grid) LabelPlacement(i, j, lines int) Point {
	lines = max(lines, 1)
	o := g.options
	drop := float64(lines-1) * o.LineHeight
	block := o.FontAscent + o.FontDescent + drop

	band := g.LabelBand(i, j)
	return Point{
		X: band.Origin.X,
		Y: band.Origin.Y + (o.LabelHeight-block)/2 + o.FontDescent + drop,
	}
}

// QRPlacement returns where a QR image of the given actual size goes so
// that it is centred in the QR band of cell (i, j). The actual size can
// differ from QRSize because encoders snap to whole pixels per module.
func (g *Grid) QRPlacement(i, j int, actual Point) Point {
	return Center(g.QRBand(i, j), actual)
}
