package pagination

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/passqr/passqr/internal/layout"
	"github.com/passqr/passqr/internal/parser/kv"
	"github.com/passqr/passqr/internal/qr"
	"github.com/passqr/passqr/internal/text"
)

// QREncoder turns a payload into a QR image of at most size pixels
type QREncoder interface {
	Encode(payload string, size int) (*qr.Image, error)
}

// Shaper wraps and aligns label text
type Shaper interface {
	ShapeText(s string, maxWidth float64) (*text.ShapedText, error)
}

// Options represents options for the pagination engine
type Options struct {
	Layout layout.Options
	// RecapQRSize is the requested side of the recap QR code, in points.
	RecapQRSize float64
	// DPI converts between points and QR image pixels.
	DPI float64
}

// DefaultOptions returns A4 pages with a 10mm margin and a 3×4 grid.
func DefaultOptions() Options {
	return Options{
		Layout: layout.Options{
			PageWidth:   595.28,
			PageHeight:  841.89,
			Margin:      28.35,
			Columns:     3,
			Rows:        4,
			LabelHeight: 24,
			FontSize:    10,
			FontAscent:  9,
			FontDescent: 2,
			LineHeight:  12,
		},
		RecapQRSize: 368.5,
		DPI:         300,
	}
}

// Engine builds the page descriptions for an entry list: a grid page and
// a recap page per chunk.
type Engine struct {
	options   Options
	grid      *layout.Grid
	single    *layout.Single
	paginator *Paginator

	encoder QREncoder
	shaper  Shaper

	// Logger receives debug records about placement; nil means slog.Default().
	Logger *slog.Logger
}

// NewEngine creates a new pagination engine with DefaultOptions
func NewEngine(encoder QREncoder, shaper Shaper) *Engine {
	e := &Engine{
		encoder: encoder,
		shaper:  shaper,
	}
	e.SetOptions(DefaultOptions())
	return e
}

// SetOptions sets the options for the pagination engine and recomputes the
// layout geometry.
func (e *Engine) SetOptions(options Options) {
	e.options = options
	e.grid = layout.NewGrid(options.Layout)
	e.single = layout.NewSingle(options.Layout, options.RecapQRSize)
	e.paginator = NewPaginator(e.grid.Columns(), e.grid.Rows())
}

// Grid returns the grid layout in use
func (e *Engine) Grid() *layout.Grid { return e.grid }

// Single returns the recap layout in use
func (e *Engine) Single() *layout.Single { return e.single }

// Paginator returns the chunking policy in use
func (e *Engine) Paginator() *Paginator { return e.paginator }

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// Paginate lays out entries, in order, as alternating grid and recap pages.
// An empty list yields no pages. The first error aborts pagination.
func (e *Engine) Paginate(entries kv.List) ([]*Page, error) {
	pages := make([]*Page, 0, e.paginator.CalculatePageCount(entries))
	for chunk := range e.paginator.Chunks(entries) {
		grid, err := e.gridPage(chunk)
		if err != nil {
			return nil, fmt.Errorf("grid page %d: %w", chunk.Index+1, err)
		}
		recap, err := e.recapPage(chunk)
		if err != nil {
			return nil, fmt.Errorf("recap page %d: %w", chunk.Index+1, err)
		}
		pages = append(pages, grid, recap)
	}
	return pages, nil
}

func (e *Engine) newPage(kind Kind, chunk Chunk) *Page {
	return &Page{
		Kind:   kind,
		Chunk:  chunk.Index,
		Width:  e.options.Layout.PageWidth,
		Height: e.options.Layout.PageHeight,
	}
}

func (e *Engine) gridPage(chunk Chunk) (*Page, error) {
	page := e.newPage(KindGrid, chunk)
	target := e.pixels(e.grid.QRSize())
	e.logger().Debug("grid page", "chunk", chunk.Index, "labels", chunk.Entries.Labels())

	for _, cell := range chunk.Cells {
		img, err := e.encoder.Encode(cell.Entry.Secret, target)
		if errors.Is(err, qr.ErrEmptyPayload) {
			return nil, fmt.Errorf("entry %q has an empty secret and cannot be drawn as a QR code: %w", cell.Entry.Label, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to encode QR code for %q: %w", cell.Entry.Label, err)
		}
		size := e.size(img)
		at := e.grid.QRPlacement(cell.Column, cell.Row, size)
		e.checkFit(cell.Entry.Label, size, e.grid.QRSize())

		shaped, err := e.shaper.ShapeText(cell.Entry.Label, e.grid.CellWidth())
		if err != nil {
			return nil, fmt.Errorf("failed to shape label %q: %w", cell.Entry.Label, err)
		}
		if shaped.Truncate(e.grid.LabelLines()) {
			e.logger().Warn("label does not fit its band, extra lines dropped",
				"label", cell.Entry.Label,
				"lines", e.grid.LabelLines())
		}
		origin := e.grid.LabelPlacement(cell.Column, cell.Row, len(shaped.Lines))

		e.logger().Debug("placed cell",
			"chunk", chunk.Index,
			"column", cell.Column,
			"row", cell.Row,
			"qr_x", at.X,
			"qr_y", at.Y,
			"qr_size", size.X,
			"label_lines", len(shaped.Lines))

		page.Boxes = append(page.Boxes,
			&layout.ImageBox{
				X:       at.X,
				Y:       at.Y,
				Width:   size.X,
				Height:  size.Y,
				PNG:     img.PNG,
				Payload: cell.Entry.Secret,
			},
			&layout.TextBox{
				X:      origin.X,
				Y:      origin.Y,
				Width:  e.grid.CellWidth(),
				Height: shaped.Height,
				Shaped: shaped,
			},
		)
		page.Bands = append(page.Bands,
			e.grid.LabelBand(cell.Column, cell.Row),
			e.grid.QRBand(cell.Column, cell.Row))
	}
	return page, nil
}

func (e *Engine) recapPage(chunk Chunk) (*Page, error) {
	page := e.newPage(KindRecap, chunk)

	payload, err := chunk.Payload()
	if err != nil {
		return nil, err
	}
	img, err := e.encoder.Encode(payload, e.pixels(e.single.QRSize()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode recap of %d entries: %w", len(chunk.Entries), err)
	}
	size := e.size(img)
	at := e.single.QRPlacement(size)
	e.checkFit("recap", size, e.single.QRSize())

	e.logger().Debug("placed recap",
		"chunk", chunk.Index,
		"entries", len(chunk.Entries),
		"payload_bytes", len(payload),
		"qr_size", size.X)

	page.Boxes = append(page.Boxes, &layout.ImageBox{
		X:       at.X,
		Y:       at.Y,
		Width:   size.X,
		Height:  size.Y,
		PNG:     img.PNG,
		Payload: payload,
	})
	page.Bands = append(page.Bands, e.single.Area())
	return page, nil
}

// checkFit logs codes that came back larger than their band. They are
// still centred, overlapping their surroundings.
func (e *Engine) checkFit(what string, size layout.Point, target float64) {
	if size.X > target || size.Y > target {
		e.logger().Debug("QR code exceeds its band",
			"item", what,
			"width", size.X,
			"height", size.Y,
			"target", target)
	}
}

// pixels converts a length in points to whole image pixels.
func (e *Engine) pixels(pt float64) int {
	return int(math.Floor(pt / 72 * e.options.DPI))
}

// size returns the physical size of an encoded image.
func (e *Engine) size(img *qr.Image) layout.Point {
	return layout.Point{
		X: float64(img.Width) * 72 / e.options.DPI,
		Y: float64(img.Height) * 72 / e.options.DPI,
	}
}
