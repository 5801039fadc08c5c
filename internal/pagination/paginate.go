package pagination

import (
	"iter"

	"github.com/passqr/passqr/internal/layout"
	"github.com/passqr/passqr/internal/parser/kv"
)

// Kind tells grid pages from recap pages
type Kind int

const (
	// KindGrid pages hold one QR code and label per entry.
	KindGrid Kind = iota
	// KindRecap pages hold one QR code encoding a whole chunk.
	KindRecap
)

func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindRecap:
		return "recap"
	}
	return "unknown"
}

// Page represents a single page in the document
type Page struct {
	Kind Kind
	// Chunk is the index of the chunk the page was built from.
	Chunk  int
	Width  float64
	Height float64
	Boxes  []layout.Box
	// Bands are the layout regions used on the page, drawn only as debug
	// overlays.
	Bands []layout.Rect
}

// Cell is an entry assigned to a grid position.
type Cell struct {
	Column int
	Row    int
	Entry  kv.Entry
}

// Chunk is the run of entries that fills one grid page and its recap page.
type Chunk struct {
	Index   int
	Entries kv.List
	Cells   []Cell
}

// Payload returns the recap text for the chunk: its entries, in their
// original order, as key/value text.
func (c Chunk) Payload() (string, error) {
	return c.Entries.Marshal()
}

// Paginator splits an entry list into page-sized chunks
type Paginator struct {
	Columns int
	Rows    int
}

// NewPaginator creates a new paginator
func NewPaginator(columns, rows int) *Paginator {
	return &Paginator{
		Columns: columns,
		Rows:    rows,
	}
}

// Capacity returns the number of entries on a full page
func (p *Paginator) Capacity() int {
	return p.Columns * p.Rows
}

// Chunks yields the entries in consecutive blocks of Capacity entries; the
// last block holds the remainder. No chunk is empty and an empty list
// yields nothing.
func (p *Paginator) Chunks(entries kv.List) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		size := p.Capacity()
		if size <= 0 {
			return
		}
		index := 0
		for start := 0; start < len(entries); start += size {
			end := min(start+size, len(entries))
			chunk := entries[start:end:end]
			if !yield(Chunk{Index: index, Entries: chunk, Cells: p.Assign(chunk)}) {
				return
			}
			index++
		}
	}
}

// Assign gives each entry a grid cell so that the printed page reads left
// to right, top to bottom. Rows are visited from the top (highest index)
// down and columns from the left. Entries beyond the grid capacity are
// not assigned.
func (p *Paginator) Assign(entries kv.List) []Cell {
	cells := make([]Cell, 0, min(len(entries), p.Capacity()))
	next := 0
fill:
	for j := p.Rows - 1; j >= 0; j-- {
		for i := 0; i < p.Columns; i++ {
			if next >= len(entries) {
				break fill
			}
			cells = append(cells, Cell{Column: i, Row: j, Entry: entries[next]})
			next++
		}
	}
	return cells
}

// Coord returns the grid cell of the entry at index within a chunk. It
// agrees with Assign.
func (p *Paginator) Coord(index int) (column, row int) {
	return index % p.Columns, p.Rows - 1 - index/p.Columns
}

// CalculatePageCount calculates the number of pages needed, counting the
// grid and recap page of every chunk
func (p *Paginator) CalculatePageCount(entries kv.List) int {
	size := p.Capacity()
	if size <= 0 {
		return 0
	}
	return 2 * ((len(entries) + size - 1) / size)
}
