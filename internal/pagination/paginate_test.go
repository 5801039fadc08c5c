package pagination

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/passqr/passqr/internal/parser/kv"
)

func makeEntries(n int) kv.List {
	entries := make(kv.List, n)
	for i := range entries {
		entries[i] = kv.Entry{
			Label:  fmt.Sprintf("label-%03d", i),
			Secret: fmt.Sprintf("secret-%03d", i),
		}
	}
	return entries
}

func TestChunksPartitionLaw(t *testing.T) {
	shapes := []struct{ columns, rows int }{{1, 1}, {2, 4}, {3, 4}, {5, 2}}
	for _, shape := range shapes {
		p := NewPaginator(shape.columns, shape.rows)
		for n := 0; n <= 3*p.Capacity()+1; n++ {
			entries := makeEntries(n)

			var joined kv.List
			count := 0
			for chunk := range p.Chunks(entries) {
				if len(chunk.Entries) == 0 || len(chunk.Entries) > p.Capacity() {
					t.Fatalf("%dx%d, n=%d: chunk %d has %d entries",
						shape.columns, shape.rows, n, chunk.Index, len(chunk.Entries))
				}
				if chunk.Index != count {
					t.Errorf("chunk index %d, want %d", chunk.Index, count)
				}
				if len(chunk.Cells) != len(chunk.Entries) {
					t.Errorf("chunk %d: %d cells for %d entries", chunk.Index, len(chunk.Cells), len(chunk.Entries))
				}
				joined = append(joined, chunk.Entries...)
				count++
			}

			if d := cmp.Diff(entries, joined, cmpEmpty); d != "" {
				t.Errorf("%dx%d, n=%d: concatenated chunks differ (-want +got):\n%s",
					shape.columns, shape.rows, n, d)
			}
			if want := (n + p.Capacity() - 1) / p.Capacity(); count != want {
				t.Errorf("%dx%d, n=%d: %d chunks, want %d", shape.columns, shape.rows, n, count, want)
			}
			if got := p.CalculatePageCount(entries); got != 2*count {
				t.Errorf("page count %d, want %d", got, 2*count)
			}
		}
	}
}

// cmpEmpty treats nil and empty lists as equal.
var cmpEmpty = cmp.Comparer(func(a, b kv.List) bool {
	return slices.Equal(a, b)
})

func TestChunksEmpty(t *testing.T) {
	p := NewPaginator(3, 4)
	for chunk := range p.Chunks(nil) {
		t.Errorf("unexpected chunk %v", chunk)
	}
}

func TestChunksStopEarly(t *testing.T) {
	p := NewPaginator(1, 2)
	seen := 0
	for range p.Chunks(makeEntries(10)) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("saw %d chunks", seen)
	}
}

func TestChunksDoNotAlias(t *testing.T) {
	p := NewPaginator(1, 2)
	entries := makeEntries(4)
	var first Chunk
	for chunk := range p.Chunks(entries) {
		first = chunk
		break
	}
	first.Entries = append(first.Entries, kv.Entry{Label: "x"})
	if entries[2].Label != "label-002" {
		t.Error("appending to a chunk overwrote the next chunk")
	}
}

func TestAssignReadingOrder(t *testing.T) {
	p := NewPaginator(3, 4)
	for n := 1; n <= p.Capacity(); n++ {
		cells := p.Assign(makeEntries(n))
		if len(cells) != n {
			t.Fatalf("n=%d: %d cells", n, len(cells))
		}
		for k, cell := range cells {
			column, row := p.Coord(k)
			if cell.Column != column || cell.Row != row {
				t.Errorf("n=%d, entry %d: cell (%d, %d), Coord gives (%d, %d)",
					n, k, cell.Column, cell.Row, column, row)
			}
			if cell.Entry.Label != fmt.Sprintf("label-%03d", k) {
				t.Errorf("entry %d out of order: %s", k, cell.Entry.Label)
			}
			if k == 0 {
				continue
			}
			// visual order: same row further right, or a lower row
			prev := cells[k-1]
			sameRow := cell.Row == prev.Row && cell.Column == prev.Column+1
			nextRow := cell.Row == prev.Row-1 && cell.Column == 0 && prev.Column == p.Columns-1
			if !sameRow && !nextRow {
				t.Errorf("n=%d: (%d, %d) does not follow (%d, %d) in reading order",
					n, cell.Column, cell.Row, prev.Column, prev.Row)
			}
		}
	}
}

func TestAssignStopsAtCapacity(t *testing.T) {
	p := NewPaginator(2, 2)
	if cells := p.Assign(makeEntries(7)); len(cells) != 4 {
		t.Errorf("assigned %d cells, want 4", len(cells))
	}
}

func TestFullPage(t *testing.T) {
	p := NewPaginator(3, 4)
	var chunks []Chunk
	for chunk := range p.Chunks(makeEntries(12)) {
		chunks = append(chunks, chunk)
	}
	if len(chunks) != 1 {
		t.Fatalf("%d chunks, want 1", len(chunks))
	}

	occupied := map[[2]int]bool{}
	for _, cell := range chunks[0].Cells {
		occupied[[2]int{cell.Column, cell.Row}] = true
	}
	if len(occupied) != 12 {
		t.Errorf("%d distinct cells occupied, want 12", len(occupied))
	}
}

func TestOverflowPage(t *testing.T) {
	p := NewPaginator(3, 4)
	var sizes []int
	for chunk := range p.Chunks(makeEntries(13)) {
		sizes = append(sizes, len(chunk.Entries))
	}
	if d := cmp.Diff([]int{12, 1}, sizes); d != "" {
		t.Error(d)
	}
}

func TestThreeEntries(t *testing.T) {
	entries := kv.List{
		{Label: "svc-a", Secret: "pw1"},
		{Label: "svc-b", Secret: "pw2"},
		{Label: "svc-c", Secret: "pw3"},
	}
	p := NewPaginator(3, 4)

	var chunks []Chunk
	for chunk := range p.Chunks(entries) {
		chunks = append(chunks, chunk)
	}
	if len(chunks) != 1 {
		t.Fatalf("%d chunks, want 1", len(chunks))
	}

	want := []Cell{
		{Column: 0, Row: 3, Entry: entries[0]},
		{Column: 1, Row: 3, Entry: entries[1]},
		{Column: 2, Row: 3, Entry: entries[2]},
	}
	if d := cmp.Diff(want, chunks[0].Cells); d != "" {
		t.Errorf("cells (-want +got):\n%s", d)
	}

	payload, err := chunks[0].Payload()
	if err != nil {
		t.Fatal(err)
	}
	wantPayload, err := entries.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if payload != wantPayload {
		t.Errorf("payload %q, want %q", payload, wantPayload)
	}
	back, err := kv.NewParser().ParseString(payload)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(entries, back); d != "" {
		t.Errorf("recap does not round trip (-want +got):\n%s", d)
	}
}

func TestKindString(t *testing.T) {
	if KindGrid.String() != "grid" || KindRecap.String() != "recap" || Kind(7).String() != "unknown" {
		t.Error("unexpected kind names")
	}
}
