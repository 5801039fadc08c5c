package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestCenter(t *testing.T) {
	testCases := []struct {
		name      string
		container Rect
		content   Point
		want      Point
	}{
		{
			name:      "smaller",
			container: Rect{Origin: Point{X: 10, Y: 20}, Size: Point{X: 100, Y: 50}},
			content:   Point{X: 40, Y: 30},
			want:      Point{X: 40, Y: 30},
		},
		{
			name:      "same size",
			container: Rect{Origin: Point{X: 10, Y: 20}, Size: Point{X: 100, Y: 50}},
			content:   Point{X: 100, Y: 50},
			want:      Point{X: 10, Y: 20},
		},
		{
			name:      "larger on one axis",
			container: Rect{Origin: Point{X: 0, Y: 0}, Size: Point{X: 100, Y: 50}},
			content:   Point{X: 60, Y: 70},
			want:      Point{X: 20, Y: -10},
		},
		{
			name:      "larger on both axes",
			container: Rect{Origin: Point{X: 5, Y: 5}, Size: Point{X: 10, Y: 10}},
			content:   Point{X: 20, Y: 30},
			want:      Point{X: 0, Y: -5},
		},
		{
			name:      "empty content",
			container: Rect{Origin: Point{X: 1, Y: 2}, Size: Point{X: 8, Y: 4}},
			content:   Point{},
			want:      Point{X: 5, Y: 4},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Center(tc.container, tc.content)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("Center (-want +got):\n%s", d)
			}
		})
	}
}

func TestCenterFixedPoint(t *testing.T) {
	r := Rect{Origin: Point{X: 3, Y: 7}, Size: Point{X: 12, Y: 6}}
	once := Center(r, r.Size)
	twice := Center(Rect{Origin: once, Size: r.Size}, r.Size)
	if once != r.Origin || twice != r.Origin {
		t.Errorf("expected %v, got %v then %v", r.Origin, once, twice)
	}
}

func TestBounds(t *testing.T) {
	r := Rect{Origin: Point{X: 10, Y: 20}, Size: Point{X: 30, Y: 40}}
	want := rect.Rect{LLx: 10, LLy: 20, URx: 40, URy: 60}
	if d := cmp.Diff(want, r.Bounds()); d != "" {
		t.Error(d)
	}
	if b := r.Bounds(); b.Dx() != 30 || b.Dy() != 40 {
		t.Errorf("unexpected extent %gx%g", b.Dx(), b.Dy())
	}
}

func TestWorkable(t *testing.T) {
	o := Options{PageWidth: 220, PageHeight: 300, Margin: 10}
	want := Rect{Origin: Point{X: 10, Y: 10}, Size: Point{X: 200, Y: 280}}
	if d := cmp.Diff(want, o.Workable()); d != "" {
		t.Error(d)
	}
}
