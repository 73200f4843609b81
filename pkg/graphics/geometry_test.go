package graphics

import "testing"

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", RectXYWH(0, 0, 10, 10), RectXYWH(5, 5, 10, 10), RectXYWH(5, 5, 5, 5)},
		{"contained", RectXYWH(0, 0, 100, 100), RectXYWH(10, 20, 5, 5), RectXYWH(10, 20, 5, 5)},
		{"touching edges", RectXYWH(0, 0, 10, 10), RectXYWH(10, 0, 10, 10), Rect{}},
		{"disjoint", RectXYWH(0, 0, 10, 10), RectXYWH(50, 50, 1, 1), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	got := RectXYWH(0, 0, 10, 10).Union(RectXYWH(5, 5, 10, 10))
	if want := RectXYWH(0, 0, 15, 15); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRect_Normalize(t *testing.T) {
	bounds := Sz(100, 50)
	if got := RectXYWH(-10, -10, 30, 30).Normalize(bounds); got != RectXYWH(0, 0, 20, 20) {
		t.Errorf("expected clipped rect, got %v", got)
	}
	if got := RectXYWH(200, 0, 10, 10).Normalize(bounds); !got.IsEmpty() {
		t.Errorf("expected empty rect, got %v", got)
	}
}

func TestRect_ContainsExcludesFarEdges(t *testing.T) {
	r := RectXYWH(10, 10, 5, 5)
	if !r.Contains(Pt(10, 10)) {
		t.Error("expected top-left corner to be inside")
	}
	if r.Contains(Pt(15, 12)) || r.Contains(Pt(12, 15)) {
		t.Error("expected right and bottom edges to be outside")
	}
}

func TestRect_ExpandAndInset(t *testing.T) {
	r := RectXYWH(10, 10, 20, 20)
	if got := r.Expand(2); got != RectXYWH(8, 8, 24, 24) {
		t.Errorf("Expand: got %v", got)
	}
	if got := r.Inset(4, 30, 4, 4); got != RectXYWH(14, 40, 12, -14) {
		t.Errorf("Inset: got %v", got)
	}
	if !r.Inset(4, 30, 4, 4).IsEmpty() {
		t.Error("expected over-inset rect to be empty")
	}
}

func TestRect_ImageRoundTrip(t *testing.T) {
	r := RectXYWH(3, 4, 5, 6)
	if got := RectFromImage(r.Image()); got != r {
		t.Errorf("expected %v, got %v", r, got)
	}
}

func TestRect_Center(t *testing.T) {
	tests := []struct {
		r    Rect
		want Point
	}{
		{RectXYWH(0, 0, 10, 10), Pt(5, 5)},
		{RectXYWH(10, 20, 5, 3), Pt(12, 21)},
		{RectXYWH(-4, -4, 0, 0), Pt(-4, -4)},
	}
	for _, tt := range tests {
		if got := tt.r.Center(); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.r, tt.want, got)
		}
	}
}
