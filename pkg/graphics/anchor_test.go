package graphics

import "testing"

func TestAnchor_Shift(t *testing.T) {
	size := Sz(40, 20)
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorCenter, Pt(-20, -10)},
		{AnchorNorth, Pt(-20, 0)},
		{AnchorNorthEast, Pt(-40, 0)},
		{AnchorEast, Pt(-40, -10)},
		{AnchorSouthEast, Pt(-40, -20)},
		{AnchorSouth, Pt(-20, -20)},
		{AnchorSouthWest, Pt(0, -20)},
		{AnchorWest, Pt(0, -10)},
		{AnchorNorthWest, Pt(0, 0)},
		{AnchorNone, Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			if got := tt.anchor.Shift(size); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAnchor_Align(t *testing.T) {
	container := RectXYWH(10, 10, 100, 50)
	item := Sz(20, 10)
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorNone, Pt(50, 30)},
		{AnchorCenter, Pt(50, 30)},
		{AnchorNorthWest, Pt(10, 10)},
		{AnchorSouthEast, Pt(90, 50)},
		{AnchorWest, Pt(10, 30)},
		{AnchorNorth, Pt(50, 10)},
	}
	for _, tt := range tests {
		if got := tt.anchor.Align(container, item); got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.anchor, tt.want, got)
		}
	}
}

func TestAxis(t *testing.T) {
	if AxisNone.HasX() || AxisNone.HasY() {
		t.Error("AxisNone should include no axis")
	}
	if !AxisX.HasX() || AxisX.HasY() {
		t.Error("AxisX should include x only")
	}
	if !AxisBoth.HasX() || !AxisBoth.HasY() {
		t.Error("AxisBoth should include both axes")
	}
}

func TestAxis_String(t *testing.T) {
	for a, want := range map[Axis]string{AxisNone: "none", AxisX: "x", AxisY: "y", AxisBoth: "both", Axis(9): "Axis(9)"} {
		if got := a.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
