package ui

import (
	"testing"

	"github.com/go-drift/canopy/pkg/graphics"
)

func TestPlace_AnchorShift(t *testing.T) {
	tests := []struct {
		anchor graphics.Anchor
		want   graphics.Point
	}{
		{graphics.AnchorCenter, graphics.Pt(-10, -5)},
		{graphics.AnchorNorth, graphics.Pt(-10, 0)},
		{graphics.AnchorNorthEast, graphics.Pt(-20, 0)},
		{graphics.AnchorEast, graphics.Pt(-20, -5)},
		{graphics.AnchorSouthEast, graphics.Pt(-20, -10)},
		{graphics.AnchorSouth, graphics.Pt(-10, -10)},
		{graphics.AnchorSouthWest, graphics.Pt(0, -10)},
		{graphics.AnchorWest, graphics.Pt(0, -5)},
		{graphics.AnchorNorthWest, graphics.Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.anchor.String(), func(t *testing.T) {
			app, _, _ := newTestApp(t, 200, 200)
			parent := placedFrame(t, app, nil, graphics.RectXYWH(0, 0, 100, 100))
			child := app.Create(FrameClassName, parent, nil, nil)
			app.Place(child, PlaceOptions{
				Anchor: Set(tt.anchor),
				Width:  Set(20),
				Height: Set(10),
			})
			want := graphics.RectAt(tt.want, graphics.Sz(20, 10))
			if got := child.ScreenRect(); got != want {
				t.Errorf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestPlace_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		opts PlaceOptions
	}{
		{"absolute", PlaceOptions{X: Set(10), Y: Set(20), Width: Set(30), Height: Set(40)}},
		{"relative", PlaceOptions{RelX: Set(0.5), RelY: Set(0.5), RelWidth: Set(0.3), RelHeight: Set(0.25), Anchor: Set(graphics.AnchorCenter)}},
		{"mixed", PlaceOptions{X: Set(-5), RelX: Set(1.0), Width: Set(10), RelHeight: Set(1.0), Anchor: Set(graphics.AnchorNorthEast)}},
		{"requested size", PlaceOptions{X: Set(3), Y: Set(4)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t, 300, 200)
			parent := placedFrame(t, app, nil, graphics.RectXYWH(10, 10, 200, 150))
			child := app.Create(FrameClassName, parent, nil, nil)
			app.ConfigureFrame(child, FrameConfig{Size: Set(graphics.Sz(25, 15))})
			app.Place(child, tt.opts)
			flush(t, app)

			before := child.ScreenRect()
			app.RunGeometry(child)
			if got := child.ScreenRect(); got != before {
				t.Errorf("expected screen rect %v to be unchanged, got %v", before, got)
			}
			if d := app.Damage(); len(d) != 0 {
				t.Errorf("expected no damage after re-running geometry, got %v", d)
			}

			app.Place(child, tt.opts)
			if d := app.Damage(); len(d) != 0 {
				t.Errorf("expected no damage after placing again, got %v", d)
			}
		})
	}
}

func TestPlace_RelativeTerms(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	parent := placedFrame(t, app, nil, graphics.RectXYWH(0, 0, 100, 100))
	child := app.Create(FrameClassName, parent, nil, nil)
	app.Place(child, PlaceOptions{
		Anchor:    Set(graphics.AnchorCenter),
		RelX:      Set(0.5),
		RelY:      Set(0.5),
		RelWidth:  Set(0.5),
		RelHeight: Set(0.25),
	})
	if got, want := child.ScreenRect(), graphics.RectXYWH(25, 38, 50, 25); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlace_TruncatesWholeSum(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	parent := placedFrame(t, app, nil, graphics.RectXYWH(0, 0, 100, 100))
	child := app.Create(FrameClassName, parent, nil, nil)
	// -0.5 + 1 truncates to 0, where truncating each term would give 1.
	app.Place(child, PlaceOptions{X: Set(1), RelX: Set(-0.005), Width: Set(5), Height: Set(5)})
	if got := child.ScreenRect().X; got != 0 {
		t.Errorf("expected x 0, got %d", got)
	}
}

func TestPlace_ZeroSizeUsesRequested(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	w := app.Create(FrameClassName, nil, nil, nil)
	app.ConfigureFrame(w, FrameConfig{Size: Set(graphics.Sz(30, 20))})
	app.Place(w, PlaceOptions{X: Set(5), Y: Set(5)})
	if got, want := w.ScreenRect(), graphics.RectXYWH(5, 5, 30, 20); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// The requested size is read on every run, so growing content grows
	// the widget.
	app.ConfigureFrame(w, FrameConfig{Size: Set(graphics.Sz(40, 25))})
	if got, want := w.ScreenRect(), graphics.RectXYWH(5, 5, 40, 25); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPlace_DefaultsOnFirstUse(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	w := app.Create(FrameClassName, nil, nil, nil)
	app.Place(w, PlaceOptions{Width: Set(10), Height: Set(10)})
	p := PlacerParamsOf(w)
	if p == nil {
		t.Fatal("expected placer params")
	}
	if p.Anchor != graphics.AnchorNorthWest || p.X != 0 || p.RelX != 0 {
		t.Errorf("unexpected defaults %+v", *p)
	}

	app.Place(w, PlaceOptions{X: Set(7)})
	if p.Width != 10 || p.X != 7 {
		t.Errorf("expected unset fields to be kept, got %+v", *p)
	}
	app.Place(w, PlaceOptions{X: Clear[int]()})
	if p.X != 0 {
		t.Errorf("expected cleared x to reset, got %d", p.X)
	}
}

func TestPlace_MoveDamagesOldAndNewArea(t *testing.T) {
	app, _, _ := newTestApp(t, 400, 300)
	w := placedFrame(t, app, nil, graphics.RectXYWH(0, 0, 20, 20))
	flush(t, app)

	app.Place(w, PlaceOptions{X: Set(200), Y: Set(200)})
	damage := app.Damage()
	if len(damage) != 2 {
		t.Fatalf("expected old and new areas as separate damage, got %v", damage)
	}
	margin := app.Config().DamageMargin
	if want := graphics.RectXYWH(0, 0, 20+margin, 20+margin); damage[0] != want {
		t.Errorf("expected old area %v, got %v", want, damage[0])
	}
	if want := graphics.RectXYWH(200, 200, 20, 20).Expand(margin); damage[1] != want {
		t.Errorf("expected new area %v, got %v", want, damage[1])
	}
}

func TestPlace_ParentMoveRepositionsChildren(t *testing.T) {
	app, _, _ := newTestApp(t, 400, 300)
	parent := placedFrame(t, app, nil, graphics.RectXYWH(10, 10, 100, 100))
	child := placedFrame(t, app, parent, graphics.RectXYWH(5, 5, 10, 10))
	grandchild := placedFrame(t, app, child, graphics.RectXYWH(1, 1, 2, 2))

	app.Place(parent, PlaceOptions{X: Set(50)})
	if got, want := child.ScreenRect(), graphics.RectXYWH(55, 15, 10, 10); got != want {
		t.Errorf("child: expected %v, got %v", want, got)
	}
	if got, want := grandchild.ScreenRect(), graphics.RectXYWH(56, 16, 2, 2); got != want {
		t.Errorf("grandchild: expected %v, got %v", want, got)
	}
}

func TestPlace_RootIsRejected(t *testing.T) {
	app, _, rec := newTestApp(t, 100, 100)
	app.Place(app.Root(), PlaceOptions{X: Set(1)})
	if app.Root().IsManaged() {
		t.Error("expected the root to stay unmanaged")
	}
	if e := rec.last(); e == nil || e.Op != "ui.Place" {
		t.Errorf("expected a ui.Place report, got %v", e)
	}
}

func TestUnmap(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	w := placedFrame(t, app, nil, graphics.RectXYWH(10, 10, 30, 30))
	flush(t, app)
	if app.Pick(graphics.Pt(20, 20)) != w {
		t.Fatal("expected the frame to be picked before unmapping")
	}

	app.Unmap(w)
	if w.IsManaged() || w.GeometryParams() != nil {
		t.Error("expected the widget to be unmanaged")
	}
	if len(app.Damage()) == 0 {
		t.Error("expected unmapping to damage the old area")
	}
	flush(t, app)
	if got := app.Pick(graphics.Pt(20, 20)); got != nil {
		t.Errorf("expected nothing under the old area, got %v", got)
	}
}

func TestManage_SwitchReleasesPreviousManager(t *testing.T) {
	app, _, _ := newTestApp(t, 200, 200)
	released := 0
	fixed := &GeometryManager{
		Name:    "fixed",
		Run:     func(w *Widget) { app.SetScreenRect(w, graphics.RectXYWH(1, 2, 3, 4)) },
		Release: func(*Widget) { released++ },
	}
	app.RegisterManager(fixed)
	if app.LookupManager("fixed") != fixed {
		t.Fatal("expected the manager to be registered")
	}

	w := app.Create(FrameClassName, nil, nil, nil)
	app.Manage(w, fixed, nil)
	app.RunGeometry(w)
	if got := w.ScreenRect(); got != graphics.RectXYWH(1, 2, 3, 4) {
		t.Fatalf("expected fixed rect, got %v", got)
	}

	app.Place(w, PlaceOptions{X: Set(10), Y: Set(10), Width: Set(5), Height: Set(5)})
	if released != 1 {
		t.Errorf("expected previous manager to be released once, got %d", released)
	}
	if w.GeometryParams().Manager.Name != PlacerName {
		t.Errorf("expected placer to manage the widget, got %s", w.GeometryParams().Manager.Name)
	}
}
