package demo

import (
	"image/color"
	"testing"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
	canopytest "github.com/go-drift/canopy/pkg/testing"
	"github.com/go-drift/canopy/pkg/ui"
)

func newDemo(t *testing.T) (*canopytest.Tester, *Demo) {
	t.Helper()
	tester := canopytest.NewTester(t, graphics.Sz(400, 320))
	d := Build(tester.App())
	tester.Flush()
	if errs := tester.Errors(); len(errs) != 0 {
		t.Fatalf("expected no errors building the demo, got %v", errs)
	}
	return tester, d
}

func TestBuild_Layout(t *testing.T) {
	tester, d := newDemo(t)

	for name, w := range map[string]*ui.Widget{"label": d.Label, "count": d.Count, "swatch": d.Swatch, "quit": d.Quit} {
		if w.Parent() != d.Window {
			t.Errorf("%s: expected to live in the window", name)
		}
		if !w.IsManaged() {
			t.Errorf("%s: expected to be placed", name)
		}
		if got := d.Window.ContentRect().Intersect(w.ScreenRect()); got != w.ScreenRect() {
			t.Errorf("%s: expected %v inside the window content, got %v", name, w.ScreenRect(), got)
		}
	}
	if got := d.Swatch.ScreenRect().Size(); got != graphics.Sz(SwatchSize+4, SwatchSize+4) {
		t.Errorf("expected the swatch to fit its image and border, got %v", got)
	}
	content := d.Window.ContentRect()
	if got := d.Quit.ScreenRect(); got.Right() != content.Right()-30 || got.Bottom() != content.Bottom()-10 {
		t.Errorf("expected the quit button in the bottom-right corner, got %v in %v", got, content)
	}
	if !tester.Find(canopytest.ByText("Clicked 0 times")).Exists() {
		t.Error("expected the initial label")
	}
}

func TestBuild_CountButton(t *testing.T) {
	tester, d := newDemo(t)
	for range 2 {
		if err := tester.Tap(canopytest.ByText("Click me")); err != nil {
			t.Fatal(err)
		}
	}
	if d.Clicks() != 2 {
		t.Errorf("expected 2 clicks, got %d", d.Clicks())
	}
	if text, _ := canopytest.TextOf(d.Label); text != "Clicked 2 times" {
		t.Errorf("expected the label to follow, got %q", text)
	}
}

func TestBuild_Quit(t *testing.T) {
	tests := []struct {
		name string
		act  func(*canopytest.Tester) error
	}{
		{"button", func(tester *canopytest.Tester) error { return tester.Tap(canopytest.ByText("Quit")) }},
		{"escape", func(tester *canopytest.Tester) error {
			tester.Key(platform.KeyEscape, 0)
			return nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester, _ := newDemo(t)
			if err := tt.act(tester); err != nil {
				t.Fatal(err)
			}
			if !tester.App().Quitting() {
				t.Error("expected the app to quit")
			}
		})
	}
}

func TestBuild_OtherKeysIgnored(t *testing.T) {
	tester, _ := newDemo(t)
	if tester.Key(platform.KeyEnter, 0) {
		t.Error("expected enter not to be consumed")
	}
	if tester.App().Quitting() {
		t.Error("expected the app to keep running")
	}
}

func TestGradient(t *testing.T) {
	img := Gradient(8)
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{7, 0, color.NRGBA{B: 255, A: 255}},
		{0, 7, color.NRGBA{R: 255, G: 255, A: 255}},
		{7, 7, color.NRGBA{G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
		}
	}
}
