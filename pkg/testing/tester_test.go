package testing

import (
	"image"
	"testing"

	"github.com/go-drift/canopy/pkg/config"
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/ui"
)

func place(app *ui.App, w *ui.Widget, r graphics.Rect) {
	app.Place(w, ui.PlaceOptions{X: ui.Set(r.X), Y: ui.Set(r.Y), Width: ui.Set(r.W), Height: ui.Set(r.H)})
}

func TestNewTester_DefaultSize(t *testing.T) {
	tester := NewTester(t, graphics.Size{})
	want := graphics.Sz(DefaultTestWidth, DefaultTestHeight)
	if got := tester.Display().Size(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := tester.App().Root().ScreenRect().Size(); got != want {
		t.Errorf("expected root size %v, got %v", want, got)
	}
	if got := tester.PixelAt(graphics.Pt(5, 5)); got != config.Default().Background {
		t.Errorf("expected the initial frame to be flushed, got %v", got)
	}
}

func TestNewTesterWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Background = graphics.ColorBlue
	tester := NewTesterWithConfig(t, graphics.Sz(40, 30), cfg)
	if got := tester.PixelAt(graphics.Pt(20, 15)); got != graphics.ColorBlue {
		t.Errorf("expected configured background, got %v", got)
	}
}

func TestTester_RecordsErrors(t *testing.T) {
	tester := NewTester(t, graphics.Sz(50, 50))
	if w := tester.App().Create("slider", nil, nil, nil); w != nil {
		t.Fatalf("expected nil, got %v", w)
	}
	e := tester.LastError()
	if e == nil || !errors.Is(e, errors.ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", e)
	}
	tester.ResetErrors()
	if len(tester.Errors()) != 0 || tester.LastError() != nil {
		t.Error("expected errors to be cleared")
	}
}

func TestTester_RecordsFatalExit(t *testing.T) {
	tester := NewTester(t, graphics.Sz(50, 50))
	app := tester.App()
	w := app.Create(ui.FrameClassName, nil, nil, nil)
	app.ConfigureFrame(w, ui.FrameConfig{
		Text:  ui.Set("a"),
		Image: ui.Set[image.Image](image.NewNRGBA(image.Rect(0, 0, 1, 1))),
	})
	if got := tester.Exits(); len(got) != 1 || got[0] != 1 {
		t.Errorf("expected one exit with code 1, got %v", got)
	}
}

func TestTester_RecordsPanics(t *testing.T) {
	tester := NewTester(t, graphics.Sz(50, 50))
	tester.App().Bind(platform.EventKeyDown, nil, ui.TagAll, func(*ui.Widget, platform.Event, any) bool {
		panic("boom")
	}, nil)
	if tester.Key(platform.KeyEnter, 0) {
		t.Error("expected a panicking binding not to consume the event")
	}
	if len(tester.Panics()) != 1 {
		t.Errorf("expected one panic, got %d", len(tester.Panics()))
	}
}

func TestTester_ClickFiresButton(t *testing.T) {
	tester := NewTester(t, graphics.Sz(200, 100))
	app := tester.App()
	clicks := 0
	btn := app.Create(ui.ButtonClassName, nil, nil, nil)
	app.ConfigureButton(btn, ui.ButtonConfig{
		Callback: ui.Set[ui.Callback](func(*ui.Widget, platform.Event, any) bool {
			clicks++
			return true
		}),
	})
	place(app, btn, graphics.RectXYWH(10, 10, 50, 20))
	tester.Flush()

	tester.Click(graphics.Pt(35, 20))
	if clicks != 1 {
		t.Errorf("expected one click, got %d", clicks)
	}
	if len(tester.Flushed()) == 0 {
		t.Error("expected the release to repaint the button")
	}

	tester.Click(graphics.Pt(150, 80))
	if clicks != 1 {
		t.Errorf("expected a click elsewhere to be ignored, got %d", clicks)
	}
}

func TestTester_PressHoldsButton(t *testing.T) {
	tester := NewTester(t, graphics.Sz(200, 100))
	app := tester.App()
	btn := app.Create(ui.ButtonClassName, nil, nil, nil)
	place(app, btn, graphics.RectXYWH(10, 10, 50, 20))
	tester.Flush()

	tester.Press(graphics.Pt(35, 20))
	if app.Pressed() != btn {
		t.Fatal("expected the button to be pressed")
	}
	tester.Move(graphics.Pt(150, 80))
	if app.Pressed() != btn {
		t.Error("expected the press to survive leaving the button")
	}
	tester.Release(graphics.Pt(150, 80))
	if app.Pressed() != nil {
		t.Error("expected the release to end the press")
	}
}

func TestTester_Pick(t *testing.T) {
	tester := NewTester(t, graphics.Sz(100, 100))
	app := tester.App()
	w := app.Create(ui.FrameClassName, nil, nil, nil)
	place(app, w, graphics.RectXYWH(10, 10, 20, 20))
	tester.Flush()

	if got := tester.PickAt(graphics.Pt(15, 15)); got != w {
		t.Errorf("expected %v, got %v", w, got)
	}
	if got := tester.PickColorAt(graphics.Pt(15, 15)); got != w.PickColor() {
		t.Errorf("expected pick color %v, got %v", w.PickColor(), got)
	}
	if got := tester.PickColorAt(graphics.Pt(50, 50)); got != ui.WidgetID(0).PickColor() {
		t.Errorf("expected the empty pick color, got %v", got)
	}
	if got := tester.PickAt(graphics.Pt(50, 50)); got != nil {
		t.Errorf("expected no widget over the background, got %v", got)
	}
}

func TestTester_SendExpose(t *testing.T) {
	tester := NewTester(t, graphics.Sz(64, 32))
	if tester.Send(platform.Event{Type: platform.EventExpose}) {
		t.Error("expected expose not to be consumed")
	}
	want := []graphics.Rect{graphics.RectXYWH(0, 0, 64, 32)}
	if got := tester.Flushed(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTester_KeyReachesBindings(t *testing.T) {
	tester := NewTester(t, graphics.Sz(50, 50))
	var types []platform.EventType
	record := func(_ *ui.Widget, ev platform.Event, _ any) bool {
		types = append(types, ev.Type)
		return ev.Type == platform.EventKeyDown
	}
	tester.App().Bind(platform.EventKeyDown, nil, ui.TagAll, record, nil)
	tester.App().Bind(platform.EventKeyUp, nil, ui.TagAll, record, nil)

	if !tester.Key(platform.KeyUnknown, 'q') {
		t.Error("expected the key press to be consumed")
	}
	if len(types) != 2 || types[0] != platform.EventKeyDown || types[1] != platform.EventKeyUp {
		t.Errorf("expected down then up, got %v", types)
	}
}
