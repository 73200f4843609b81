package testing

import (
	"io"
	"log/slog"

	"github.com/go-drift/canopy/pkg/config"
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/ui"
)

// Default surface size used when NewTester is given an empty size.
const (
	DefaultTestWidth  = 320
	DefaultTestHeight = 240
)

// TestingT is the subset of *testing.T the tester needs, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
	Cleanup(func())
}

// Tester drives a ui.App over a headless display. It installs itself as the
// global error handler for the lifetime of the test and records every
// reported error, panic and fatal exit.
type Tester struct {
	t       TestingT
	app     *ui.App
	display *platform.Headless

	errs   []*errors.UIError
	panics []*errors.PanicError
	exits  []int
}

// NewTester creates an app of the given size with the default configuration.
func NewTester(t TestingT, size graphics.Size) *Tester {
	t.Helper()
	return NewTesterWithConfig(t, size, config.Default())
}

// NewTesterWithConfig creates an app of the given size using cfg. The app is
// flushed once so the initial frame is already on the display.
func NewTesterWithConfig(t TestingT, size graphics.Size, cfg *config.Resolved) *Tester {
	t.Helper()
	if size.Width <= 0 || size.Height <= 0 {
		size = graphics.Sz(DefaultTestWidth, DefaultTestHeight)
	}
	tester := &Tester{t: t, display: platform.NewHeadless(size, platform.OrderRGBA)}

	errors.SetHandler(tester)
	prevExit := errors.SetExitFunc(func(code int) { tester.exits = append(tester.exits, code) })
	t.Cleanup(func() {
		errors.SetHandler(nil)
		errors.SetExitFunc(prevExit)
	})

	app, err := ui.New(ui.Options{
		Display: tester.display,
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("ui.New failed: %v", err)
		return nil
	}
	tester.app = app
	tester.Flush()
	return tester
}

// HandleError records a reported error.
func (t *Tester) HandleError(err *errors.UIError) { t.errs = append(t.errs, err) }

// HandlePanic records a recovered panic.
func (t *Tester) HandlePanic(err *errors.PanicError) { t.panics = append(t.panics, err) }

// App returns the application under test.
func (t *Tester) App() *ui.App { return t.app }

// Display returns the headless display.
func (t *Tester) Display() *platform.Headless { return t.display }

// Errors returns every error reported since the tester was created.
func (t *Tester) Errors() []*errors.UIError { return t.errs }

// Panics returns every panic recovered since the tester was created.
func (t *Tester) Panics() []*errors.PanicError { return t.panics }

// Exits returns the exit codes of fatal reports.
func (t *Tester) Exits() []int { return t.exits }

// LastError returns the most recent reported error, or nil.
func (t *Tester) LastError() *errors.UIError {
	if len(t.errs) == 0 {
		return nil
	}
	return t.errs[len(t.errs)-1]
}

// ResetErrors forgets recorded errors, panics and exits.
func (t *Tester) ResetErrors() {
	t.errs, t.panics, t.exits = nil, nil, nil
}

// Flush redraws pending damage and fails the test if the display rejects it.
func (t *Tester) Flush() {
	t.t.Helper()
	if err := t.app.Flush(); err != nil {
		t.t.Fatalf("Flush failed: %v", err)
	}
}

// Flushed returns the rectangles presented by the most recent flush, or nil
// if nothing was damaged.
func (t *Tester) Flushed() []graphics.Rect {
	return t.display.LastFlush()
}

// Send handles one event and flushes the resulting damage. It reports
// whether a binding consumed the event.
func (t *Tester) Send(ev platform.Event) bool {
	t.t.Helper()
	t.display.ResetFlushes()
	handled := false
	if ev.Type == platform.EventExpose {
		t.app.HandleEvent(ev)
	} else {
		handled = t.app.Dispatch(ev)
	}
	t.Flush()
	return handled
}

// Press sends a left-button press at p.
func (t *Tester) Press(p graphics.Point) bool {
	t.t.Helper()
	return t.Send(platform.MouseDown(p.X, p.Y))
}

// Release sends a left-button release at p.
func (t *Tester) Release(p graphics.Point) bool {
	t.t.Helper()
	return t.Send(platform.MouseUp(p.X, p.Y))
}

// Move sends pointer motion to p.
func (t *Tester) Move(p graphics.Point) bool {
	t.t.Helper()
	return t.Send(platform.MouseMove(p.X, p.Y))
}

// Click presses and releases the left button at p.
func (t *Tester) Click(p graphics.Point) {
	t.t.Helper()
	t.Press(p)
	t.Release(p)
}

// Key sends a key press followed by its release.
func (t *Tester) Key(code platform.KeyCode, r rune) bool {
	t.t.Helper()
	handled := t.Send(platform.KeyDown(code, r))
	t.Send(platform.KeyUp(code, r))
	return handled
}

// PickAt returns the widget the pick surface holds at p, or nil.
func (t *Tester) PickAt(p graphics.Point) *ui.Widget {
	return t.app.Pick(p)
}

// PickColorAt returns the raw pick surface color at p.
func (t *Tester) PickColorAt(p graphics.Point) graphics.Color {
	t.t.Helper()
	c, ok := paint.ReadPixel(t.app.PickSurface(), p)
	if !ok {
		t.t.Fatalf("%v is outside the pick surface", p)
	}
	return c
}

// PixelAt returns the display color at p.
func (t *Tester) PixelAt(p graphics.Point) graphics.Color {
	t.t.Helper()
	c, ok := paint.ReadPixel(t.display, p)
	if !ok {
		t.t.Fatalf("%v is outside the display", p)
	}
	return c
}

// Find evaluates a finder against the current widget tree.
func (t *Tester) Find(finder Finder) FinderResult {
	root := t.app.Root()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{widgets: finder.Evaluate(root), finder: finder}
}
