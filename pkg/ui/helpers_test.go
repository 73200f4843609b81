package ui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
)

// recorder collects reported errors and panics.
type recorder struct {
	errs   []*errors.UIError
	panics []*errors.PanicError
}

func (r *recorder) HandleError(err *errors.UIError)    { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }

func (r *recorder) last() *errors.UIError {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

// newTestApp returns an app over a headless display of the given size,
// already flushed once, with errors captured by the returned recorder.
func newTestApp(t *testing.T, width, height int) (*App, *platform.Headless, *recorder) {
	t.Helper()
	rec := &recorder{}
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(nil) })

	display := platform.NewHeadless(graphics.Sz(width, height), platform.OrderRGBA)
	app, err := New(Options{
		Display: display,
		Logger:  discardLogger(),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	flush(t, app)
	display.ResetFlushes()
	return app, display, rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func flush(t *testing.T, app *App) {
	t.Helper()
	if err := app.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
}

// placedFrame creates a frame under parent and places it at r.
func placedFrame(t *testing.T, app *App, parent *Widget, r graphics.Rect) *Widget {
	t.Helper()
	w := app.Create(FrameClassName, parent, nil, nil)
	if w == nil {
		t.Fatal("Create returned nil")
	}
	app.Place(w, PlaceOptions{X: Set(r.X), Y: Set(r.Y), Width: Set(r.W), Height: Set(r.H)})
	return w
}

func pixel(t *testing.T, s platform.Surface, x, y int) graphics.Color {
	t.Helper()
	c, ok := paint.ReadPixel(s, graphics.Pt(x, y))
	if !ok {
		t.Fatalf("(%d,%d) is outside the surface", x, y)
	}
	return c
}

func returns(v bool, calls *[]string, name string) Callback {
	return func(*Widget, platform.Event, any) bool {
		*calls = append(*calls, name)
		return v
	}
}
