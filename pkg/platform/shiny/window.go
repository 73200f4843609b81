package shiny

import (
	"fmt"
	"image"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// Options configures the native window.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Run opens a window and calls fn with its display and event source. It
// blocks until fn returns and must be called from the main goroutine.
func Run(opts Options, fn func(platform.Display, platform.EventSource) error) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = run(s, opts, fn)
	})
	return runErr
}

func run(s screen.Screen, opts Options, fn func(platform.Display, platform.EventSource) error) error {
	win, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  opts.Width,
		Height: opts.Height,
		Title:  opts.Title,
	})
	if err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer win.Release()

	buf, err := s.NewBuffer(image.Point{X: opts.Width, Y: opts.Height})
	if err != nil {
		return fmt.Errorf("could not allocate window buffer: %w", err)
	}
	defer buf.Release()

	d, err := newDisplay(win, buf)
	if err != nil {
		return err
	}
	return fn(d, NewSource(win))
}

// display draws into the pixels of a shiny buffer. The toolkit paints opaque
// pixels only, so the buffer's premultiplied layout matches straight RGBA.
type display struct {
	*platform.Memory
	win screen.Window
	buf screen.Buffer
}

func newDisplay(win screen.Window, buf screen.Buffer) (*display, error) {
	rgba := buf.RGBA()
	size := graphics.RectFromImage(rgba.Bounds()).Size()
	mem := platform.WrapMemory(rgba.Pix, size, platform.OrderRGBA)
	if mem == nil {
		return nil, fmt.Errorf("window buffer of %v has an unexpected layout", size)
	}
	return &display{Memory: mem, win: win, buf: buf}, nil
}

// Flush uploads each damaged rectangle and publishes the frame.
func (d *display) Flush(rects []graphics.Rect) error {
	for _, r := range rects {
		sr := r.Image()
		d.win.Upload(sr.Min, d.buf, sr)
	}
	d.win.Publish()
	return nil
}
