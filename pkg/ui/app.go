package ui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-drift/canopy/pkg/config"
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// Options configures New.
type Options struct {
	// Display is the visible surface. Required.
	Display platform.Display
	// Source delivers events to Run. It may be nil when the caller drives
	// the app with HandleEvent and Flush.
	Source platform.EventSource
	// Config supplies defaults and tunables. Nil means config.Default().
	Config *config.Resolved
	// Logger receives debug and lifecycle messages. Nil means the logger
	// installed in the errors package.
	Logger *slog.Logger
}

// Stats counts what the app has done so far.
type Stats struct {
	EventsDispatched int
	EventsHandled    int
	Frames           int
	DamageRects      int
	LiveWidgets      int
}

// App owns the widget tree, the registries, the bindings and the damage
// list. It is not safe for concurrent use.
type App struct {
	config  *config.Resolved
	log     *slog.Logger
	display platform.Display
	source  platform.EventSource
	pick    *platform.Memory

	classes  *registry[Class]
	managers *registry[GeometryManager]

	root    *Widget
	widgets map[WidgetID]*Widget
	nextID  WidgetID

	bindings    []*Binding
	nextBinding BindingID

	damage []graphics.Rect

	press pressState
	drag  dragState

	quit  bool
	stats Stats
}

// New creates an application drawing into opts.Display. The built-in
// classes and the placer are registered and the root frame covers the whole
// display.
func New(opts Options) (*App, error) {
	if opts.Display == nil {
		return nil, fmt.Errorf("ui: a display is required")
	}
	size := opts.Display.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("ui: invalid display size %dx%d", size.Width, size.Height)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = errors.Logger()
	}

	a := &App{
		config:   cfg,
		log:      log,
		display:  opts.Display,
		source:   opts.Source,
		pick:     platform.NewMemory(size, platform.OrderRGBA),
		classes:  newRegistry(func(c *Class) string { return c.Name }),
		managers: newRegistry(func(m *GeometryManager) string { return m.Name }),
		widgets:  make(map[WidgetID]*Widget),
	}

	a.RegisterManager(newPlacer())
	a.RegisterClass(newFrameClass())
	a.RegisterClass(newButtonClass())
	a.RegisterClass(newToplevelClass())

	a.root = a.newWidget(a.LookupClass(FrameClassName), nil, nil, nil)
	a.root.reqSize = size
	a.root.screen = graphics.RectAt(graphics.Point{}, size)
	a.root.content = a.root.screen

	a.installInteraction()
	a.Invalidate(a.root.screen)

	log.Debug("app created", "size", size, "debug", cfg.Debug)
	return a, nil
}

// Root returns the root frame, or nil after it has been destroyed.
func (a *App) Root() *Widget { return a.root }

// Config returns the configuration the app was created with.
func (a *App) Config() *config.Resolved { return a.config }

// Display returns the visible surface.
func (a *App) Display() platform.Display { return a.display }

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger { return a.log }

// Stats returns a snapshot of the app counters.
func (a *App) Stats() Stats { return a.stats }

// Quit makes Run return after the current event.
func (a *App) Quit() { a.quit = true }

// Quitting reports whether Quit has been called.
func (a *App) Quitting() bool { return a.quit }

// Run draws the whole display, then handles events from the source until
// Quit is called or the source is exhausted. After each event the pending
// damage is flushed.
func (a *App) Run() error {
	if a.source == nil {
		return fmt.Errorf("ui: run needs an event source")
	}
	a.log.Info("event loop started", "size", a.display.Size())
	if err := a.RedrawAll(); err != nil {
		return err
	}
	for !a.quit {
		more, err := a.Step()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	a.log.Info("event loop stopped",
		"events", a.stats.EventsDispatched,
		"frames", a.stats.Frames,
		"widgets", a.stats.LiveWidgets)
	return nil
}

// Step handles the next event from the source and flushes the resulting
// damage. It returns false when the source is exhausted.
func (a *App) Step() (bool, error) {
	ev, ok := a.source.NextEvent()
	if !ok {
		return false, nil
	}
	a.HandleEvent(ev)
	return true, a.Flush()
}

// HandleEvent processes one event without flushing. Expose events damage
// the whole display; everything else is dispatched to bindings.
func (a *App) HandleEvent(ev platform.Event) {
	if a.config.Debug {
		a.log.Debug("event", "event", ev.String())
	}
	if ev.Type == platform.EventExpose {
		a.Invalidate(graphics.RectAt(graphics.Point{}, a.display.Size()))
		return
	}
	a.Dispatch(ev)
}

// DumpTree writes one line per widget, indented by depth, with its screen
// rectangle. Unmanaged widgets are marked.
func (a *App) DumpTree(out io.Writer) error {
	if a.root == nil {
		return errors.ErrNoRoot
	}
	var err error
	var walk func(w *Widget, depth int)
	walk = func(w *Widget, depth int) {
		if err != nil {
			return
		}
		state := w.screen.String()
		if w != a.root && w.geom == nil {
			state = "unmanaged"
		}
		_, err = fmt.Fprintf(out, "%s%s %s\n", strings.Repeat("  ", depth), w, state)
		for _, c := range w.children {
			walk(c, depth+1)
		}
	}
	walk(a.root, 0)
	return err
}

func (a *App) report(op string, kind errors.Kind, w *Widget, err error) {
	e := &errors.UIError{Op: op, Kind: kind, Err: err}
	if w != nil {
		e.Widget = w.String()
	}
	errors.Report(e)
}

func (a *App) fatal(op string, w *Widget, err error) {
	e := &errors.UIError{Op: op, Kind: errors.KindUsage, Err: err}
	if w != nil {
		e.Widget = w.String()
	}
	errors.Fatal(e)
}
