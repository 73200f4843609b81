package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
)

// ToplevelClassName is the registry name of the toplevel class.
const ToplevelClassName = "toplevel"

const (
	toplevelBorderColor = graphics.ColorDarkGray
	toplevelTitleColor  = graphics.ColorWhite
	// titleInset is the horizontal gap before the title, past the close
	// button.
	titleInset = 25

	closeButtonSize   = 10
	closeButtonRadius = 1
	closeButtonX      = 6
	closeButtonY      = 9
	resizeHandleSize  = 20
)

// ToplevelState is the attribute block of toplevels.
type ToplevelState struct {
	Title       string
	Font        platform.Font
	Color       graphics.Color
	BorderWidth int
	Closable    bool
	Resizable   graphics.Axis
	MinSize     graphics.Size
	// Size is the size of the content area, below the title bar and inside
	// the border.
	Size graphics.Size

	close  *Widget
	resize *Widget
}

// CloseButton returns the title bar close button, or nil.
func (st *ToplevelState) CloseButton() *Widget { return st.close }

// ResizeHandle returns the bottom-right resize handle, or nil.
func (st *ToplevelState) ResizeHandle() *Widget { return st.resize }

// ToplevelConfig changes toplevel attributes. Unset fields keep their value.
type ToplevelConfig struct {
	Size        Attr[graphics.Size]
	Color       Attr[graphics.Color]
	BorderWidth Attr[int]
	Title       Attr[string]
	Font        Attr[platform.Font]
	Closable    Attr[bool]
	Resizable   Attr[graphics.Axis]
	MinSize     Attr[graphics.Size]
}

func newToplevelClass() *Class {
	return &Class{
		Name:        ToplevelClassName,
		Alloc:       func() any { return &ToplevelState{} },
		SetDefaults: setToplevelDefaults,
		Draw:        drawToplevel,
		GeomNotify: func(w *Widget) {
			st := w.state.(*ToplevelState)
			w.content = w.screen.Inset(st.BorderWidth, w.app.config.TopbarHeight, st.BorderWidth, st.BorderWidth)
		},
	}
}

func toplevelDefaults(a *App) ToplevelState {
	return ToplevelState{
		Title:       "Toplevel",
		Font:        platform.DefaultFont,
		Color:       a.config.Background,
		BorderWidth: a.config.ToplevelBorderWidth,
		Closable:    true,
		Resizable:   graphics.AxisBoth,
		MinSize:     a.config.ToplevelMinSize,
		Size:        a.config.ToplevelSize,
	}
}

func setToplevelDefaults(w *Widget) {
	a := w.app
	st := w.state.(*ToplevelState)
	*st = toplevelDefaults(a)
	w.reqSize = st.outerSize(a)
	a.syncToplevelChrome(w, st)
	a.Bind(platform.EventMouseButtonDown, w, "", a.beginMove, nil)
}

// chrome is the space the border and title bar add around the content.
func (st *ToplevelState) chrome(a *App) graphics.Size {
	return graphics.Sz(2*st.BorderWidth, a.config.TopbarHeight+st.BorderWidth)
}

func (st *ToplevelState) outerSize(a *App) graphics.Size {
	c := st.chrome(a)
	return graphics.Sz(st.Size.Width+c.Width, st.Size.Height+c.Height)
}

func drawToplevel(w *Widget, dc *DrawContext) {
	st := w.state.(*ToplevelState)
	topbar := w.app.config.TopbarHeight

	paint.FillRect(dc.Surface, w.screen, toplevelBorderColor, dc.Clip)
	paint.FillRect(dc.Surface, w.content, st.Color, dc.Clip)
	if dc.Pick != nil {
		paint.FillRect(dc.Pick, w.screen, w.pick, dc.Clip)
	}

	bar := graphics.RectXYWH(w.screen.X, w.screen.Y, w.screen.W, topbar)
	size := platform.MeasureText(st.Title, st.Font)
	at := graphics.Pt(w.screen.X+titleInset+st.BorderWidth, w.screen.Y+(topbar-size.Height)/2)
	paint.Text(dc.Surface, at, st.Title, st.Font, toplevelTitleColor, dc.Clip.Intersect(bar))
}

// ConfigureToplevel applies cfg to a toplevel. Turning Closable or Resizable
// off removes the close button or the resize handle.
func (a *App) ConfigureToplevel(w *Widget, cfg ToplevelConfig) {
	const op = "ui.ConfigureToplevel"
	if !a.configurable(op, w) {
		return
	}
	st, ok := w.state.(*ToplevelState)
	if !ok {
		a.report(op, errors.KindUsage, w, errors.ErrWrongClass)
		return
	}
	def := toplevelDefaults(a)
	cfg.Size.apply(&st.Size, def.Size)
	cfg.Color.apply(&st.Color, def.Color)
	cfg.BorderWidth.apply(&st.BorderWidth, def.BorderWidth)
	cfg.Title.apply(&st.Title, def.Title)
	cfg.Font.apply(&st.Font, def.Font)
	cfg.Closable.apply(&st.Closable, def.Closable)
	cfg.Resizable.apply(&st.Resizable, def.Resizable)
	cfg.MinSize.apply(&st.MinSize, def.MinSize)
	if st.Font == nil {
		st.Font = platform.DefaultFont
	}
	st.BorderWidth = max(0, st.BorderWidth)

	w.reqSize = st.outerSize(a)
	a.syncToplevelChrome(w, st)
	a.reconfigured(w)
}

// syncToplevelChrome creates or destroys the close button and the resize
// handle to match the Closable and Resizable attributes.
func (a *App) syncToplevelChrome(w *Widget, st *ToplevelState) {
	switch {
	case st.Resizable != graphics.AxisNone && st.resize == nil:
		a.createResizeHandle(w, st)
	case st.Resizable == graphics.AxisNone && st.resize != nil:
		a.Destroy(st.resize)
	}
	switch {
	case st.Closable && st.close == nil:
		a.createCloseButton(w, st)
	case !st.Closable && st.close != nil:
		a.Destroy(st.close)
	}
}

func (a *App) createResizeHandle(w *Widget, st *ToplevelState) {
	h := a.Create(ButtonClassName, w, nil, func(*Widget) { st.resize = nil })
	if h == nil {
		return
	}
	h.role = roleResize
	st.resize = h
	a.ConfigureButton(h, ButtonConfig{
		FrameConfig: FrameConfig{
			Size:   Set(graphics.Sz(resizeHandleSize, resizeHandleSize)),
			Color:  Set(a.config.Background),
			Relief: Set(graphics.ReliefNone),
		},
		CornerRadius: Set(0),
	})
	a.Place(h, PlaceOptions{
		Anchor: Set(graphics.AnchorSouthEast),
		RelX:   Set(1.0),
		RelY:   Set(1.0),
	})
	a.Bind(platform.EventMouseButtonDown, h, "", a.beginResize, nil)
}

func (a *App) createCloseButton(w *Widget, st *ToplevelState) {
	b := a.Create(ButtonClassName, w, nil, func(*Widget) { st.close = nil })
	if b == nil {
		return
	}
	b.role = roleClose
	st.close = b
	a.ConfigureButton(b, ButtonConfig{
		FrameConfig: FrameConfig{
			Size:   Set(graphics.Sz(closeButtonSize, closeButtonSize)),
			Color:  Set(graphics.ColorRed),
			Relief: Set(graphics.ReliefRaised),
		},
		CornerRadius: Set(closeButtonRadius),
	})
	b.state.(*ButtonState).NoClip = true
	a.Place(b, PlaceOptions{
		X: Set(closeButtonX),
		Y: Set(closeButtonY - a.config.TopbarHeight),
	})
	a.Bind(platform.EventMouseButtonDown, b, "", a.closeToplevel, nil)
}

// closeToplevel destroys the close button's toplevel.
func (a *App) closeToplevel(b *Widget, ev platform.Event, _ any) bool {
	tl := b.parent
	if ev.Button != platform.ButtonLeft || tl == nil {
		return false
	}
	if st, ok := tl.state.(*ToplevelState); !ok || !st.Closable {
		return false
	}
	a.log.Debug("toplevel closed", "widget", tl.String())
	a.Destroy(tl)
	return true
}

// beginMove starts dragging a toplevel by its title bar.
func (a *App) beginMove(tl *Widget, ev platform.Event, _ any) bool {
	if ev.Button != platform.ButtonLeft || a.drag.active() {
		return false
	}
	if ev.Pos.Y > tl.screen.Y+a.config.TopbarHeight {
		return false
	}
	a.drag = dragState{moving: tl, offset: ev.Pos.Sub(tl.screen.TopLeft())}
	return false
}

func (a *App) moveToplevel(_ *Widget, ev platform.Event, _ any) bool {
	tl := a.drag.moving
	if tl == nil || tl.parent == nil {
		return false
	}
	pc := tl.parent.content
	a.Place(tl, PlaceOptions{
		Anchor: Set(graphics.AnchorNorthWest),
		X:      Set(ev.Pos.X - a.drag.offset.X - pc.X),
		Y:      Set(ev.Pos.Y - a.drag.offset.Y - pc.Y),
		RelX:   Set(0.0),
		RelY:   Set(0.0),
	})
	return false
}

func (a *App) endMove(_ *Widget, _ platform.Event, _ any) bool {
	if a.drag.moving != nil {
		a.drag = dragState{}
	}
	return false
}

// beginResize starts dragging the resize handle of a toplevel.
func (a *App) beginResize(h *Widget, ev platform.Event, _ any) bool {
	tl := h.parent
	if ev.Button != platform.ButtonLeft || tl == nil || a.drag.active() {
		return false
	}
	st, ok := tl.state.(*ToplevelState)
	if !ok || st.Resizable == graphics.AxisNone {
		return false
	}
	a.drag = dragState{
		resizing: tl,
		offset:   graphics.Pt(tl.screen.Right()-ev.Pos.X, tl.screen.Bottom()-ev.Pos.Y),
	}
	return true
}

// resizeToplevel follows the pointer along the resizable axes, never going
// below the minimum content size.
func (a *App) resizeToplevel(_ *Widget, ev platform.Event, _ any) bool {
	tl := a.drag.resizing
	if tl == nil {
		return false
	}
	st := tl.state.(*ToplevelState)
	chrome := st.chrome(a)
	width := ev.Pos.X - tl.screen.X + a.drag.offset.X - chrome.Width
	height := ev.Pos.Y - tl.screen.Y + a.drag.offset.Y - chrome.Height

	size := st.Size
	if st.Resizable.HasX() && width >= st.MinSize.Width {
		size.Width = width
	}
	if st.Resizable.HasY() && height >= st.MinSize.Height {
		size.Height = height
	}
	if size == st.Size {
		return false
	}
	st.Size = size
	tl.reqSize = st.outerSize(a)
	a.Place(tl, PlaceOptions{
		Width:     Set(tl.reqSize.Width),
		Height:    Set(tl.reqSize.Height),
		RelWidth:  Set(0.0),
		RelHeight: Set(0.0),
	})
	return false
}

func (a *App) endResize(_ *Widget, _ platform.Event, _ any) bool {
	if a.drag.resizing != nil {
		a.drag = dragState{}
	}
	return false
}

// Dragged returns the toplevel being moved or resized, or nil.
func (a *App) Dragged() *Widget {
	if a.drag.moving != nil {
		return a.drag.moving
	}
	return a.drag.resizing
}
