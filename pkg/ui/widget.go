package ui

import (
	"fmt"

	"github.com/go-drift/canopy/pkg/graphics"
)

// WidgetID identifies a widget for the lifetime of an App. The root frame is
// 1; 0 means "no widget".
type WidgetID uint32

// PickColor returns the pick surface color that encodes id: the low byte in
// red, the next in green, the third in blue, fully opaque.
func (id WidgetID) PickColor() graphics.Color {
	return graphics.RGBA8(uint8(id), uint8(id>>8), uint8(id>>16), 0xFF)
}

// idFromPickColor inverts PickColor.
func idFromPickColor(c graphics.Color) WidgetID {
	r, g, b, _ := c.Channels()
	return WidgetID(r) | WidgetID(g)<<8 | WidgetID(b)<<16
}

// Widget is a node of the widget tree.
type Widget struct {
	app   *App
	class *Class
	id    WidgetID
	pick  graphics.Color

	parent   *Widget
	children []*Widget

	// geom is non-nil while the widget is managed by a geometry manager.
	geom    *GeometryParams
	reqSize graphics.Size
	screen  graphics.Rect
	content graphics.Rect

	// state is the per-class attribute block returned by Class.Alloc.
	state any

	role       buttonRole
	userData   any
	destructor func(*Widget)
	destroyed  bool
}

// ID returns the widget id.
func (w *Widget) ID() WidgetID { return w.id }

// Class returns the widget's class.
func (w *Widget) Class() *Class { return w.class }

// ClassName returns the name of the widget's class.
func (w *Widget) ClassName() string { return w.class.Name }

// App returns the application owning the widget.
func (w *Widget) App() *App { return w.app }

// Parent returns the parent widget, or nil for the root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the children in drawing order. The slice must not be
// modified.
func (w *Widget) Children() []*Widget { return w.children }

// PickColor returns the color the widget paints into the pick surface.
func (w *Widget) PickColor() graphics.Color { return w.pick }

// RequestedSize returns the size the widget asks its geometry manager for.
func (w *Widget) RequestedSize() graphics.Size { return w.reqSize }

// SetRequestedSize changes the requested size. It does not re-run geometry
// management; classes call it while configuring.
func (w *Widget) SetRequestedSize(s graphics.Size) { w.reqSize = s }

// ScreenRect returns the rectangle the widget occupies on screen.
func (w *Widget) ScreenRect() graphics.Rect { return w.screen }

// ContentRect returns the area available to children.
func (w *Widget) ContentRect() graphics.Rect { return w.content }

// SetContentRect is called by classes from their geometry notification to
// publish the area children are laid out in.
func (w *Widget) SetContentRect(r graphics.Rect) { w.content = r }

// IsManaged reports whether a geometry manager currently positions the
// widget. Unmanaged widgets are neither drawn nor pickable.
func (w *Widget) IsManaged() bool { return w.geom != nil }

// GeometryParams returns the widget's geometry parameters, or nil when it is
// unmanaged.
func (w *Widget) GeometryParams() *GeometryParams { return w.geom }

// State returns the class attribute block.
func (w *Widget) State() any { return w.state }

// UserData returns the value supplied at creation.
func (w *Widget) UserData() any { return w.userData }

// Destroyed reports whether the widget has been destroyed.
func (w *Widget) Destroyed() bool { return w.destroyed }

// Walk visits w and its descendants depth first, parents before children.
// Returning false from fn stops the walk.
func (w *Widget) Walk(fn func(*Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, c := range w.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// IsAncestorOf reports whether w is a strict ancestor of other.
func (w *Widget) IsAncestorOf(other *Widget) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

func (w *Widget) String() string {
	if w == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", w.class.Name, w.id)
}
