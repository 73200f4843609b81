package ui

import (
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
)

// noWidgetColor fills pick pixels not covered by any widget. It decodes to
// id 0.
var noWidgetColor = WidgetID(0).PickColor()

// Pick returns the widget drawn at p, or nil when p is outside the display
// or over the root background. Pixels are those of the last flush, but a
// widget destroyed or unmapped since then, or one below an unmapped
// ancestor, is never returned.
func (a *App) Pick(p graphics.Point) *Widget {
	c, ok := paint.ReadPixel(a.pick, p)
	if !ok {
		return nil
	}
	id := idFromPickColor(c)
	if id == 0 {
		return nil
	}
	w := a.widgets[id]
	if w == nil || !a.mapped(w) {
		return nil
	}
	return w
}

// mapped reports whether w and every ancestor below the root are managed.
func (a *App) mapped(w *Widget) bool {
	for ; w != nil && w != a.root; w = w.parent {
		if w.geom == nil {
			return false
		}
	}
	return w == a.root
}

// PickSurface exposes the offscreen pick surface.
func (a *App) PickSurface() platform.Surface { return a.pick }

// WidgetByID returns the live widget with the given id, or nil.
func (a *App) WidgetByID(id WidgetID) *Widget { return a.widgets[id] }
