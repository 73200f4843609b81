package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
)

// GeometryManager positions widgets inside their parent's content rectangle.
type GeometryManager struct {
	// Name is the lookup key used by LookupManager.
	Name string

	// Run computes the widget's screen rectangle from its parameters and
	// commits it with App.SetScreenRect.
	Run func(w *Widget)

	// Release frees manager data when the widget stops being managed.
	Release func(w *Widget)
}

// GeometryParams ties a widget to the manager that positions it. Data holds
// the manager's own parameters.
type GeometryParams struct {
	Manager *GeometryManager
	Data    any
}

// Manage hands w to m. A widget managed by another manager is unmapped
// first; a widget already managed by m keeps its parameters and the
// returned value reports false.
func (a *App) Manage(w *Widget, m *GeometryManager, data func() any) (created bool) {
	if w.geom != nil && w.geom.Manager == m {
		return false
	}
	if w.geom != nil {
		a.Unmap(w)
	}
	w.geom = &GeometryParams{Manager: m}
	if data != nil {
		w.geom.Data = data()
	}
	return true
}

// RunGeometry asks w's manager to recompute its screen rectangle. It does
// nothing for unmanaged widgets.
func (a *App) RunGeometry(w *Widget) {
	if w.geom == nil || w.destroyed {
		return
	}
	if a.config.Debug && !a.acyclic(w) {
		a.report("ui.RunGeometry", errors.KindUsage, w, errors.ErrCycle)
		return
	}
	w.geom.Manager.Run(w)
}

// SetScreenRect commits a new screen rectangle computed by a geometry
// manager. When r differs from the current rectangle, the previous area is
// invalidated and the widget is notified; the result reports whether that
// happened.
func (a *App) SetScreenRect(w *Widget, r graphics.Rect) bool {
	if r == w.screen {
		return false
	}
	if old := w.screen; !old.IsEmpty() {
		a.Invalidate(old.Expand(a.config.DamageMargin))
	}
	w.screen = r
	a.notifyGeometry(w)
	return true
}

// notifyGeometry refreshes the content rectangle, re-runs the children's
// managers and damages the new area.
func (a *App) notifyGeometry(w *Widget) {
	if w.class.GeomNotify != nil {
		w.class.GeomNotify(w)
	} else {
		w.content = w.screen
	}
	for _, c := range w.children {
		a.RunGeometry(c)
	}
	a.Invalidate(w.screen.Expand(a.config.DamageMargin))
}

// Unmap removes w from geometry management. It stops being drawn and picked
// until it is placed again. Descendants keep their parameters.
func (a *App) Unmap(w *Widget) {
	if w.geom == nil {
		return
	}
	if rel := w.geom.Manager.Release; rel != nil {
		rel(w)
	}
	w.geom = nil
	if !w.screen.IsEmpty() {
		a.Invalidate(w.screen.Expand(a.config.DamageMargin))
	}
	w.screen = graphics.Rect{}
	w.content = graphics.Rect{}
}

// relayout re-runs w's manager after its attributes changed. When the screen
// rectangle stays the same the widget is still notified so a new border or
// padding reaches the content rectangle.
func (a *App) relayout(w *Widget) {
	if w.geom == nil {
		return
	}
	before := w.screen
	a.RunGeometry(w)
	if w.screen == before && w.geom != nil {
		a.notifyGeometry(w)
	}
}

// acyclic reports whether following parent links from w reaches the root
// in fewer steps than there are live widgets.
func (a *App) acyclic(w *Widget) bool {
	steps := 0
	for p := w.parent; p != nil; p = p.parent {
		if p == w || steps > a.stats.LiveWidgets {
			return false
		}
		steps++
	}
	return true
}
