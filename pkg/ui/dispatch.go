package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// Dispatch delivers ev to the matching bindings in registration order and
// reports whether a callback consumed it.
//
// For pointer events a widget binding only fires when the widget is the one
// under the pointer, and a tag binding resolves to the picked widget if it
// carries the tag. Over the background the root stands in for the picked
// widget. For other events a tag binding resolves to the first widget of
// that class in depth-first order, or the root for TagAll. The pointer is
// resolved again for every binding, so a callback that destroys or unmaps
// the widget under it is seen by the bindings after it.
func (a *App) Dispatch(ev platform.Event) bool {
	a.stats.EventsDispatched++
	if a.root == nil {
		return false
	}

	pickable := ev.Type.Pickable()
	snapshot := append([]*Binding(nil), a.bindings...)
	for _, b := range snapshot {
		if b.removed || b.Event != ev.Type {
			continue
		}
		var target *Widget
		if pickable {
			target = a.resolvePointer(b, ev.Pos)
		} else {
			target = a.resolve(b)
		}
		if target == nil {
			continue
		}
		if a.invoke(b, target, ev) {
			a.stats.EventsHandled++
			return true
		}
		if a.root == nil {
			return false
		}
	}
	return false
}

// resolvePointer returns the widget a pointer binding fires on at p, or nil
// when it does not apply.
func (a *App) resolvePointer(b *Binding, p graphics.Point) *Widget {
	under := a.Pick(p)
	if under == nil {
		under = a.root
	}
	switch {
	case b.Widget != nil:
		if b.Widget != under {
			return nil
		}
	case b.Tag != TagAll && b.Tag != under.class.Name:
		return nil
	}
	return under
}

// resolve returns the widget a non-pointer binding fires on, or nil when it
// does not apply.
func (a *App) resolve(b *Binding) *Widget {
	if b.Widget != nil {
		if b.Widget.destroyed {
			return nil
		}
		return b.Widget
	}
	if b.Tag == TagAll {
		return a.root
	}
	var found *Widget
	a.root.Walk(func(w *Widget) bool {
		if w.class.Name == b.Tag {
			found = w
			return false
		}
		return true
	})
	return found
}

// invoke runs one callback. A panicking callback is reported and treated as
// not consuming the event.
func (a *App) invoke(b *Binding, target *Widget, ev platform.Event) (handled bool) {
	defer errors.RecoverWithCallback("ui.Dispatch", func(any) {
		handled = false
	})
	return b.Callback(target, ev, b.Param)
}
