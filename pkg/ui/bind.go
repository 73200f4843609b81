package ui

import (
	"reflect"

	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/platform"
)

// TagAll is the tag that matches every widget.
const TagAll = "all"

// Callback handles an event. It returns true to stop the event from reaching
// further bindings. For tag bindings w is the widget the tag resolved to.
type Callback func(w *Widget, ev platform.Event, param any) bool

// BindingID identifies a registered binding. The zero value is never
// issued.
type BindingID uint64

// Binding associates a callback with an event type and exactly one target:
// a widget or a tag (a class name or TagAll).
type Binding struct {
	id       BindingID
	Event    platform.EventType
	Widget   *Widget
	Tag      string
	Callback Callback
	Param    any
	removed  bool
}

// ID returns the binding handle.
func (b *Binding) ID() BindingID { return b.id }

// Bind registers cb for events of type ev on a widget or on a tag. Exactly
// one of w and tag must be given. Bindings fire in registration order.
func (a *App) Bind(ev platform.EventType, w *Widget, tag string, cb Callback, param any) BindingID {
	switch {
	case w != nil && tag != "":
		a.report("ui.Bind", errors.KindUsage, w, errors.ErrBothTargets)
		return 0
	case w == nil && tag == "":
		a.report("ui.Bind", errors.KindUsage, nil, errors.ErrNoTarget)
		return 0
	case cb == nil:
		a.report("ui.Bind", errors.KindUsage, w, errors.ErrIncomplete)
		return 0
	case w != nil && w.destroyed:
		a.report("ui.Bind", errors.KindUsage, w, errors.ErrDestroyed)
		return 0
	}
	a.nextBinding++
	b := &Binding{
		id:       a.nextBinding,
		Event:    ev,
		Widget:   w,
		Tag:      tag,
		Callback: cb,
		Param:    param,
	}
	a.bindings = append(a.bindings, b)
	return b.id
}

// Unbind removes the first binding matching all five fields. Callbacks are
// compared by function identity and params with == when comparable.
// Removing a binding that does not exist is a no-op.
func (a *App) Unbind(ev platform.EventType, w *Widget, tag string, cb Callback, param any) {
	for _, b := range a.bindings {
		if b.Event == ev && b.Widget == w && b.Tag == tag &&
			sameCallback(b.Callback, cb) && sameParam(b.Param, param) {
			a.removeBinding(b)
			return
		}
	}
}

// UnbindID removes the binding with the given handle.
func (a *App) UnbindID(id BindingID) {
	for _, b := range a.bindings {
		if b.id == id {
			a.removeBinding(b)
			return
		}
	}
}

// Bindings returns the number of registered bindings.
func (a *App) Bindings() int { return len(a.bindings) }

func (a *App) removeBinding(target *Binding) {
	target.removed = true
	kept := a.bindings[:0:0]
	for _, b := range a.bindings {
		if b != target {
			kept = append(kept, b)
		}
	}
	a.bindings = kept
}

// unbindWidget drops every binding that targets w.
func (a *App) unbindWidget(w *Widget) {
	kept := a.bindings[:0:0]
	for _, b := range a.bindings {
		if b.Widget == w {
			b.removed = true
			continue
		}
		kept = append(kept, b)
	}
	a.bindings = kept
}

func sameCallback(x, y Callback) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
}

func sameParam(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx != ty || !tx.Comparable() {
		return false
	}
	return x == y
}
