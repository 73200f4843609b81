package ui

import (
	"slices"

	"github.com/go-drift/canopy/pkg/errors"
)

// Create makes a new widget of the named class as the last child of parent
// and applies the class defaults. A nil parent means the root. The widget is
// not drawn until a geometry manager takes it. Create returns nil and
// reports an error when the class is unknown or parent was destroyed.
//
// destructor, if not nil, runs first when the widget is destroyed.
func (a *App) Create(className string, parent *Widget, userData any, destructor func(*Widget)) *Widget {
	class := a.LookupClass(className)
	if class == nil {
		a.report("ui.Create", errors.KindLookup, nil, errors.ErrUnknownClass)
		a.log.Debug("unknown class", "class", className)
		return nil
	}
	if parent == nil {
		parent = a.root
	}
	if parent == nil {
		a.report("ui.Create", errors.KindUsage, nil, errors.ErrNoRoot)
		return nil
	}
	if parent.destroyed {
		a.report("ui.Create", errors.KindUsage, parent, errors.ErrDestroyed)
		return nil
	}
	return a.newWidget(class, parent, userData, destructor)
}

func (a *App) newWidget(class *Class, parent *Widget, userData any, destructor func(*Widget)) *Widget {
	a.nextID++
	w := &Widget{
		app:        a,
		class:      class,
		id:         a.nextID,
		pick:       a.nextID.PickColor(),
		parent:     parent,
		userData:   userData,
		destructor: destructor,
	}
	if class.Alloc != nil {
		w.state = class.Alloc()
	}
	if parent != nil {
		parent.insertChild(w)
	}
	a.widgets[w.id] = w
	a.stats.LiveWidgets++
	if class.SetDefaults != nil {
		class.SetDefaults(w)
	}
	return w
}

// insertChild appends c to w's children, keeping tail-role children last.
func (w *Widget) insertChild(c *Widget) {
	i := len(w.children)
	if !c.role.tail() {
		for i > 0 && w.children[i-1].role.tail() {
			i--
		}
	}
	w.children = slices.Insert(w.children, i, c)
}

func (w *Widget) removeChild(c *Widget) {
	if i := slices.Index(w.children, c); i >= 0 {
		w.children = slices.Delete(w.children, i, i+1)
	}
}

// Destroy removes w and all its descendants. For each widget the user
// destructor runs first, then its children are destroyed, then it is
// unlinked from its parent, its bindings are dropped, it is unmapped and the
// class releases its resources. Destroying the root also quits the app.
func (a *App) Destroy(w *Widget) {
	if w == nil || w.destroyed {
		return
	}
	w.destroyed = true
	if w.destructor != nil {
		w.destructor(w)
	}
	for len(w.children) > 0 {
		a.Destroy(w.children[len(w.children)-1])
	}
	if w.parent != nil {
		w.parent.removeChild(w)
	}
	a.unbindWidget(w)
	a.forget(w)
	a.Unmap(w)
	if w.class.Release != nil {
		w.class.Release(w)
	}

	delete(a.widgets, w.id)
	a.stats.LiveWidgets--

	if w == a.root {
		a.root = nil
		a.damage = nil
		a.Quit()
		a.log.Debug("root destroyed")
	}
}
