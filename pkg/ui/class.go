package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// Class describes a kind of widget. Only Name and Draw are required.
type Class struct {
	// Name is the lookup key used by App.Create.
	Name string

	// Alloc returns a fresh attribute block for a new widget. It is stored in
	// the widget and handed back through Widget.State.
	Alloc func() any

	// Release frees class resources when the widget is destroyed.
	Release func(w *Widget)

	// SetDefaults initializes the attribute block and requested size right
	// after the widget is linked into the tree.
	SetDefaults func(w *Widget)

	// Draw paints the widget into dc.Surface and, when dc.Pick is not nil,
	// its pick color into dc.Pick. Children are drawn by the caller.
	Draw func(w *Widget, dc *DrawContext)

	// GeomNotify is called after the widget's screen rectangle changed. It
	// must update the content rectangle. When nil the content rectangle
	// equals the screen rectangle.
	GeomNotify func(w *Widget)
}

// DrawContext carries the targets and clipping for one widget draw.
type DrawContext struct {
	Surface platform.Surface
	// Pick is nil when the widget must not appear in the pick surface.
	Pick platform.Surface
	// Clip is the parent's content rectangle intersected with Damage.
	Clip graphics.Rect
	// Damage is the damaged rectangle being redrawn.
	Damage graphics.Rect
}

// registry is a name-keyed list. The first registration of a name wins.
type registry[T any] struct {
	entries []*T
	name    func(*T) string
}

func newRegistry[T any](name func(*T) string) *registry[T] {
	return &registry[T]{name: name}
}

func (r *registry[T]) register(v *T) bool {
	if r.lookup(r.name(v)) != nil {
		return false
	}
	r.entries = append([]*T{v}, r.entries...)
	return true
}

func (r *registry[T]) lookup(name string) *T {
	for _, e := range r.entries {
		if r.name(e) == name {
			return e
		}
	}
	return nil
}

// RegisterClass makes a class available to Create. Registering a name that
// is already taken is ignored.
func (a *App) RegisterClass(c *Class) {
	if c == nil || c.Name == "" || c.Draw == nil {
		a.report("ui.RegisterClass", errors.KindUsage, nil, errors.ErrIncomplete)
		return
	}
	if !a.classes.register(c) {
		a.log.Debug("class already registered", "class", c.Name)
	}
}

// LookupClass returns the class registered under name, or nil.
func (a *App) LookupClass(name string) *Class {
	return a.classes.lookup(name)
}

// RegisterManager makes a geometry manager available. Registering a name
// that is already taken is ignored.
func (a *App) RegisterManager(m *GeometryManager) {
	if m == nil || m.Name == "" || m.Run == nil {
		a.report("ui.RegisterManager", errors.KindUsage, nil, errors.ErrIncomplete)
		return
	}
	if !a.managers.register(m) {
		a.log.Debug("geometry manager already registered", "manager", m.Name)
	}
}

// LookupManager returns the geometry manager registered under name, or nil.
func (a *App) LookupManager(name string) *GeometryManager {
	return a.managers.lookup(name)
}
