package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
)

// ButtonClassName is the registry name of the button class.
const ButtonClassName = "button"

// buttonRole marks the buttons a toplevel creates for itself.
type buttonRole uint8

const (
	roleNone buttonRole = iota
	roleClose
	roleResize
)

// tail reports whether the role keeps the widget after its siblings.
func (r buttonRole) tail() bool { return r == roleResize }

// ButtonState is the attribute block of buttons.
type ButtonState struct {
	FrameState

	// Callback fires when the left button is released over the button it
	// was pressed on.
	Callback Callback
	Param    any

	// NoClip lets the button draw outside its parent's content rectangle,
	// within the grandparent's.
	NoClip bool
}

// ButtonConfig changes button attributes. Unset fields keep their value.
type ButtonConfig struct {
	FrameConfig
	CornerRadius Attr[int]
	Callback     Attr[Callback]
	Param        Attr[any]
}

func newButtonClass() *Class {
	return &Class{
		Name:        ButtonClassName,
		Alloc:       func() any { return &ButtonState{} },
		SetDefaults: func(w *Widget) { *w.state.(*ButtonState) = buttonDefaults(w.app) },
		Draw:        drawButton,
		GeomNotify:  func(w *Widget) { boxContent(w, &w.state.(*ButtonState).FrameState) },
	}
}

func buttonDefaults(a *App) ButtonState {
	st := ButtonState{FrameState: frameDefaults(a)}
	st.BorderWidth = a.config.ButtonBorderWidth
	st.CornerRadius = a.config.ButtonCornerRadius
	st.Relief = graphics.ReliefRaised
	return st
}

// pressedOffset is how far, as a fraction of the border width, content moves
// while a button is held down.
const pressedOffset = 0.65

func drawButton(w *Widget, dc *DrawContext) {
	st := w.state.(*ButtonState)
	relief, offset := st.Relief, 0
	if w.app.press.holds(w) {
		relief = graphics.ReliefSunken
		offset = int(pressedOffset * float64(st.BorderWidth))
	}
	clip := dc.Clip
	if st.NoClip && w.parent != nil && w.parent.parent != nil {
		clip = w.parent.parent.content.Intersect(dc.Damage)
	}
	drawBox(w, dc, &st.FrameState, relief, offset, clip)
}

// ConfigureButton applies cfg to a button. The widget is re-laid out and
// redrawn.
func (a *App) ConfigureButton(w *Widget, cfg ButtonConfig) {
	const op = "ui.ConfigureButton"
	if !a.configurable(op, w) {
		return
	}
	st, ok := w.state.(*ButtonState)
	if !ok {
		a.report(op, errors.KindUsage, w, errors.ErrWrongClass)
		return
	}
	def := buttonDefaults(a)
	if !cfg.FrameConfig.applyTo(a, op, w, &st.FrameState, def.FrameState) {
		return
	}
	cfg.CornerRadius.apply(&st.CornerRadius, def.CornerRadius)
	cfg.Callback.apply(&st.Callback, def.Callback)
	cfg.Param.apply(&st.Param, def.Param)
	st.CornerRadius = max(0, st.CornerRadius)
	a.reconfigured(w)
}
