package ui

import (
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// pressState tracks the button held down with the left mouse button.
type pressState struct {
	button *Widget
	// over is true while the pointer is over the pressed button.
	over bool
}

// holds reports whether w is pressed with the pointer over it.
func (p pressState) holds(w *Widget) bool {
	return p.button == w && p.over
}

// dragState tracks the single toplevel being moved or resized.
type dragState struct {
	moving   *Widget
	resizing *Widget
	// offset is the pointer position relative to the dragged corner.
	offset graphics.Point
}

func (d dragState) active() bool {
	return d.moving != nil || d.resizing != nil
}

// installInteraction binds the built-in button and toplevel behavior.
func (a *App) installInteraction() {
	a.Bind(platform.EventMouseButtonDown, nil, ButtonClassName, a.pressButton, nil)
	a.Bind(platform.EventMouseButtonUp, nil, TagAll, a.releaseButton, nil)
	a.Bind(platform.EventMouseMove, nil, TagAll, a.trackButton, nil)
	a.Bind(platform.EventMouseButtonUp, nil, TagAll, a.endResize, nil)
	a.Bind(platform.EventMouseMove, nil, TagAll, a.resizeToplevel, nil)
	a.Bind(platform.EventMouseButtonUp, nil, TagAll, a.endMove, nil)
	a.Bind(platform.EventMouseMove, nil, TagAll, a.moveToplevel, nil)
}

// forget drops any interaction state referring to w.
func (a *App) forget(w *Widget) {
	if a.press.button == w {
		a.press = pressState{}
	}
	if a.drag.moving == w || a.drag.resizing == w {
		a.drag = dragState{}
	}
}

func (a *App) pressButton(w *Widget, ev platform.Event, _ any) bool {
	if ev.Button != platform.ButtonLeft {
		return false
	}
	a.press = pressState{button: w, over: true}
	a.Invalidate(w.screen.Expand(a.config.DamageMargin))
	return false
}

// releaseButton ends a press. The button's callback fires only when the
// pointer is released over the button that was pressed.
func (a *App) releaseButton(_ *Widget, ev platform.Event, _ any) bool {
	btn := a.press.button
	if btn == nil || ev.Button != platform.ButtonLeft {
		return false
	}
	a.press = pressState{}
	a.Invalidate(btn.screen.Expand(a.config.DamageMargin))
	if a.Pick(ev.Pos) != btn {
		return false
	}
	if st, ok := btn.state.(*ButtonState); ok && st.Callback != nil {
		st.Callback(btn, ev, st.Param)
	}
	return false
}

// trackButton redraws the pressed button raised while the pointer is
// outside it and sunken again when it comes back.
func (a *App) trackButton(_ *Widget, ev platform.Event, _ any) bool {
	btn := a.press.button
	if btn == nil {
		return false
	}
	if over := a.Pick(ev.Pos) == btn; over != a.press.over {
		a.press.over = over
		a.Invalidate(btn.screen.Expand(a.config.DamageMargin))
	}
	return false
}

// Pressed returns the button currently held down, or nil.
func (a *App) Pressed() *Widget { return a.press.button }
