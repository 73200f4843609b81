// Package shiny runs the toolkit in a native window using golang.org/x/exp/shiny,
// translating x/mobile input events into platform events.
package shiny

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// Deque is the event queue of a shiny window.
type Deque interface {
	NextEvent() interface{}
}

// Source adapts a Deque to platform.EventSource.
type Source struct {
	deque  Deque
	closed bool
}

// NewSource returns an event source reading from d.
func NewSource(d Deque) *Source {
	return &Source{deque: d}
}

// NextEvent blocks until an event the toolkit understands arrives. It
// returns false once the window reaches the dead lifecycle stage.
func (s *Source) NextEvent() (platform.Event, bool) {
	for !s.closed {
		ev, ok := Translate(s.deque.NextEvent())
		if !ok {
			s.closed = true
			break
		}
		if ev.Type != platform.EventNone {
			return ev, true
		}
	}
	return platform.Event{}, false
}

// Translate converts one shiny event. The boolean is false when the event
// ends the session. Events with no platform equivalent translate to
// EventNone.
func Translate(e interface{}) (platform.Event, bool) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead || e.Crosses(lifecycle.StageDead) == lifecycle.CrossOn {
			return platform.Event{}, false
		}
	case paint.Event, size.Event:
		return platform.Event{Type: platform.EventExpose}, true
	case mouse.Event:
		return translateMouse(e), true
	case key.Event:
		return translateKey(e), true
	}
	return platform.Event{}, true
}

func translateMouse(e mouse.Event) platform.Event {
	ev := platform.Event{
		Pos:       graphics.Pt(int(e.X), int(e.Y)),
		Modifiers: translateModifiers(e.Modifiers),
	}
	switch e.Direction {
	case mouse.DirPress:
		ev.Type = platform.EventMouseButtonDown
	case mouse.DirRelease:
		ev.Type = platform.EventMouseButtonUp
	case mouse.DirNone:
		ev.Type = platform.EventMouseMove
		return ev
	default:
		return platform.Event{}
	}
	switch e.Button {
	case mouse.ButtonLeft:
		ev.Button = platform.ButtonLeft
	case mouse.ButtonMiddle:
		ev.Button = platform.ButtonMiddle
	case mouse.ButtonRight:
		ev.Button = platform.ButtonRight
	default:
		return platform.Event{}
	}
	return ev
}

var keyCodes = map[key.Code]platform.KeyCode{
	key.CodeEscape:          platform.KeyEscape,
	key.CodeReturnEnter:     platform.KeyEnter,
	key.CodeTab:             platform.KeyTab,
	key.CodeDeleteBackspace: platform.KeyBackspace,
	key.CodeDeleteForward:   platform.KeyDelete,
	key.CodeLeftArrow:       platform.KeyArrowLeft,
	key.CodeRightArrow:      platform.KeyArrowRight,
	key.CodeUpArrow:         platform.KeyArrowUp,
	key.CodeDownArrow:       platform.KeyArrowDown,
	key.CodeSpacebar:        platform.KeySpace,
}

func translateKey(e key.Event) platform.Event {
	ev := platform.Event{Modifiers: translateModifiers(e.Modifiers)}
	switch e.Direction {
	case key.DirPress, key.DirNone:
		ev.Type = platform.EventKeyDown
	case key.DirRelease:
		ev.Type = platform.EventKeyUp
	default:
		return platform.Event{}
	}
	ev.Key = keyCodes[e.Code]
	if e.Rune > 0 && ev.Key == platform.KeyUnknown {
		ev.Rune = e.Rune
	}
	return ev
}

func translateModifiers(m key.Modifiers) platform.Modifiers {
	var out platform.Modifiers
	if m&key.ModShift != 0 {
		out |= platform.ModShift
	}
	if m&key.ModControl != 0 {
		out |= platform.ModControl
	}
	if m&key.ModAlt != 0 {
		out |= platform.ModAlt
	}
	if m&key.ModMeta != 0 {
		out |= platform.ModMeta
	}
	return out
}
