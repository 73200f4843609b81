package platform

import (
	"fmt"

	"github.com/go-drift/canopy/pkg/graphics"
)

// EventType identifies the kind of a hardware event.
type EventType int

const (
	EventNone EventType = iota
	// EventExpose asks the application to repaint everything (window shown,
	// resized or otherwise damaged by the host).
	EventExpose
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMove
	// EventLast bounds the range of event types.
	EventLast
)

var eventTypeNames = [...]string{
	EventNone:            "none",
	EventExpose:          "expose",
	EventKeyDown:         "key_down",
	EventKeyUp:           "key_up",
	EventMouseButtonDown: "mouse_down",
	EventMouseButtonUp:   "mouse_up",
	EventMouseMove:       "mouse_move",
	EventLast:            "last",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Pickable reports whether events of this type carry a pointer position.
func (t EventType) Pickable() bool {
	return t >= EventMouseButtonDown && t < EventLast
}

// ParseEventType converts a name produced by String back to an EventType.
func ParseEventType(name string) (EventType, error) {
	for i, n := range eventTypeNames {
		if n == name {
			return EventType(i), nil
		}
	}
	return EventNone, fmt.Errorf("unknown event type %q", name)
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// KeyCode identifies a non-printable key. Printable keys set Event.Rune.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeySpace
)

var keyNames = map[string]KeyCode{
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"left":      KeyArrowLeft,
	"right":     KeyArrowRight,
	"up":        KeyArrowUp,
	"down":      KeyArrowDown,
	"space":     KeySpace,
}

// Event is one hardware event record.
type Event struct {
	Type EventType

	// Pos is the pointer position for pickable events.
	Pos    graphics.Point
	Button MouseButton

	Key       KeyCode
	Rune      rune
	Modifiers Modifiers
}

func (e Event) String() string {
	switch {
	case e.Type.Pickable():
		return fmt.Sprintf("%s@%v", e.Type, e.Pos)
	case e.Type == EventKeyDown || e.Type == EventKeyUp:
		if e.Rune != 0 {
			return fmt.Sprintf("%s(%q)", e.Type, e.Rune)
		}
		return fmt.Sprintf("%s(key=%d)", e.Type, e.Key)
	default:
		return e.Type.String()
	}
}

// MouseDown builds a left-button press event.
func MouseDown(x, y int) Event {
	return Event{Type: EventMouseButtonDown, Pos: graphics.Pt(x, y), Button: ButtonLeft}
}

// MouseUp builds a left-button release event.
func MouseUp(x, y int) Event {
	return Event{Type: EventMouseButtonUp, Pos: graphics.Pt(x, y), Button: ButtonLeft}
}

// MouseMove builds a pointer motion event.
func MouseMove(x, y int) Event {
	return Event{Type: EventMouseMove, Pos: graphics.Pt(x, y)}
}

// KeyDown builds a key press event.
func KeyDown(code KeyCode, r rune) Event {
	return Event{Type: EventKeyDown, Key: code, Rune: r}
}

// KeyUp builds a key release event.
func KeyUp(code KeyCode, r rune) Event {
	return Event{Type: EventKeyUp, Key: code, Rune: r}
}
