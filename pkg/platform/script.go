package platform

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is the YAML form of an event sequence:
//
//	events:
//	  - {type: mouse_down, x: 40, y: 12}
//	  - {type: mouse_up, x: 40, y: 12}
//	  - {type: key_down, key: escape}
type Script struct {
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one scripted event.
type ScriptEvent struct {
	Type   string `yaml:"type"`
	X      int    `yaml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"`
	Button string `yaml:"button,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Text   string `yaml:"text,omitempty"`
	Shift  bool   `yaml:"shift,omitempty"`
	Ctrl   bool   `yaml:"ctrl,omitempty"`
}

// ParseScript decodes a YAML event script.
func ParseScript(data []byte) ([]Event, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	events := make([]Event, 0, len(s.Events))
	for i, se := range s.Events {
		ev, err := se.event()
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrBadScript, i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// LoadScript reads a YAML event script from path.
func LoadScript(path string) (*Scripted, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("event script %s not found", path)
		}
		return nil, fmt.Errorf("failed to read event script: %w", err)
	}
	events, err := ParseScript(data)
	if err != nil {
		return nil, err
	}
	return NewScripted(events...), nil
}

func (se ScriptEvent) event() (Event, error) {
	typ, err := ParseEventType(se.Type)
	if err != nil {
		return Event{}, err
	}
	ev := Event{Type: typ}
	if se.Shift {
		ev.Modifiers |= ModShift
	}
	if se.Ctrl {
		ev.Modifiers |= ModControl
	}
	switch {
	case typ.Pickable():
		ev.Pos.X, ev.Pos.Y = se.X, se.Y
		if typ != EventMouseMove {
			ev.Button, err = parseButton(se.Button)
		}
	case typ == EventKeyDown || typ == EventKeyUp:
		if r := []rune(se.Text); len(r) == 1 {
			ev.Rune = r[0]
		} else if se.Key != "" {
			code, ok := keyNames[se.Key]
			if !ok {
				return Event{}, fmt.Errorf("unknown key %q", se.Key)
			}
			ev.Key = code
		}
	}
	return ev, err
}

func parseButton(name string) (MouseButton, error) {
	switch name {
	case "", "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	default:
		return ButtonNone, fmt.Errorf("unknown button %q", name)
	}
}
