package testing

import (
	"fmt"

	"github.com/go-drift/canopy/pkg/graphics"
)

// Tap clicks the center of the first widget matched by finder.
func (t *Tester) Tap(finder Finder) error {
	t.t.Helper()
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	w := result.First()
	if !w.IsManaged() {
		return fmt.Errorf("Tap: %v is not mapped: %s", w, finder.Description())
	}
	t.TapAt(w.ScreenRect().Center())
	return nil
}

// TapAt clicks at p.
func (t *Tester) TapAt(p graphics.Point) {
	t.t.Helper()
	t.Click(p)
}

// Drag presses on the center of the first widget matched by finder, moves
// by delta and releases.
func (t *Tester) Drag(finder Finder, delta graphics.Point) error {
	t.t.Helper()
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Drag: finder matched no widgets: %s", finder.Description())
	}
	w := result.First()
	if !w.IsManaged() {
		return fmt.Errorf("Drag: %v is not mapped: %s", w, finder.Description())
	}
	t.DragFrom(w.ScreenRect().Center(), delta)
	return nil
}

// DragFrom presses at start, moves by delta and releases at the end point.
func (t *Tester) DragFrom(start, delta graphics.Point) {
	t.t.Helper()
	t.DragFromSteps(start, delta, 1)
}

// DragFromSteps is DragFrom with the motion split into steps events.
func (t *Tester) DragFromSteps(start, delta graphics.Point, steps int) {
	t.t.Helper()
	if steps < 1 {
		steps = 1
	}
	t.Press(start)
	for i := 1; i <= steps; i++ {
		t.Move(graphics.Pt(start.X+delta.X*i/steps, start.Y+delta.Y*i/steps))
	}
	t.Release(start.Add(delta))
}
