package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
)

// Invalidate records r as needing redraw at the next Flush. The rectangle is
// clipped to the display; a rectangle close to the previously recorded one
// is merged into it.
func (a *App) Invalidate(r graphics.Rect) {
	r = r.Normalize(a.display.Size())
	if r.IsEmpty() {
		return
	}
	if n := len(a.damage); n > 0 && mergeable(a.damage[n-1], r) {
		a.damage[n-1] = a.damage[n-1].Union(r)
		return
	}
	a.damage = append(a.damage, r)
}

// mergeable reports whether r is within half a rectangle of last on both
// axes.
func mergeable(last, r graphics.Rect) bool {
	return 2*abs(r.X-last.X) <= max(last.W, r.W) &&
		2*abs(r.Y-last.Y) <= max(last.H, r.H)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Damage returns a copy of the pending damage list.
func (a *App) Damage() []graphics.Rect {
	return append([]graphics.Rect(nil), a.damage...)
}

// Flush redraws every pending damaged rectangle into the display and the
// pick surface, then presents them. It does nothing when there is no damage.
func (a *App) Flush() error {
	if len(a.damage) == 0 {
		return nil
	}
	rects := a.damage
	a.damage = nil
	a.redraw(rects)
	a.stats.Frames++
	a.stats.DamageRects += len(rects)
	if err := a.display.Flush(rects); err != nil {
		a.report("ui.Flush", errors.KindPlatform, nil, err)
		return err
	}
	return nil
}

// RedrawAll discards pending damage and redraws the whole display.
func (a *App) RedrawAll() error {
	a.damage = []graphics.Rect{graphics.RectAt(graphics.Point{}, a.display.Size())}
	return a.Flush()
}

func (a *App) redraw(rects []graphics.Rect) {
	a.display.Lock()
	defer a.display.Unlock()
	a.pick.Lock()
	defer a.pick.Unlock()

	for _, r := range rects {
		paint.Fill(a.pick, noWidgetColor, r)
		if a.root != nil {
			a.drawTree(a.root, r, r)
		}
	}
}

// drawTree draws w clipped by clip, then its managed children clipped by
// w's content rectangle.
func (a *App) drawTree(w *Widget, clip, damage graphics.Rect) {
	dc := &DrawContext{Surface: a.display, Clip: clip, Damage: damage}
	if w != a.root {
		dc.Pick = a.pick
	}
	a.drawWidget(w, dc)

	inner := clip.Intersect(w.content)
	for _, c := range w.children {
		if c.geom != nil {
			a.drawTree(c, inner, damage)
		}
	}
}

func (a *App) drawWidget(w *Widget, dc *DrawContext) {
	defer errors.Recover("ui.Draw")
	w.class.Draw(w, dc)
}
