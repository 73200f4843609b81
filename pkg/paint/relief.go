package paint

import (
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// ReliefColors returns the colors of the upper-left and lower-right halves
// of a border around a surface of color base.
func ReliefColors(base graphics.Color, relief graphics.Relief) (high, low graphics.Color) {
	switch relief {
	case graphics.ReliefRaised:
		return base.Lighten(), base.Darken()
	case graphics.ReliefSunken:
		return base.Darken(), base.Lighten()
	default:
		return base.Darken(), base.Darken()
	}
}

// InHighHalf reports whether (x, y) lies in the upper-left half of r. The
// halves are split by 45° segments through the bottom-left and top-right
// squares of side min(w, h)/2, joined by a straight line along the middle.
func InHighHalf(r graphics.Rect, x, y int) bool {
	h := min(r.W, r.H) / 2
	switch {
	case x < r.X+h && y >= r.Bottom()-h:
		return x-r.X < r.Bottom()-y
	case x >= r.Right()-h && y < r.Y+h:
		return y-r.Y < r.Right()-x
	case r.W >= r.H:
		return y < r.Y+h
	default:
		return x < r.X+h
	}
}

// Frame paints a bordered box: a two-tone border of the given relief over the
// rounded outline of outer, then the interior filled with base. The border is
// clipped by borderClip and the interior by clip. A zero border paints outer
// flat with base.
func Frame(s platform.Surface, outer, inner graphics.Rect, radius, border int, base graphics.Color, relief graphics.Relief, borderClip, clip graphics.Rect) {
	if border <= 0 {
		FillRounded(s, outer, radius, base, borderClip)
		return
	}
	high, low := ReliefColors(base, relief)
	fillWhere(s, outer, high, borderClip, func(x, y int) bool {
		return InRounded(outer, radius, x, y) && InHighHalf(outer, x, y)
	})
	fillWhere(s, outer, low, borderClip, func(x, y int) bool {
		return InRounded(outer, radius, x, y) && !InHighHalf(outer, x, y)
	})
	FillRounded(s, inner, radius, base, clip)
}
