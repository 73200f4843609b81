// Package paint implements the pixel primitives widgets are drawn with. Every
// primitive is aliased so the same shape painted on the visible surface and
// the pick surface covers exactly the same pixels. Callers hold the surface
// lock.
package paint

import (
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// MapRGBA returns the four bytes of c in s's channel order.
func MapRGBA(s platform.Surface, c graphics.Color) [4]byte {
	ri, gi, bi, ai := s.ChannelIndices()
	r, g, b, a := c.Channels()
	var px [4]byte
	px[ri], px[gi], px[bi] = r, g, b
	if ai >= 0 {
		px[ai] = a
	}
	return px
}

// ReadPixel returns the color stored at p. Surfaces without alpha read as
// opaque. Points outside the surface return false.
func ReadPixel(s platform.Surface, p graphics.Point) (graphics.Color, bool) {
	size := s.Size()
	if p.X < 0 || p.Y < 0 || p.X >= size.Width || p.Y >= size.Height {
		return 0, false
	}
	ri, gi, bi, ai := s.ChannelIndices()
	px := s.Buffer()[platform.PixelOffset(s, p.X, p.Y):]
	a := uint8(0xFF)
	if ai >= 0 {
		a = px[ai]
	}
	return graphics.RGBA8(px[ri], px[gi], px[bi], a), true
}

// clipTo intersects r with clip and the surface bounds.
func clipTo(s platform.Surface, r, clip graphics.Rect) graphics.Rect {
	return r.Intersect(clip).Normalize(s.Size())
}

// Fill paints every pixel of clip with c.
func Fill(s platform.Surface, c graphics.Color, clip graphics.Rect) {
	FillRect(s, clip, c, clip)
}

// FillRect paints r ∩ clip with c.
func FillRect(s platform.Surface, r graphics.Rect, c graphics.Color, clip graphics.Rect) {
	r = clipTo(s, r, clip)
	if r.IsEmpty() {
		return
	}
	px := MapRGBA(s, c)
	buf := s.Buffer()
	for y := r.Y; y < r.Bottom(); y++ {
		row := buf[platform.PixelOffset(s, r.X, y):platform.PixelOffset(s, r.Right(), y)]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// ClampRadius limits a corner radius to what fits in r.
func ClampRadius(r graphics.Rect, radius int) int {
	return max(0, min(radius, min(r.W, r.H)/2))
}

// InRounded reports whether the pixel at (x, y) lies in r with corners of the
// given radius. A pixel is inside a corner when its center is within the
// corner circle.
func InRounded(r graphics.Rect, radius int, x, y int) bool {
	if !r.Contains(graphics.Pt(x, y)) {
		return false
	}
	radius = ClampRadius(r, radius)
	if radius == 0 {
		return true
	}
	var cx, cy int
	switch {
	case x < r.X+radius:
		cx = r.X + radius
	case x >= r.Right()-radius:
		cx = r.Right() - radius
	default:
		return true
	}
	switch {
	case y < r.Y+radius:
		cy = r.Y + radius
	case y >= r.Bottom()-radius:
		cy = r.Bottom() - radius
	default:
		return true
	}
	// Doubled coordinates keep pixel centers integral.
	dx := 2*x + 1 - 2*cx
	dy := 2*y + 1 - 2*cy
	return dx*dx+dy*dy <= 4*radius*radius
}

// FillRounded paints the rounded rectangle r, clipped by clip.
func FillRounded(s platform.Surface, r graphics.Rect, radius int, c graphics.Color, clip graphics.Rect) {
	if ClampRadius(r, radius) == 0 {
		FillRect(s, r, c, clip)
		return
	}
	fillWhere(s, r, c, clip, func(x, y int) bool { return InRounded(r, radius, x, y) })
}

func fillWhere(s platform.Surface, r graphics.Rect, c graphics.Color, clip graphics.Rect, inside func(x, y int) bool) {
	area := clipTo(s, r, clip)
	if area.IsEmpty() {
		return
	}
	px := MapRGBA(s, c)
	buf := s.Buffer()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if inside(x, y) {
				off := platform.PixelOffset(s, x, y)
				copy(buf[off:off+4], px[:])
			}
		}
	}
}
