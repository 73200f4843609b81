package paint

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
)

// clipped restricts writes to a draw.Image to a rectangle. The image/draw
// routines clip to Bounds, so narrowing Bounds is enough.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle { return c.r }

// Text draws a single line of text with its top-left corner at at.
func Text(s platform.Surface, at graphics.Point, text string, face platform.Font, c graphics.Color, clip graphics.Rect) {
	if text == "" {
		return
	}
	if face == nil {
		face = platform.DefaultFont
	}
	area := clip.Normalize(s.Size())
	if area.IsEmpty() {
		return
	}
	d := font.Drawer{
		Dst:  clipped{Image: s, r: area.Image()},
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X, at.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// Image copies the sub-rectangle src of img so that its top-left corner lands
// on at. A zero src copies the whole image.
func Image(s platform.Surface, at graphics.Point, img image.Image, src graphics.Rect, clip graphics.Rect) {
	if img == nil {
		return
	}
	sr := img.Bounds()
	if !src.IsEmpty() {
		sr = src.Image().Add(sr.Min).Intersect(sr)
	}
	area := clip.Normalize(s.Size())
	if area.IsEmpty() || sr.Empty() {
		return
	}
	xdraw.Copy(clipped{Image: s, r: area.Image()}, image.Point{X: at.X, Y: at.Y}, img, sr, xdraw.Over, nil)
}

// Scale resizes img to size with bilinear filtering.
func Scale(img image.Image, size graphics.Size) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
