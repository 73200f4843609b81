package platform

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/canopy/pkg/graphics"
)

// Font is the face used to measure and draw widget text.
type Font = font.Face

// DefaultFont is used when a widget has no font configured.
var DefaultFont Font = basicfont.Face7x13

// MeasureText returns the pixel extent of a single line of text.
func MeasureText(text string, face Font) graphics.Size {
	if face == nil {
		face = DefaultFont
	}
	m := face.Metrics()
	return graphics.Size{
		Width:  font.MeasureString(face, text).Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
	}
}

// ImageSize returns the dimensions of img, or zero for nil.
func ImageSize(img image.Image) graphics.Size {
	if img == nil {
		return graphics.Size{}
	}
	return graphics.RectFromImage(img.Bounds()).Size()
}
