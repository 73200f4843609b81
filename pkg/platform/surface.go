// Package platform defines the hardware layer the toolkit core draws into and
// reads events from, plus in-memory providers for tests and headless rendering.
package platform

import (
	"image/draw"

	"github.com/go-drift/canopy/pkg/graphics"
)

// Surface is a lockable pixel buffer. Every pixel write happens between Lock
// and Unlock. The surface is also a draw.Image so text and images can be
// composited onto it with the standard image packages.
type Surface interface {
	draw.Image

	// Size returns the surface dimensions in pixels.
	Size() graphics.Size

	// Lock acquires exclusive access to the pixel buffer.
	Lock()

	// Unlock releases the pixel buffer.
	Unlock()

	// Buffer returns the raw pixel bytes, four per pixel, row-major.
	Buffer() []byte

	// Stride returns the number of bytes per row.
	Stride() int

	// ChannelIndices returns the byte offsets of red, green, blue and alpha
	// within a pixel. Alpha is -1 when the surface stores no alpha channel.
	ChannelIndices() (r, g, b, a int)
}

// Display is the visible surface. Flush presents the given damaged
// rectangles to the screen.
type Display interface {
	Surface
	Flush(rects []graphics.Rect) error
}

// PixelOffset returns the byte offset of (x, y) within s's buffer.
func PixelOffset(s Surface, x, y int) int {
	return y*s.Stride() + x*4
}
