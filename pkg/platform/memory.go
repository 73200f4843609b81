package platform

import (
	"image"
	"image/color"
	"sync"

	"github.com/go-drift/canopy/pkg/graphics"
)

// ChannelOrder describes how the four bytes of a pixel are laid out.
type ChannelOrder int

const (
	// OrderRGBA stores red, green, blue, alpha.
	OrderRGBA ChannelOrder = iota
	// OrderBGRA stores blue, green, red, alpha (common for native windows).
	OrderBGRA
	// OrderBGRX stores blue, green, red and an unused byte; the surface is opaque.
	OrderBGRX
)

func (o ChannelOrder) indices() (r, g, b, a int) {
	switch o {
	case OrderBGRA:
		return 2, 1, 0, 3
	case OrderBGRX:
		return 2, 1, 0, -1
	default:
		return 0, 1, 2, 3
	}
}

func (o ChannelOrder) String() string {
	switch o {
	case OrderBGRA:
		return "bgra"
	case OrderBGRX:
		return "bgrx"
	default:
		return "rgba"
	}
}

// Memory is an in-memory Surface. At and Set do not lock; callers hold the
// lock around pixel writes as with any Surface.
type Memory struct {
	mu    sync.Mutex
	size  graphics.Size
	order ChannelOrder
	pix   []byte
}

// NewMemory allocates a zeroed surface of the given size and channel order.
func NewMemory(size graphics.Size, order ChannelOrder) *Memory {
	w, h := max(size.Width, 0), max(size.Height, 0)
	return &Memory{
		size:  graphics.Sz(w, h),
		order: order,
		pix:   make([]byte, w*h*4),
	}
}

// WrapMemory returns a surface over an existing tightly packed pixel slice,
// such as the Pix of an *image.RGBA. It returns nil when pix is too short.
func WrapMemory(pix []byte, size graphics.Size, order ChannelOrder) *Memory {
	if size.Width < 0 || size.Height < 0 || len(pix) < size.Width*size.Height*4 {
		return nil
	}
	return &Memory{size: size, order: order, pix: pix}
}

func (m *Memory) Size() graphics.Size { return m.size }
func (m *Memory) Lock()               { m.mu.Lock() }
func (m *Memory) Unlock()             { m.mu.Unlock() }
func (m *Memory) Buffer() []byte      { return m.pix }
func (m *Memory) Stride() int         { return m.size.Width * 4 }

// Order returns the surface's channel order.
func (m *Memory) Order() ChannelOrder { return m.order }

func (m *Memory) ChannelIndices() (r, g, b, a int) {
	return m.order.indices()
}

// ColorModel implements image.Image.
func (m *Memory) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Memory) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.size.Width, m.size.Height)
}

// At implements image.Image.
func (m *Memory) At(x, y int) color.Color {
	return m.NRGBAAt(x, y)
}

// NRGBAAt returns the pixel at (x, y) as a straight-alpha color.
// Out-of-bounds reads return the zero color.
func (m *Memory) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	ri, gi, bi, ai := m.order.indices()
	p := m.pix[PixelOffset(m, x, y):]
	c := color.NRGBA{R: p[ri], G: p[gi], B: p[bi], A: 0xFF}
	if ai >= 0 {
		c.A = p[ai]
	}
	return c
}

// Set implements draw.Image.
func (m *Memory) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	ri, gi, bi, ai := m.order.indices()
	p := m.pix[PixelOffset(m, x, y):]
	p[ri], p[gi], p[bi] = n.R, n.G, n.B
	if ai >= 0 {
		p[ai] = n.A
	}
}

// Snapshot copies the surface into a new NRGBA image.
func (m *Memory) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(m.Bounds())
	for y := 0; y < m.size.Height; y++ {
		for x := 0; x < m.size.Width; x++ {
			img.SetNRGBA(x, y, m.NRGBAAt(x, y))
		}
	}
	return img
}
