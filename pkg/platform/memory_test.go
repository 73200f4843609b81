package platform

import (
	"image/color"
	"testing"

	"github.com/go-drift/canopy/pkg/graphics"
)

func TestMemory_ChannelOrders(t *testing.T) {
	tests := []struct {
		order      ChannelOrder
		want       [4]byte
		r, g, b, a int
	}{
		{OrderRGBA, [4]byte{0x10, 0x20, 0x30, 0xFF}, 0, 1, 2, 3},
		{OrderBGRA, [4]byte{0x30, 0x20, 0x10, 0xFF}, 2, 1, 0, 3},
		{OrderBGRX, [4]byte{0x30, 0x20, 0x10, 0x00}, 2, 1, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			m := NewMemory(graphics.Sz(4, 4), tt.order)
			m.Set(1, 2, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF})

			off := PixelOffset(m, 1, 2)
			var got [4]byte
			copy(got[:], m.Buffer()[off:off+4])
			if got != tt.want {
				t.Errorf("expected bytes %v, got %v", tt.want, got)
			}
			r, g, b, a := m.ChannelIndices()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("expected indices %d %d %d %d, got %d %d %d %d", tt.r, tt.g, tt.b, tt.a, r, g, b, a)
			}
			if px := m.NRGBAAt(1, 2); px != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}) {
				t.Errorf("expected read-back of written color, got %v", px)
			}
		})
	}
}

func TestMemory_OutOfBoundsIgnored(t *testing.T) {
	m := NewMemory(graphics.Sz(2, 2), OrderRGBA)
	m.Set(-1, 0, color.White)
	m.Set(2, 0, color.White)
	for _, b := range m.Buffer() {
		if b != 0 {
			t.Fatal("expected out-of-bounds writes to be dropped")
		}
	}
	if got := m.NRGBAAt(5, 5); got != (color.NRGBA{}) {
		t.Errorf("expected zero color out of bounds, got %v", got)
	}
}

func TestMemory_Snapshot(t *testing.T) {
	m := NewMemory(graphics.Sz(3, 1), OrderBGRX)
	m.Set(2, 0, graphics.ColorRed)
	img := m.Snapshot()
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("expected opaque red, got %v", got)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0xFF {
		t.Errorf("expected opaque surface to snapshot with alpha 0xFF, got %v", got)
	}
}

func TestHeadless_RecordsFlushes(t *testing.T) {
	h := NewHeadless(graphics.Sz(10, 10), OrderRGBA)
	rects := []graphics.Rect{graphics.RectXYWH(0, 0, 5, 5)}
	if err := h.Flush(rects); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rects[0].W = 99
	if got := h.LastFlush(); len(got) != 1 || got[0].W != 5 {
		t.Errorf("expected recorded copy of flushed rects, got %v", got)
	}
	h.Close()
	if err := h.Flush(nil); err != ErrClosed {
		t.Errorf("expected ErrClosed after Close, got %v", err)
	}
}
