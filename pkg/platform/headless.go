package platform

import (
	"slices"

	"github.com/go-drift/canopy/pkg/graphics"
)

// Headless is an in-memory Display that records what was flushed.
type Headless struct {
	*Memory

	flushes [][]graphics.Rect
	closed  bool
}

// NewHeadless returns a display backed by a Memory surface.
func NewHeadless(size graphics.Size, order ChannelOrder) *Headless {
	return &Headless{Memory: NewMemory(size, order)}
}

// Flush records the presented rectangles.
func (h *Headless) Flush(rects []graphics.Rect) error {
	if h.closed {
		return ErrClosed
	}
	h.flushes = append(h.flushes, slices.Clone(rects))
	return nil
}

// Close makes further flushes fail with ErrClosed.
func (h *Headless) Close() error {
	h.closed = true
	return nil
}

// Flushes returns every batch of rectangles flushed so far.
func (h *Headless) Flushes() [][]graphics.Rect {
	return h.flushes
}

// LastFlush returns the most recent batch, or nil.
func (h *Headless) LastFlush() []graphics.Rect {
	if len(h.flushes) == 0 {
		return nil
	}
	return h.flushes[len(h.flushes)-1]
}

// ResetFlushes forgets recorded batches.
func (h *Headless) ResetFlushes() {
	h.flushes = nil
}
