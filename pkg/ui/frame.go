package ui

import (
	"image"

	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/paint"
	"github.com/go-drift/canopy/pkg/platform"
)

// FrameClassName is the registry name of the frame class.
const FrameClassName = "frame"

// FrameState is the attribute block of frames. Buttons embed it.
type FrameState struct {
	Color        graphics.Color
	BorderWidth  int
	Relief       graphics.Relief
	CornerRadius int

	// At most one of Text and Image is set.
	Text       string
	Font       platform.Font
	TextColor  graphics.Color
	TextAnchor graphics.Anchor

	Image       image.Image
	ImageRect   graphics.Rect
	ImageAnchor graphics.Anchor
}

// FrameConfig changes frame attributes. Unset fields keep their value.
// Setting Text and Image in one call is a fatal usage error.
type FrameConfig struct {
	Size        Attr[graphics.Size]
	Color       Attr[graphics.Color]
	BorderWidth Attr[int]
	Relief      Attr[graphics.Relief]
	Text        Attr[string]
	Font        Attr[platform.Font]
	TextColor   Attr[graphics.Color]
	TextAnchor  Attr[graphics.Anchor]
	Image       Attr[image.Image]
	ImageRect   Attr[graphics.Rect]
	ImageAnchor Attr[graphics.Anchor]
}

func newFrameClass() *Class {
	return &Class{
		Name:        FrameClassName,
		Alloc:       func() any { return &FrameState{} },
		SetDefaults: func(w *Widget) { *w.state.(*FrameState) = frameDefaults(w.app) },
		Draw: func(w *Widget, dc *DrawContext) {
			st := w.state.(*FrameState)
			drawBox(w, dc, st, st.Relief, 0, dc.Clip)
		},
		GeomNotify: func(w *Widget) { boxContent(w, w.state.(*FrameState)) },
	}
}

func frameDefaults(a *App) FrameState {
	return FrameState{
		Color:       a.config.Background,
		Relief:      graphics.ReliefNone,
		Font:        platform.DefaultFont,
		TextColor:   a.config.TextColor,
		TextAnchor:  graphics.AnchorCenter,
		ImageAnchor: graphics.AnchorCenter,
	}
}

// ConfigureFrame applies cfg to a frame. The widget is re-laid out and
// redrawn.
func (a *App) ConfigureFrame(w *Widget, cfg FrameConfig) {
	const op = "ui.ConfigureFrame"
	if !a.configurable(op, w) {
		return
	}
	st, ok := w.state.(*FrameState)
	if !ok {
		a.report(op, errors.KindUsage, w, errors.ErrWrongClass)
		return
	}
	if !cfg.applyTo(a, op, w, st, frameDefaults(a)) {
		return
	}
	a.reconfigured(w)
}

func (a *App) configurable(op string, w *Widget) bool {
	if w == nil || w.destroyed {
		a.report(op, errors.KindUsage, w, errors.ErrDestroyed)
		return false
	}
	return true
}

// reconfigured re-runs geometry after an attribute change. The widget is
// notified, and so damaged, even when its rectangle stays the same.
func (a *App) reconfigured(w *Widget) {
	if w == a.root {
		a.notifyGeometry(w)
		return
	}
	a.relayout(w)
}

// applyTo writes cfg into st and updates the requested size: an explicit
// size wins, then the measured text, then the image, each padded by the
// border; otherwise the requested size is kept.
func (cfg FrameConfig) applyTo(a *App, op string, w *Widget, st *FrameState, def FrameState) bool {
	if cfg.Text.IsSet() && cfg.Image.IsSet() {
		a.fatal(op, w, errors.ErrTextAndImage)
		return false
	}

	cfg.Color.apply(&st.Color, def.Color)
	cfg.BorderWidth.apply(&st.BorderWidth, def.BorderWidth)
	cfg.Relief.apply(&st.Relief, def.Relief)
	cfg.Font.apply(&st.Font, def.Font)
	cfg.TextColor.apply(&st.TextColor, def.TextColor)
	cfg.TextAnchor.apply(&st.TextAnchor, def.TextAnchor)
	cfg.ImageRect.apply(&st.ImageRect, def.ImageRect)
	cfg.ImageAnchor.apply(&st.ImageAnchor, def.ImageAnchor)
	if cfg.Text.apply(&st.Text, def.Text) && st.Text != "" {
		st.Image = nil
		st.ImageRect = graphics.Rect{}
	}
	if cfg.Image.apply(&st.Image, def.Image) && st.Image != nil {
		st.Text = ""
	}
	if st.Font == nil {
		st.Font = platform.DefaultFont
	}
	st.BorderWidth = max(0, st.BorderWidth)

	pad := graphics.Sz(2*st.BorderWidth, 2*st.BorderWidth)
	switch size, explicit := cfg.Size.Value(); {
	case explicit:
		w.reqSize = size
	case st.Text != "" && (cfg.Text.IsSet() || cfg.Font.IsSet() || cfg.BorderWidth.Changed() || cfg.Size.IsCleared()):
		m := platform.MeasureText(st.Text, st.Font)
		w.reqSize = graphics.Sz(m.Width+pad.Width, m.Height+pad.Height)
	case st.Image != nil && (cfg.Image.IsSet() || cfg.ImageRect.Changed() || cfg.BorderWidth.Changed() || cfg.Size.IsCleared()):
		m := st.imageSize()
		w.reqSize = graphics.Sz(m.Width+pad.Width, m.Height+pad.Height)
	}
	return true
}

func (st *FrameState) imageSize() graphics.Size {
	if !st.ImageRect.IsEmpty() {
		return st.ImageRect.Size()
	}
	return platform.ImageSize(st.Image)
}

// boxContent sets the content rectangle to the screen rectangle minus the
// border.
func boxContent(w *Widget, st *FrameState) {
	b := st.BorderWidth
	w.content = w.screen.Inset(b, b, b, b)
}

// drawBox paints a frame or button: the bordered background, the pick
// silhouette, then the text or image. Content is shifted by offset pixels
// on both axes. borderClip bounds everything; content is further clipped to
// the content rectangle.
func drawBox(w *Widget, dc *DrawContext, st *FrameState, relief graphics.Relief, offset int, borderClip graphics.Rect) {
	inner := borderClip.Intersect(w.content)
	paint.Frame(dc.Surface, w.screen, w.content, st.CornerRadius, st.BorderWidth, st.Color, relief, borderClip, inner)
	if dc.Pick != nil {
		paint.FillRounded(dc.Pick, w.screen, st.CornerRadius, w.pick, borderClip)
	}

	shift := graphics.Pt(offset, offset)
	switch {
	case st.Text != "":
		size := platform.MeasureText(st.Text, st.Font)
		at := st.TextAnchor.Align(w.content, size).Add(shift)
		paint.Text(dc.Surface, at, st.Text, st.Font, st.TextColor, inner)
	case st.Image != nil:
		at := st.ImageAnchor.Align(w.content, st.imageSize()).Add(shift)
		paint.Image(dc.Surface, at, st.Image, st.ImageRect, inner)
	}
}
