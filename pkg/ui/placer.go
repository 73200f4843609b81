package ui

import (
	"github.com/go-drift/canopy/pkg/errors"
	"github.com/go-drift/canopy/pkg/graphics"
)

// PlacerName is the registry name of the placer geometry manager.
const PlacerName = "placer"

// PlacerParams positions a widget relative to its parent's content
// rectangle. Absolute and relative terms add up:
//
//	x = parent.X + parent.W*RelX + X
//	width = parent.W*RelWidth + Width
//
// and likewise vertically. A computed width or height of 0 falls back to
// the widget's requested size. The anchor names the point of the widget
// that lands on (x, y).
type PlacerParams struct {
	Anchor    graphics.Anchor
	X         int
	Y         int
	Width     int
	Height    int
	RelX      float64
	RelY      float64
	RelWidth  float64
	RelHeight float64
}

// PlaceOptions updates a widget's placer parameters. Unset fields keep their
// current values; cleared fields return to the defaults (anchor north-west,
// everything else 0).
type PlaceOptions struct {
	Anchor    Attr[graphics.Anchor]
	X         Attr[int]
	Y         Attr[int]
	Width     Attr[int]
	Height    Attr[int]
	RelX      Attr[float64]
	RelY      Attr[float64]
	RelWidth  Attr[float64]
	RelHeight Attr[float64]
}

func (o PlaceOptions) apply(p *PlacerParams) {
	o.Anchor.apply(&p.Anchor, graphics.AnchorNorthWest)
	o.X.apply(&p.X, 0)
	o.Y.apply(&p.Y, 0)
	o.Width.apply(&p.Width, 0)
	o.Height.apply(&p.Height, 0)
	o.RelX.apply(&p.RelX, 0)
	o.RelY.apply(&p.RelY, 0)
	o.RelWidth.apply(&p.RelWidth, 0)
	o.RelHeight.apply(&p.RelHeight, 0)
}

func newPlacer() *GeometryManager {
	return &GeometryManager{
		Name: PlacerName,
		Run:  runPlacer,
	}
}

// Place hands w to the placer, updates its parameters from opts and computes
// its screen rectangle.
func (a *App) Place(w *Widget, opts PlaceOptions) {
	if w == nil || w.destroyed {
		a.report("ui.Place", errors.KindUsage, w, errors.ErrDestroyed)
		return
	}
	if w.parent == nil {
		a.report("ui.Place", errors.KindUsage, w, errors.ErrNoParent)
		return
	}
	placer := a.LookupManager(PlacerName)
	if placer == nil {
		a.report("ui.Place", errors.KindLookup, w, errors.ErrUnknownManager)
		return
	}
	a.Manage(w, placer, func() any {
		return &PlacerParams{Anchor: graphics.AnchorNorthWest}
	})
	params, ok := w.geom.Data.(*PlacerParams)
	if !ok {
		params = &PlacerParams{Anchor: graphics.AnchorNorthWest}
		w.geom.Data = params
	}
	opts.apply(params)
	a.RunGeometry(w)
}

// PlacerParamsOf returns the placer parameters of w, or nil when the placer
// does not manage it.
func PlacerParamsOf(w *Widget) *PlacerParams {
	if w.geom == nil || w.geom.Manager.Name != PlacerName {
		return nil
	}
	p, _ := w.geom.Data.(*PlacerParams)
	return p
}

func runPlacer(w *Widget) {
	p, ok := w.geom.Data.(*PlacerParams)
	if !ok || w.parent == nil {
		return
	}
	w.app.SetScreenRect(w, placeRect(p, w.parent.content, w.reqSize))
}

// placeRect computes the rectangle described by p inside parent.
func placeRect(p *PlacerParams, parent graphics.Rect, requested graphics.Size) graphics.Rect {
	x := int(float64(parent.W)*p.RelX + float64(p.X) + float64(parent.X))
	y := int(float64(parent.H)*p.RelY + float64(p.Y) + float64(parent.Y))

	width := int(float64(parent.W)*p.RelWidth + float64(p.Width))
	if width == 0 {
		width = requested.Width
	}
	height := int(float64(parent.H)*p.RelHeight + float64(p.Height))
	if height == 0 {
		height = requested.Height
	}

	size := graphics.Sz(width, height)
	return graphics.RectAt(graphics.Pt(x, y).Add(p.Anchor.Shift(size)), size)
}
