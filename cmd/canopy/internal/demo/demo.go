// Package demo builds the sample window shown by the canopy CLI.
package demo

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/ui"
)

// SwatchSize is the size of the generated gradient image.
const SwatchSize = 64

// Demo holds the widgets of the sample window.
type Demo struct {
	Window *ui.Widget
	Label  *ui.Widget
	Count  *ui.Widget
	Quit   *ui.Widget
	Swatch *ui.Widget

	clicks int
}

// Build creates the sample window under app's root: a counter label, a
// button that increments it, an image swatch and a quit button. Escape also
// quits.
func Build(app *ui.App) *Demo {
	d := &Demo{}

	d.Window = app.Create(ui.ToplevelClassName, nil, d, nil)
	app.ConfigureToplevel(d.Window, ui.ToplevelConfig{Title: ui.Set(app.Config().Title)})
	app.Place(d.Window, ui.PlaceOptions{X: ui.Set(20), Y: ui.Set(20)})

	d.Label = app.Create(ui.FrameClassName, d.Window, nil, nil)
	app.ConfigureFrame(d.Label, ui.FrameConfig{Text: ui.Set(d.labelText())})
	app.Place(d.Label, ui.PlaceOptions{X: ui.Set(10), Y: ui.Set(10)})

	d.Count = app.Create(ui.ButtonClassName, d.Window, nil, nil)
	app.ConfigureButton(d.Count, ui.ButtonConfig{
		FrameConfig: ui.FrameConfig{Text: ui.Set("Click me")},
		Callback:    ui.Set[ui.Callback](d.increment),
	})
	app.Place(d.Count, ui.PlaceOptions{X: ui.Set(10), Y: ui.Set(40), Width: ui.Set(120), Height: ui.Set(30)})

	d.Swatch = app.Create(ui.FrameClassName, d.Window, nil, nil)
	app.ConfigureFrame(d.Swatch, ui.FrameConfig{
		BorderWidth: ui.Set(2),
		Relief:      ui.Set(graphics.ReliefSunken),
		Image:       ui.Set[image.Image](Gradient(SwatchSize)),
	})
	app.Place(d.Swatch, ui.PlaceOptions{
		Anchor: ui.Set(graphics.AnchorNorthEast),
		RelX:   ui.Set(1.0),
		X:      ui.Set(-10),
		Y:      ui.Set(10),
	})

	d.Quit = app.Create(ui.ButtonClassName, d.Window, nil, nil)
	app.ConfigureButton(d.Quit, ui.ButtonConfig{
		FrameConfig: ui.FrameConfig{Text: ui.Set("Quit")},
		Callback: ui.Set[ui.Callback](func(*ui.Widget, platform.Event, any) bool {
			app.Quit()
			return true
		}),
	})
	app.Place(d.Quit, ui.PlaceOptions{
		Anchor: ui.Set(graphics.AnchorSouthEast),
		RelX:   ui.Set(1.0),
		RelY:   ui.Set(1.0),
		X:      ui.Set(-30),
		Y:      ui.Set(-10),
		Width:  ui.Set(80),
		Height: ui.Set(30),
	})

	app.Bind(platform.EventKeyDown, nil, ui.TagAll, func(_ *ui.Widget, ev platform.Event, _ any) bool {
		if ev.Key != platform.KeyEscape {
			return false
		}
		app.Quit()
		return true
	}, nil)

	return d
}

// Clicks returns how often the counter button fired.
func (d *Demo) Clicks() int { return d.clicks }

func (d *Demo) labelText() string {
	return fmt.Sprintf("Clicked %d times", d.clicks)
}

func (d *Demo) increment(w *ui.Widget, _ platform.Event, _ any) bool {
	d.clicks++
	w.App().ConfigureFrame(d.Label, ui.FrameConfig{Text: ui.Set(d.labelText())})
	return true
}

// Gradient returns a size x size image blending red to blue horizontally and
// adding green vertically.
func Gradient(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * (size - 1 - x) / (size - 1)),
				G: uint8(255 * y / (size - 1)),
				B: uint8(255 * x / (size - 1)),
				A: 0xFF,
			})
		}
	}
	return img
}
