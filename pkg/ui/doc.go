// Package ui is the core of the canopy toolkit: a retained-mode widget tree
// with a class registry, pluggable geometry managers, color-keyed picking,
// event bindings and damage-driven redraw.
//
// An App owns everything. It is created over a platform.Display and an
// event source, registers the built-in "frame", "button" and "toplevel"
// classes and the "placer" geometry manager, and creates the root frame
// covering the whole display.
//
//	app, err := ui.New(ui.Options{Display: display, Source: source})
//	if err != nil {
//		return err
//	}
//	btn := app.Create("button", app.Root(), nil, nil)
//	app.ConfigureButton(btn, ui.ButtonConfig{
//		FrameConfig: ui.FrameConfig{Text: ui.Set("Quit")},
//		Callback:    ui.Set[ui.Callback](func(*ui.Widget, platform.Event, any) bool { app.Quit(); return true }),
//	})
//	app.Place(btn, ui.PlaceOptions{X: ui.Set(20), Y: ui.Set(20)})
//	return app.Run()
//
// Everything runs on the goroutine that calls Run. Widgets are drawn in tree
// order, parents before children and siblings in child-list order, so later
// siblings appear on top. Every widget is also painted into an offscreen pick
// surface in a color derived from its id, which lets Pick answer "which widget
// is under this pixel" exactly.
package ui
