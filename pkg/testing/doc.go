// Package testing provides a headless tester for canopy applications.
//
// # Quick Start
//
// Create a tester, build some widgets, and drive them with pointer and key
// events:
//
//	func TestQuitButton(t *testing.T) {
//	    tester := canopytest.NewTester(t, graphics.Sz(200, 100))
//	    app := tester.App()
//
//	    btn := app.Create(ui.ButtonClassName, nil, nil, nil)
//	    app.ConfigureButton(btn, ui.ButtonConfig{
//	        FrameConfig: ui.FrameConfig{Text: ui.Set("Quit")},
//	        Callback:    ui.Set[ui.Callback](quit),
//	    })
//	    app.Place(btn, ui.PlaceOptions{X: ui.Set(10), Y: ui.Set(10)})
//	    tester.Flush()
//
//	    if err := tester.Tap(canopytest.ByText("Quit")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !app.Quitting() {
//	        t.Error("expected the app to quit")
//	    }
//	}
//
// Every gesture flushes pending damage, so the display and the pick surface
// reflect the event once the call returns.
//
// # Snapshot Testing
//
// Capture the widget tree and compare it with a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/dialog.snapshot.json")
//
// Update snapshots with:
//
//	CANOPY_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import canopytest "github.com/go-drift/canopy/pkg/testing"
package testing
