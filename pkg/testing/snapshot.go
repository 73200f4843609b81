package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/platform"
	"github.com/go-drift/canopy/pkg/ui"
)

// Snapshot captures the widget tree with geometry and visible attributes.
type Snapshot struct {
	Size [2]int      `json:"size"`
	Tree *WidgetNode `json:"tree,omitempty"`
}

// WidgetNode is one widget in a serialized tree.
type WidgetNode struct {
	ID         string         `json:"id"`
	Class      string         `json:"class"`
	Screen     *[4]int        `json:"screen,omitempty"`
	Content    *[4]int        `json:"content,omitempty"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*WidgetNode  `json:"children,omitempty"`
}

// CaptureSnapshot serializes the current widget tree. Unmanaged widgets have
// no rectangles; the content rectangle is only recorded when it differs from
// the screen rectangle.
func (t *Tester) CaptureSnapshot() *Snapshot {
	size := t.display.Size()
	snap := &Snapshot{Size: [2]int{size.Width, size.Height}}
	if root := t.app.Root(); root != nil {
		snap.Tree = captureWidget(root, true)
	}
	return snap
}

// Image copies the display into an image.
func (t *Tester) Image() *image.NRGBA {
	return t.display.Snapshot()
}

// PickImage copies the pick surface into an image.
func (t *Tester) PickImage() *image.NRGBA {
	return t.app.PickSurface().(*platform.Memory).Snapshot()
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When CANOPY_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("CANOPY_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: CANOPY_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: CANOPY_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns the
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

func captureWidget(w *ui.Widget, root bool) *WidgetNode {
	node := &WidgetNode{
		ID:    w.String(),
		Class: w.ClassName(),
	}
	if root || w.IsManaged() {
		screen := rectArray(w.ScreenRect())
		node.Screen = &screen
		if content := w.ContentRect(); content != w.ScreenRect() {
			c := rectArray(content)
			node.Content = &c
		}
	}
	if props := captureProperties(w); len(props) > 0 {
		node.Properties = props
	}
	for _, c := range w.Children() {
		node.Children = append(node.Children, captureWidget(c, false))
	}
	return node
}

func rectArray(r graphics.Rect) [4]int {
	return [4]int{r.X, r.Y, r.W, r.H}
}

func captureProperties(w *ui.Widget) map[string]any {
	props := make(map[string]any)
	frame := func(st *ui.FrameState) {
		props["color"] = st.Color.String()
		props["relief"] = st.Relief.String()
		if st.BorderWidth != 0 {
			props["borderWidth"] = st.BorderWidth
		}
		if st.CornerRadius != 0 {
			props["radius"] = st.CornerRadius
		}
		if st.Text != "" {
			props["text"] = st.Text
		}
		if st.Image != nil {
			s := st.ImageRect.Size()
			props["image"] = fmt.Sprintf("%dx%d", s.Width, s.Height)
		}
	}
	switch st := w.State().(type) {
	case *ui.FrameState:
		frame(st)
	case *ui.ButtonState:
		frame(&st.FrameState)
		if st.NoClip {
			props["noClip"] = true
		}
	case *ui.ToplevelState:
		props["title"] = st.Title
		props["color"] = st.Color.String()
		props["closable"] = st.Closable
		props["resizable"] = st.Resizable.String()
	}
	return props
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
