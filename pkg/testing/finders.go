package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/canopy/pkg/graphics"
	"github.com/go-drift/canopy/pkg/ui"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root *ui.Widget) []*ui.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []*ui.Widget
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *ui.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *ui.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *ui.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*ui.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// ScreenRect returns the screen rectangle of the first match. Panics if no
// matches.
func (r FinderResult) ScreenRect() graphics.Rect {
	return r.First().ScreenRect()
}

// --- Concrete finders ---

type classFinder struct {
	name string
}

func (f *classFinder) Evaluate(root *ui.Widget) []*ui.Widget {
	return collectMatches(root, func(w *ui.Widget) bool {
		return w.ClassName() == f.name
	})
}

func (f *classFinder) Description() string {
	return fmt.Sprintf("ByClass(%q)", f.name)
}

// ByClass returns a finder that matches widgets of the named class.
func ByClass(name string) Finder {
	return &classFinder{name: name}
}

type idFinder struct {
	id ui.WidgetID
}

func (f *idFinder) Evaluate(root *ui.Widget) []*ui.Widget {
	return collectMatches(root, func(w *ui.Widget) bool {
		return w.ID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%d)", f.id)
}

// ByID returns a finder that matches the widget with the given id.
func ByID(id ui.WidgetID) Finder {
	return &idFinder{id: id}
}

type textFinder struct {
	text     string
	contains bool
}

func (f *textFinder) Evaluate(root *ui.Widget) []*ui.Widget {
	return collectMatches(root, func(w *ui.Widget) bool {
		text, ok := TextOf(w)
		if !ok {
			return false
		}
		if f.contains {
			return strings.Contains(text, f.text)
		}
		return text == f.text
	})
}

func (f *textFinder) Description() string {
	if f.contains {
		return fmt.Sprintf("ByTextContaining(%q)", f.text)
	}
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches frames and buttons showing exactly
// text, and toplevels titled text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// ByTextContaining returns a finder like ByText that matches substrings.
func ByTextContaining(substring string) Finder {
	return &textFinder{text: substring, contains: true}
}

// TextOf returns the text a built-in widget shows: a frame or button label,
// or a toplevel title.
func TextOf(w *ui.Widget) (string, bool) {
	switch st := w.State().(type) {
	case *ui.FrameState:
		return st.Text, true
	case *ui.ButtonState:
		return st.Text, true
	case *ui.ToplevelState:
		return st.Title, true
	}
	return "", false
}

type predicateFinder struct {
	fn   func(*ui.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *ui.Widget) []*ui.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(*ui.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds widgets matching 'matching' below widgets matching
// 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *ui.Widget) []*ui.Widget {
	var results []*ui.Widget
	seen := make(map[*ui.Widget]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying matching that
// have an ancestor satisfying of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root *ui.Widget, match func(*ui.Widget) bool) []*ui.Widget {
	var results []*ui.Widget
	root.Walk(func(w *ui.Widget) bool {
		if match(w) {
			results = append(results, w)
		}
		return true
	})
	return results
}
