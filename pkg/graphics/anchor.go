package graphics

import "fmt"

// Anchor names one of nine reference points of a rectangle.
type Anchor int

const (
	AnchorNone Anchor = iota
	AnchorCenter
	AnchorNorth
	AnchorNorthEast
	AnchorEast
	AnchorSouthEast
	AnchorSouth
	AnchorSouthWest
	AnchorWest
	AnchorNorthWest
)

var anchorNames = [...]string{
	AnchorNone:      "none",
	AnchorCenter:    "center",
	AnchorNorth:     "north",
	AnchorNorthEast: "north_east",
	AnchorEast:      "east",
	AnchorSouthEast: "south_east",
	AnchorSouth:     "south",
	AnchorSouthWest: "south_west",
	AnchorWest:      "west",
	AnchorNorthWest: "north_west",
}

func (a Anchor) String() string {
	if a >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// Shift returns the offset that moves a rectangle of size s so that its
// anchor point lands on the rectangle's original top-left corner.
// AnchorNone and AnchorNorthWest produce no shift.
func (a Anchor) Shift(s Size) Point {
	w, h := s.Width, s.Height
	switch a {
	case AnchorCenter:
		return Point{X: -w / 2, Y: -h / 2}
	case AnchorNorth:
		return Point{X: -w / 2}
	case AnchorNorthEast:
		return Point{X: -w}
	case AnchorEast:
		return Point{X: -w, Y: -h / 2}
	case AnchorSouthEast:
		return Point{X: -w, Y: -h}
	case AnchorSouth:
		return Point{X: -w / 2, Y: -h}
	case AnchorSouthWest:
		return Point{Y: -h}
	case AnchorWest:
		return Point{Y: -h / 2}
	default:
		return Point{}
	}
}

// Align positions an item of size item inside container so that the item's
// anchor point coincides with the container's. AnchorNone centers.
func (a Anchor) Align(container Rect, item Size) Point {
	dw, dh := container.W-item.Width, container.H-item.Height
	x, y := container.X, container.Y
	switch a {
	case AnchorNorth:
		x += dw / 2
	case AnchorNorthEast:
		x += dw
	case AnchorEast:
		x += dw
		y += dh / 2
	case AnchorSouthEast:
		x += dw
		y += dh
	case AnchorSouth:
		x += dw / 2
		y += dh
	case AnchorSouthWest:
		y += dh
	case AnchorWest:
		y += dh / 2
	case AnchorNorthWest:
	default:
		x += dw / 2
		y += dh / 2
	}
	return Point{X: x, Y: y}
}

// Relief is the 3D appearance of a widget border.
type Relief int

const (
	ReliefNone Relief = iota
	ReliefRaised
	ReliefSunken
)

func (r Relief) String() string {
	switch r {
	case ReliefNone:
		return "none"
	case ReliefRaised:
		return "raised"
	case ReliefSunken:
		return "sunken"
	default:
		return fmt.Sprintf("Relief(%d)", int(r))
	}
}

// Axis selects the directions along which a toplevel may be resized.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisBoth
)

// HasX reports whether the x axis is included.
func (a Axis) HasX() bool { return a == AxisX || a == AxisBoth }

// HasY reports whether the y axis is included.
func (a Axis) HasY() bool { return a == AxisY || a == AxisBoth }

func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "none"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisBoth:
		return "both"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}
