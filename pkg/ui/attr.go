package ui

// Attr is an optional configuration value. The zero Attr leaves the attribute
// unchanged; Set supplies a new value and Clear resets it to the class
// default.
type Attr[T any] struct {
	value T
	state attrState
}

type attrState uint8

const (
	attrUnset attrState = iota
	attrSet
	attrCleared
)

// Set returns an Attr carrying v.
func Set[T any](v T) Attr[T] {
	return Attr[T]{value: v, state: attrSet}
}

// Clear returns an Attr that resets the attribute to its default.
func Clear[T any]() Attr[T] {
	return Attr[T]{state: attrCleared}
}

// IsSet reports whether a value was supplied.
func (a Attr[T]) IsSet() bool { return a.state == attrSet }

// IsCleared reports whether the attribute is being reset.
func (a Attr[T]) IsCleared() bool { return a.state == attrCleared }

// Changed reports whether the attribute is either set or cleared.
func (a Attr[T]) Changed() bool { return a.state != attrUnset }

// Value returns the supplied value and whether one was supplied.
func (a Attr[T]) Value() (T, bool) {
	return a.value, a.state == attrSet
}

// apply writes the attribute into dst, using def when the attribute is
// cleared, and reports whether dst was touched.
func (a Attr[T]) apply(dst *T, def T) bool {
	switch a.state {
	case attrSet:
		*dst = a.value
	case attrCleared:
		*dst = def
	default:
		return false
	}
	return true
}
