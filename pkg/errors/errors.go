// Package errors provides structured error handling for the canopy toolkit.
//
// Nothing in the toolkit retries: an operation either succeeds, reports a
// diagnostic and has no effect, or (for clearly contradictory configuration)
// reports and aborts the process through Fatal.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindUsage indicates an invalid combination of call arguments.
	KindUsage
	// KindLookup indicates a registry miss (unknown class or manager name).
	KindLookup
	// KindRender indicates a drawing or surface failure.
	KindRender
	// KindConfig indicates an invalid configuration file or value.
	KindConfig
	// KindPlatform indicates a failure in the hardware layer.
	KindPlatform
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindLookup:
		return "lookup"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPlatform:
		return "platform"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by UIError.
var (
	ErrBothTargets    = stderrors.New("binding target must be a widget or a tag, not both")
	ErrNoTarget       = stderrors.New("binding target must be a widget or a tag")
	ErrTextAndImage   = stderrors.New("text and image cannot both be configured on one widget")
	ErrUnknownClass   = stderrors.New("unknown widget class")
	ErrUnknownManager = stderrors.New("unknown geometry manager")
	ErrCycle          = stderrors.New("widget tree contains a cycle")
	ErrDestroyed      = stderrors.New("widget has been destroyed")
	ErrWrongClass     = stderrors.New("widget class does not accept this configuration")
	ErrIncomplete     = stderrors.New("registration is missing a name or a required function")
	ErrNoRoot         = stderrors.New("application has no root widget")
	ErrNoParent       = stderrors.New("widget has no parent to be placed in")
)

// UIError represents a structured error in the toolkit.
type UIError struct {
	// Op is the operation that failed (e.g., "ui.Bind").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Widget describes the widget involved, if any (e.g., "button#12").
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the toolkit.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }
