// Package errors provides structured error handling for the loom framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInit indicates an initialization error.
	KindInit
	// KindText indicates a text layout or font error.
	KindText
	// KindRender indicates a rendering error.
	KindRender
	// KindContract indicates a violated usage contract, such as a layout
	// size outside its constraints.
	KindContract
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindText:
		return "text"
	case KindRender:
		return "render"
	case KindContract:
		return "contract"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the loom framework.
type Error struct {
	// Op is the operation that failed (e.g., "rendering.NewTextLayout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Run").
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

// PassError represents a failure during a build pass.
type PassError struct {
	// Node is the debug name of the render object being declared, if known.
	Node string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PassError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic while building %s: %v", e.Node, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error while building %s: %v", e.Node, e.Err)
	}
	return fmt.Sprintf("unknown error while building %s", e.Node)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the loom framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandlePassError is called when a build pass fails.
	HandlePassError(err *PassError)
}
