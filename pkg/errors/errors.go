// Package errors provides structured error reporting for pull-to-refresh
// containers and their hosts.
//
// Nothing in the container returns errors from its event handlers: integration
// mistakes are reported to a process-wide [ErrorHandler] and the container
// stays inert. Hosts install their own handler with [SetHandler].
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a wiring mistake such as a missing child view.
	KindConfig
	// KindThread indicates a call from a goroutine other than the owner's.
	KindThread
	// KindCallback indicates a failing refresh listener.
	KindCallback
	// KindGesture indicates a malformed pointer stream.
	KindGesture
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindThread:
		return "thread"
	case KindCallback:
		return "callback"
	case KindGesture:
		return "gesture"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingContent is reported when a container is measured or laid
	// out without a content child.
	ErrMissingContent = errors.New("there should be one view wrapped in the refresh container at least")
	// ErrWrongGoroutine is reported when a container is used off its
	// owning goroutine.
	ErrWrongGoroutine = errors.New("refresh container used from a goroutine other than its owner")
)

// RefreshError is a structured error reported by a refresh container.
type RefreshError struct {
	// Op is the operation that failed (e.g., "refresh.Container.Measure").
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

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RefreshError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "refresh.Container.onRefresh").
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

// ErrorHandler receives errors reported by refresh containers.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RefreshError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target. It forwards
// to the standard library so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}
