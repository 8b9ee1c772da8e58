package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// wrapped is the underlying error, nil for errors created with New.
	wrapped error
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	return AnnotatedError{
		msg:     msg,
		wrapped: nil,
		pc:      callerPC(),
		attrs:   attrs,
	}
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be detected
// with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with msg and attrs. The wrapped error can still be detected with errors.Is and errors.As.
//
// Returns nil if err is nil so that it's safe to use in return statements.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return AnnotatedError{
		msg:     msg,
		wrapped: err,
		pc:      callerPC(),
		attrs:   attrs,
	}
}

// callerPC returns the program counter of the function calling New or Wrap.
func callerPC() uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC, and New/Wrap.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see above
	return pcs[0]
}

// Error implements error interface.
func (err AnnotatedError) Error() string {
	if err.wrapped == nil {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.msg, err.wrapped.Error())
}

// Unwrap returns the wrapped error.
func (err AnnotatedError) Unwrap() error {
	return err.wrapped
}

// LogValue formats the error for useful logging.
func (err AnnotatedError) LogValue() slog.Value {
	// Retrieve the source location of the error so that developers can locate it faster.
	frames := runtime.CallersFrames([]uintptr{err.pc})
	source, _ := frames.Next()
	sourceAttr := slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line))

	attrs := append(
		[]slog.Attr{slog.String("msg", err.Error()), sourceAttr},
		collectAttrs(err)...,
	)

	return slog.GroupValue(attrs...)
}

// collectAttrs gathers the attributes of err and every AnnotatedError it wraps, outermost first.
func collectAttrs(err error) []slog.Attr {
	var attrs []slog.Attr
	for err != nil {
		var annotated AnnotatedError
		if !errors.As(err, &annotated) {
			break
		}
		attrs = append(attrs, annotated.attrs...)
		err = annotated.wrapped
	}
	return attrs
}

// SlogError returns a slog attribute with key "error" for use with LogAttrs.
func SlogError(err error) slog.Attr {
	var annotated AnnotatedError
	if errors.As(err, &annotated) && err.Error() == annotated.Error() {
		return slog.Any("error", annotated)
	}
	return slog.String("error", err.Error())
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
