// construct.go — construction entry points & kind resolution for xgx-anyerr.
//
// Three mutually exclusive construction kinds, selected by the shape of the
// input with an ordered type switch, most specific first:
//
//	1. *Error         → passthrough (already a container; nothing to do)
//	2. error          → convertible: the error itself becomes the payload,
//	                    inheriting its Unwrap chain and any trace it carries
//	3. anything else  → ad-hoc: a printable value behind messageError
//
// The ordering IS the tie-break: a concrete error type is always taken as
// convertible even though it would also satisfy the ad-hoc shape.
//
// Trace policy: every path captures a trace at construction when capture is
// enabled and the input does not already supply one (Tracer). Capture is a
// cheap no-op otherwise.
package anyerr

import "fmt"

// New builds a container from an arbitrary failure value, resolving the
// construction kind by shape. New(nil) returns nil.
func New(value any) *Error {
	switch v := value.(type) {
	case nil:
		return nil
	case *Error:
		return v
	case error:
		return from(v, 1)
	default:
		return message(value, 1)
	}
}

// From builds a container from an existing error, inheriting its causal
// chain and trace. From(nil) returns nil; From on a container is a no-op
// passthrough.
func From(err error) *Error {
	return from(err, 1)
}

// Message builds an ad-hoc container from any printable value, forcing the
// ad-hoc kind even for values that are themselves errors. The result has no
// cause.
func Message(value any) *Error {
	return message(value, 1)
}

// Errorf builds a container from a formatted message. The %w verb works as
// in fmt.Errorf: the wrapped error stays reachable via errors.Is/As and the
// causal chain, and a trace it carries is inherited.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{err: err, trace: traceOrCapture(err, 1)}
}

func from(err error, skip int) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return &Error{err: err, trace: traceOrCapture(err, skip+1)}
}

func message(value any, skip int) *Error {
	return &Error{
		err:   &messageError{msg: value},
		trace: captureTrace(skip + 1),
	}
}
