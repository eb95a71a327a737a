// context.go — the context-wrapping combinators.
//
// Purpose
//   - Attach a human-readable annotation to ANY error value. The annotation
//     becomes the new head message; the prior failure becomes the cause.
//   - Preserve an already-captured trace across wrapping instead of
//     capturing a second one.
//
// Absent-value semantics
//   - Wrap(nil, msg) synthesizes a brand-new cause-less container: there is
//     no underlying failure to preserve, only the annotation. This mirrors
//     turning "no value present" into a reportable error at a boundary.
//   - WrapWith(nil, fn) is the success path: it returns nil WITHOUT running
//     fn. Use it when building the annotation costs something.
package anyerr

import "fmt"

// Wrap returns a new container whose message is msg and whose cause is err.
// If err already carries a captured trace it is preserved; otherwise one is
// captured now. Wrap(nil, msg) creates a fresh container with no cause.
func Wrap(err error, msg any) *Error {
	return wrap(err, msg, 1)
}

// Wrapf is Wrap with a fmt format string for the annotation.
func Wrapf(err error, format string, args ...any) *Error {
	return wrapf(err, 1, format, args...)
}

// WrapWith is the lazy variant of Wrap: fn is evaluated only when err is a
// failure. On the success path (err == nil) it returns nil and fn never
// runs.
func WrapWith(err error, fn func() any) *Error {
	if normalize(err) == nil {
		return nil
	}
	return wrap(err, fn(), 1)
}

func wrap(err error, msg any, skip int) *Error {
	if err = normalize(err); err == nil {
		return message(msg, skip+1)
	}
	return &Error{
		err:   &contextError{msg: msg, err: err},
		trace: traceOrCapture(err, skip+1),
	}
}

// normalize flattens a typed-nil *Error — what From(nil) yields when held in
// a concrete variable — into a clean nil interface, so the absent-value path
// catches it instead of a shell being built around nothing.
func normalize(err error) error {
	if ae, ok := err.(*Error); ok && ae == nil {
		return nil
	}
	return err
}

func wrapf(err error, skip int, format string, args ...any) *Error {
	return wrap(err, fmt.Sprintf(format, args...), skip+1)
}
