// wrapper.go — payload adapters for the construction kinds.
//
// Each construction kind that does not already hand us an error gets a thin
// unexported adapter implementing the error interface:
//   - messageError: an ad-hoc printable value; no cause.
//   - contextError: a human-readable annotation over a prior failure; its
//     text is the annotation, its cause is the wrapped failure.
//
// The "pre-erased" kind needs no adapter in Go: a boxed, type-erased failure
// object is exactly what the error interface value already is, so From
// stores it as the payload directly.
package anyerr

import "fmt"

// messageError adapts any printable value into an error. The value is
// rendered lazily with fmt's %v on each call; callers who need stability
// should pass a string.
type messageError struct {
	msg any
}

func (m *messageError) Error() string {
	return fmt.Sprintf("%v", m.msg)
}

// contextError is the context-wrapping payload: display text is the
// annotation, the causal parent is the wrapped failure.
type contextError struct {
	msg any
	err error
}

func (c *contextError) Error() string {
	return fmt.Sprintf("%v", c.msg)
}

// Unwrap peels a container shell off the wrapped failure so the causal chain
// reads annotation → payload → deeper causes, with no duplicate entry for
// the inner container (whose text equals its payload's text anyway).
func (c *contextError) Unwrap() error {
	if inner, ok := c.err.(*Error); ok {
		if inner == nil {
			return nil
		}
		return inner.err
	}
	return c.err
}

// Trace forwards to the wrapped failure, so a trace captured at the innermost
// construction site survives any number of context layers.
func (c *contextError) Trace() Trace {
	return traceOf(c.err)
}
