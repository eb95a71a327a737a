// error.go — the opaque error container for xgx-anyerr.
//
// Scope (tiny core):
//   - One concrete type, *Error, holding an arbitrary error payload plus an
//     optional captured Trace.
//   - Stdlib interop: error, Unwrap() error, fmt.Formatter.
//   - No policy: rendering and traversal only; reactions belong to callers.
//
// Ownership model:
//   - A container is immutable after construction. There is no copy-on-write
//     here because there is nothing to mutate: context wrapping produces a
//     NEW container whose cause is the old one.
//   - The consuming Downcast (downcast.go) is the single-writer operation;
//     its exclusivity is a documented contract, not a lock.
package anyerr

// Error is the opaque, type-erased representation of a failure.
//
// The payload is whatever the construction entry point resolved: a caller's
// concrete error (From/New), an ad-hoc message wrapper (Message), or a
// context shell around a prior failure (Wrap). The zero value is not useful;
// always construct through New, From, Message, Errorf, or Wrap.
type Error struct {
	err   error // concrete payload; never nil in a constructed container
	trace Trace // captured at construction unless the payload supplied one
}

// Error returns the head message only: the payload's own text, without the
// causal chain. Use Extended or %#v for the chain-joined form.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.err.Error()
}

// Unwrap exposes the concrete payload to stdlib traversal, so
// errors.Is/errors.As reach both the payload and everything it wraps.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Chain returns a cursor over the causal chain, starting at the payload.
// The cursor borrows from the container; it is single-use traversal state.
func (e *Error) Chain() *Chain {
	if e == nil {
		return new(Chain)
	}
	return NewChain(e.err)
}

// RootCause returns the terminal failure of the causal chain — the last
// element Chain would yield. For a cause-less payload that is the payload
// itself.
func (e *Error) RootCause() error {
	if e == nil {
		return nil
	}
	return RootCause(e.err)
}

// Trace returns the execution trace associated with this failure: the one
// captured at construction if any, else whatever the payload itself carries,
// else a zero Trace reporting TraceUnsupported.
func (e *Error) Trace() Trace {
	if e == nil {
		return Trace{}
	}
	if e.trace.Status() == TraceCaptured {
		return e.trace
	}
	if t := traceOf(e.err); t.Status() == TraceCaptured {
		return t
	}
	// No capture anywhere: report the construction-time sentinel (disabled
	// vs. unsupported) so display code can skip the section silently.
	return e.trace
}

// Wrap returns a new container whose message is msg and whose cause is e.
// See the package-level Wrap for the full contract.
func (e *Error) Wrap(msg any) *Error {
	return wrap(e.asError(), msg, 1)
}

// Wrapf is Wrap with a fmt format string.
func (e *Error) Wrapf(format string, args ...any) *Error {
	return wrapf(e.asError(), 1, format, args...)
}

// asError converts a possibly-nil *Error into a clean nil error interface,
// avoiding the typed-nil pitfall when handing the receiver to helpers.
func (e *Error) asError() error {
	if e == nil {
		return nil
	}
	return e
}
