// doc.go — package documentation for xgx-anyerr
//
// Package anyerr provides a single, uniform error handle for any failure
// value — a plain error, a message, or anything printable — with context
// wrapping, causal chains, optional trace capture, and explicit downcast
// back to the concrete type. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As via Unwrap, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # The Container
//
// Every entry point produces a *Error: an opaque container holding one
// concrete payload plus an optional execution trace. Three construction
// kinds exist, selected by the shape of the input, most specific first:
//
//   - *Error:        passthrough — New never double-wraps its own type.
//   - error:         the payload is the error itself; its Unwrap chain and
//     any trace it carries are inherited.
//   - anything else: an ad-hoc message payload rendered with fmt ("%v").
//
// Use New for shape-directed construction, From when you hold an error,
// Message to force the ad-hoc kind, and Errorf for formatted construction
// (including %w wrapping).
//
// # Context Wrapping
//
// Wrap attaches a human-readable annotation to an existing failure. The
// annotation becomes the new head message; the prior failure becomes its
// cause:
//
//	err := anyerr.Wrap(openErr, "loading config")
//	err.Error()     // "loading config"
//	err.Extended()  // "loading config: open /etc/app.toml: no such file..."
//
// Wrap(nil, msg) synthesizes a brand-new container with no cause — useful
// when an absent value (not a failure) still needs an error to report.
// WrapWith is the lazy variant: its thunk runs only on the failure path,
// and WrapWith(nil, fn) returns nil without evaluating fn.
//
// # Formatting
//
//	%s, %v   → head message only
//	%#v      → one-line extended form: "head: cause1: cause2"
//	%+v      → multi-line detail: head, a "Caused by:" section (numbered
//	           when more than one cause exists), and the captured trace
//	%q       → quoted head message
//
// # Chains and Downcast
//
// Chain iterates the causal sequence head-first; it supports backward
// iteration (buffering the chain on first reverse step) and Len, which
// always agrees with exhaustive iteration. RootCause returns the terminal
// failure. Downcast recovers the original concrete payload:
//
//	if perr, ok := anyerr.DowncastRef[*fs.PathError](err); ok { ... }
//
// A failed Downcast returns the container unchanged; it is a typed negative
// result, never a panic.
//
// # Trace Capture
//
// Traces are captured at construction and wrap time when enabled via the
// ANYERR_TRACE environment variable (unset, "0", "off", "false" disable).
// A payload that already carries a trace (the Tracer interface) is never
// re-captured; wrapping preserves the innermost capture. Requesting a trace
// that was never captured yields an explicit status, not a failure.
//
// # Concurrency
//
// A container is immutable after construction: rendering, chain traversal,
// trace lookup, and DowncastRef are safe for concurrent use. The consuming
// Downcast hands the payload to the caller; do not use the container from
// other goroutines while consuming it.
package anyerr
