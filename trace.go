// trace.go — the execution-trace facility boundary.
//
// A Trace is an immutable snapshot of the call stack taken at failure
// construction or wrap time, plus an explicit status so display code can
// skip the trace section silently instead of treating "no trace" as a
// failure of its own.
//
// Capture is gated by the ANYERR_TRACE environment variable, read once:
// unset, "0", "off", or "false" disable it. When disabled, capture is a
// no-op that returns a TraceDisabled sentinel, so construction stays cheap
// in production.
//
// Trace text is normalized at this boundary: String renders frames only,
// with no header line, and the renderer in format.go owns the
// "Stack backtrace:" heading.
package anyerr

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// TraceStatus reports whether a Trace holds anything useful.
type TraceStatus int

const (
	// TraceUnsupported is the zero status: no trace exists and none was
	// deliberately skipped (e.g. the payload never carried one).
	TraceUnsupported TraceStatus = iota
	// TraceDisabled means capture was requested while the environment had
	// trace support turned off.
	TraceDisabled
	// TraceCaptured means the Trace holds a resolved stack.
	TraceCaptured
)

func (s TraceStatus) String() string {
	switch s {
	case TraceDisabled:
		return "disabled"
	case TraceCaptured:
		return "captured"
	default:
		return "unsupported"
	}
}

// Trace is an optional captured execution trace. The zero value reports
// TraceUnsupported and renders as the empty string.
type Trace struct {
	status TraceStatus
	stack  Stack
}

// Status reports whether this Trace was captured, skipped, or never existed.
func (t Trace) Status() TraceStatus { return t.status }

// Frames returns a copy of the captured frames, most recent call first.
func (t Trace) Frames() Stack {
	if len(t.stack) == 0 {
		return nil
	}
	out := make(Stack, len(t.stack))
	copy(out, t.stack)
	return out
}

// String renders the frames one per line with the source location indented
// beneath the function, trailing whitespace trimmed. No header is included.
func (t Trace) String() string {
	if t.status != TraceCaptured {
		return ""
	}
	var b strings.Builder
	for _, fr := range t.stack {
		_, _ = fmt.Fprintf(&b, "%s\n\t%s:%d\n", fr.Function, fr.File, fr.Line)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Tracer is implemented by failure values that carry their own execution
// trace. Construction and wrapping consult it before capturing, so the
// innermost capture survives any number of layers.
type Tracer interface {
	Trace() Trace
}

var (
	traceOnce sync.Once
	traceOn   atomic.Bool
)

// TraceEnabled reports whether the environment has trace capture turned on.
// The ANYERR_TRACE variable is consulted once per process.
func TraceEnabled() bool {
	traceOnce.Do(func() {
		switch strings.ToLower(os.Getenv("ANYERR_TRACE")) {
		case "", "0", "off", "false":
			traceOn.Store(false)
		default:
			traceOn.Store(true)
		}
	})
	return traceOn.Load()
}

// Capture takes a trace at the caller's location, honoring the environment
// gate. Callers normally never need this directly: every construction entry
// point captures on its own.
func Capture() Trace {
	return captureTrace(1)
}

func captureTrace(skip int) Trace {
	if !TraceEnabled() {
		return Trace{status: TraceDisabled}
	}
	stk := captureStack(skip+1, defaultMaxDepth)
	if len(stk) == 0 {
		return Trace{}
	}
	return Trace{status: TraceCaptured, stack: stk}
}

// traceOf asks err for a trace of its own; zero Trace when it has none.
func traceOf(err error) Trace {
	if t, ok := err.(Tracer); ok {
		return t.Trace()
	}
	return Trace{}
}

// traceOrCapture preserves an existing captured trace and captures a fresh
// one only when err does not supply its own.
func traceOrCapture(err error, skip int) Trace {
	if t := traceOf(err); t.Status() == TraceCaptured {
		return t
	}
	return captureTrace(skip + 1)
}
