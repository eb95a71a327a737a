// format.go — fmt.Formatter implementation and text renderings.
//
// Behavior:
//
//	%s, %v   → head message (Error()).
//	%#v      → extended one-liner: head and every cause, colon-joined.
//	%+v      → detail: multi-line head + "Caused by:" section + trace:
//	             head message
//
//	             Caused by:
//	                1: first cause
//	                2: second cause
//	                   continuation lines align under the text
//
//	             Stack backtrace:
//	             <frames>
//	%q       → quoted head message.
//
// Causes are numbered only when more than one exists; a single cause gets a
// plain 4-space indent. Continuation lines of a multi-line cause indent to
// the text column, never the number column.
package anyerr

import (
	"fmt"
	"io"
	"strings"
)

// Format implements fmt.Formatter. Note that the '#' flag on the v verb is
// repurposed for the extended colon-joined chain: %#v does NOT produce a
// Go-syntax representation of the container.
func (e *Error) Format(s fmt.State, verb rune) {
	if e == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		switch {
		case s.Flag('+'):
			e.writeDetail(s)
		case s.Flag('#'):
			_, _ = io.WriteString(s, e.Extended())
		default:
			_, _ = io.WriteString(s, e.Error())
		}
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default: // 's' and anything unrecognized
		_, _ = io.WriteString(s, e.Error())
	}
}

// Extended renders the flat one-line summary: the head message followed by
// ": <cause>" for each link of the causal chain.
func (e *Error) Extended() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.err.Error())
	for cause, depth := Cause(e.err), 0; cause != nil && depth < maxChainDepth; depth++ {
		b.WriteString(": ")
		b.WriteString(cause.Error())
		cause = Cause(cause)
	}
	return b.String()
}

// Detail renders the multi-line debug form as a string; identical to %+v.
func (e *Error) Detail() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	e.writeDetail(&b)
	return b.String()
}

func (e *Error) writeDetail(w io.Writer) {
	_, _ = io.WriteString(w, e.err.Error())

	if cause := Cause(e.err); cause != nil {
		_, _ = io.WriteString(w, "\n\nCaused by:")
		multiple := Cause(cause) != nil
		n := 0
		for depth := 0; cause != nil && depth < maxChainDepth; depth++ {
			n++
			_, _ = io.WriteString(w, "\n")
			writeIndented(w, cause.Error(), n, multiple)
			cause = Cause(cause)
		}
	}

	if t := e.Trace(); t.Status() == TraceCaptured {
		_, _ = io.WriteString(w, "\n\nStack backtrace:\n")
		_, _ = io.WriteString(w, t.String())
	}
}

// writeIndented writes one cause entry. Numbered entries get the number
// right-aligned in a 4-wide field ("   1: text"), with continuation lines
// indented six spaces to sit under the text. Unnumbered entries use a fixed
// 4-space indent throughout.
func writeIndented(w io.Writer, text string, number int, numbered bool) {
	for i, line := range strings.Split(text, "\n") {
		switch {
		case i == 0 && numbered:
			_, _ = fmt.Fprintf(w, "%4d: ", number)
		case i == 0:
			_, _ = io.WriteString(w, "    ")
		case numbered:
			_, _ = io.WriteString(w, "\n      ")
		default:
			_, _ = io.WriteString(w, "\n    ")
		}
		_, _ = io.WriteString(w, line)
	}
}
