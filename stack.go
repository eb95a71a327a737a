// stack.go — call-stack capture for xgx-anyerr traces.
//
// Design goals:
//   - Interop & correctness: runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - Pragmatic performance: bounded depth; capture only happens when trace
//     support is enabled (trace.go), never on the plain construction path.
package anyerr

import "runtime"

// Frame is a single call site in a captured stack.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path, as provided by runtime
	Line     int
	Function string // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth bounds capture without losing meaningful context on
// exceptional paths.
const defaultMaxDepth = 64

// captureStack captures up to maxDepth frames, skipping 'skip' frames beyond
// this function.
//
// Skip accounting: +2 covers runtime.Callers itself and captureStack, so the
// first recorded frame is captureStack's caller when skip is 0. Construction
// entry points thread their own depth through so user-visible stacks begin
// at (or very near) the user call site.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
