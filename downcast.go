// downcast.go — recovering the concrete payload from a container.
//
// Semantics:
//   - Matching is by exact dynamic type (a plain type assertion), walking
//     through container and context shells only — NOT the full causal chain.
//     A context-wrapped container downcasts to its innermost payload's type;
//     an unrelated error deeper in a payload's own chain does not match.
//     Use errors.As for chain-wide matching.
//   - A failed downcast is a typed negative result: the container comes back
//     unchanged (its rendering is byte-identical to before the attempt).
//
// Consuming vs borrowed:
//   - Downcast hands the payload to the caller; treat the container as spent
//     on success and do not share it across goroutines during the call.
//   - DowncastRef only reads. For pointer payloads the returned value aliases
//     the payload, so mutation through it is visible to later renders — that
//     is the mutable-access story on a garbage-collected runtime, and why
//     there is no separate "mut" variant.
package anyerr

// Downcast attempts to extract the concrete payload of type T, consuming the
// container on success. On success it returns (payload, nil); on mismatch it
// returns the zero T and the container unchanged so the caller can try
// another type or keep propagating it.
func Downcast[T error](e *Error) (T, *Error) {
	if e == nil {
		var zero T
		return zero, nil
	}
	if v, ok := locate[T](e.err); ok {
		return v, nil
	}
	var zero T
	return zero, e
}

// DowncastRef is the borrowed variant: it reports whether the payload has
// type T without consuming the container.
func DowncastRef[T error](e *Error) (T, bool) {
	if e == nil {
		var zero T
		return zero, false
	}
	return locate[T](e.err)
}

// DowncastMessage recovers the ad-hoc message or context annotation of type
// M from the container's head, checking outermost annotation first. It lets
// callers get back exactly the value they passed to Message or Wrap.
func DowncastMessage[M any](e *Error) (M, bool) {
	var zero M
	if e == nil {
		return zero, false
	}
	err := e.err
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		switch v := err.(type) {
		case *messageError:
			m, ok := v.msg.(M)
			return m, ok
		case *contextError:
			if m, ok := v.msg.(M); ok {
				return m, true
			}
			err = v.err
		case *Error:
			if v == nil {
				return zero, false
			}
			err = v.err
		default:
			return zero, false
		}
	}
	return zero, false
}

// locate walks payload through container and context shells looking for an
// exact dynamic type match.
func locate[T error](payload error) (T, bool) {
	err := payload
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if v, ok := err.(T); ok {
			return v, true
		}
		switch shell := err.(type) {
		case *contextError:
			err = shell.err
		case *Error:
			if shell == nil {
				var zero T
				return zero, false
			}
			err = shell.err
		default:
			var zero T
			return zero, false
		}
	}
	var zero T
	return zero, false
}
