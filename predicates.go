// predicates.go — small, stdlib-aligned predicates.
//
// Nil-safe wrappers over errors.Is/As so call sites can ask classification
// questions without guarding for nil first. Traversal is the stdlib's: both
// Unwrap() error and Unwrap() []error forms are honored.
package anyerr

import "errors"

// Has reports whether target appears anywhere in err's unwrap graph.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}

// HasType reports whether an error of type T appears anywhere in err's
// unwrap graph. Unlike DowncastRef it walks the full chain, payloads
// included.
func HasType[T error](err error) bool {
	if err == nil {
		return false
	}
	var target T
	return errors.As(err, &target)
}
