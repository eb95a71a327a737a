// chain.go — causal-chain traversal for xgx-anyerr.
//
// Scope:
//   - Cause: one causal step, honoring both Unwrap() error (stdlib, Go 1.13+)
//     and the legacy Cause() error convention.
//   - Chain: a cursor over "cause of cause of …", forward always, backward
//     by buffering the remaining chain on the first reverse step.
//   - RootCause: the terminal node of the chain.
//
// Design notes:
//   - The chain is strictly linear: multi-error containers (Unwrap() []error)
//     are opaque nodes here. Use stdlib errors.Is/As for tree traversal.
//   - All walks are bounded by maxChainDepth as a guard against accidental
//     cycles in hand-written Unwrap implementations.
package anyerr

import "iter"

// maxChainDepth caps every chain walk. Real chains are a handful of links;
// the cap only matters for cyclic Unwrap graphs.
const maxChainDepth = 1 << 12

type singleUnwrapper interface{ Unwrap() error }
type legacyCauser interface{ Cause() error }

// Cause returns err's causal parent, or nil at the terminal node. It prefers
// the stdlib Unwrap() error form and falls back to Cause() error.
func Cause(err error) error {
	switch e := err.(type) {
	case singleUnwrapper:
		return e.Unwrap()
	case legacyCauser:
		return e.Cause()
	}
	return nil
}

// RootCause walks to the last element of err's causal chain. RootCause(nil)
// is nil; a cause-less error is its own root.
func RootCause(err error) error {
	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		next := Cause(err)
		if next == nil {
			return err
		}
		err = next
	}
	return err
}

// Chain is a cursor over a causal chain. It starts linked — holding only the
// next item and advancing by asking it for its cause — and converts at most
// once to buffered form, on the first NextBack while still linked. The zero
// value is an empty cursor: both ends are exhausted.
//
// A Chain is single-goroutine traversal state; it borrows the errors it
// yields and must not outlive them.
type Chain struct {
	next     error   // linked state: next item to yield, nil when spent
	rest     []error // buffered state: remaining items in forward order
	buffered bool
}

// NewChain returns a cursor whose first item is head. NewChain(nil) is an
// empty cursor.
func NewChain(head error) *Chain {
	return &Chain{next: head}
}

// Next yields the next item front-to-back, reporting false when the cursor
// is exhausted.
func (c *Chain) Next() (error, bool) {
	if c == nil {
		return nil, false
	}
	if c.buffered {
		if len(c.rest) == 0 {
			return nil, false
		}
		err := c.rest[0]
		c.rest = c.rest[1:]
		return err, true
	}
	if c.next == nil {
		return nil, false
	}
	err := c.next
	c.next = Cause(err)
	return err, true
}

// NextBack yields the next item back-to-front. On the first reverse step of
// a linked cursor the remaining chain is materialized in full; the cursor
// then serves both ends from that buffer and never reverts to linked form.
func (c *Chain) NextBack() (error, bool) {
	if c == nil {
		return nil, false
	}
	if !c.buffered {
		var rest []error
		for err, depth := c.next, 0; err != nil && depth < maxChainDepth; depth++ {
			rest = append(rest, err)
			err = Cause(err)
		}
		c.next = nil
		c.rest = rest
		c.buffered = true
	}
	if len(c.rest) == 0 {
		return nil, false
	}
	err := c.rest[len(c.rest)-1]
	c.rest = c.rest[:len(c.rest)-1]
	return err, true
}

// Len reports how many items remain. In linked form this is a dry run of the
// forward traversal, so Len always agrees with exhaustive iteration from
// either end.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	if c.buffered {
		return len(c.rest)
	}
	n := 0
	for err := c.next; err != nil && n < maxChainDepth; n++ {
		err = Cause(err)
	}
	return n
}

// All returns a forward iterator over the remaining items without consuming
// the cursor: ranging over All leaves c where it was.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		if c == nil {
			return
		}
		cur := *c
		for {
			err, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(err) {
				return
			}
		}
	}
}
