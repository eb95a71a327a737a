// chain_test.go — verification of causal-chain traversal.
package anyerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildThree returns a chain A → B → C with C the terminal node, plus the
// three links for identity checks.
func buildThree() (head, a, b, c error) {
	c = errors.New("C")
	b = fmt.Errorf("B: %w", c)
	a = fmt.Errorf("A: %w", b)
	return a, a, b, c
}

func collectForward(ch *Chain) []error {
	var out []error
	for {
		e, ok := ch.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func collectBackward(ch *Chain) []error {
	var out []error
	for {
		e, ok := ch.NextBack()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func TestChain_ForwardOrder(t *testing.T) {
	t.Parallel()

	head, a, b, c := buildThree()
	got := collectForward(NewChain(head))
	require.Equal(t, []error{a, b, c}, got)
}

func TestChain_LenAgreesWithBothDirections(t *testing.T) {
	t.Parallel()

	head, _, _, _ := buildThree()

	require.Equal(t, 3, NewChain(head).Len())
	require.Len(t, collectForward(NewChain(head)), 3)
	require.Len(t, collectBackward(NewChain(head)), 3)

	// Len is a dry run: calling it must not advance the cursor.
	ch := NewChain(head)
	_ = ch.Len()
	require.Len(t, collectForward(ch), 3)
}

func TestChain_BackwardAfterPartialForward(t *testing.T) {
	t.Parallel()

	head, a, b, c := buildThree()
	ch := NewChain(head)

	first, ok := ch.Next()
	require.True(t, ok)
	require.Same(t, a, first)

	back1, ok := ch.NextBack()
	require.True(t, ok)
	require.Same(t, c, back1, "first reverse step yields the terminal node")

	back2, ok := ch.NextBack()
	require.True(t, ok)
	require.Same(t, b, back2)

	_, ok = ch.NextBack()
	assert.False(t, ok, "cursor exhausted from the back")
	_, ok = ch.Next()
	assert.False(t, ok, "cursor exhausted from the front")
}

func TestChain_MeetInTheMiddle(t *testing.T) {
	t.Parallel()

	head, a, b, c := buildThree()
	ch := NewChain(head)

	back, _ := ch.NextBack() // materializes
	front, _ := ch.Next()
	require.Same(t, c, back)
	require.Same(t, a, front)
	require.Equal(t, 1, ch.Len())

	mid, ok := ch.Next()
	require.True(t, ok)
	require.Same(t, b, mid)

	_, ok = ch.Next()
	assert.False(t, ok)
	_, ok = ch.NextBack()
	assert.False(t, ok)
}

func TestChain_ZeroAndNil(t *testing.T) {
	t.Parallel()

	var zero Chain
	_, ok := zero.Next()
	assert.False(t, ok)
	_, ok = zero.NextBack()
	assert.False(t, ok)
	assert.Zero(t, zero.Len())

	var nilChain *Chain
	_, ok = nilChain.Next()
	assert.False(t, ok)
	_, ok = nilChain.NextBack()
	assert.False(t, ok)
	assert.Zero(t, nilChain.Len())

	assert.Zero(t, NewChain(nil).Len())
}

func TestChain_AllDoesNotConsume(t *testing.T) {
	t.Parallel()

	head, a, b, c := buildThree()
	ch := NewChain(head)

	var seen []error
	for e := range ch.All() {
		seen = append(seen, e)
	}
	require.Equal(t, []error{a, b, c}, seen)

	// The cursor itself is untouched.
	require.Equal(t, 3, ch.Len())
	got, ok := ch.Next()
	require.True(t, ok)
	require.Same(t, a, got)
}

func TestChain_LegacyCauserSupported(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	legacy := &legacyWrapper{msg: "legacy", cause: root}

	got := collectForward(NewChain(legacy))
	require.Equal(t, []error{error(legacy), root}, got)
	require.Same(t, root, RootCause(legacy))
}

// legacyWrapper implements the pre-1.13 Cause() convention only.
type legacyWrapper struct {
	msg   string
	cause error
}

func (l *legacyWrapper) Error() string { return l.msg }
func (l *legacyWrapper) Cause() error  { return l.cause }

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))

	leaf := errors.New("leaf")
	assert.Same(t, leaf, RootCause(leaf), "cause-less error is its own root")

	head, _, _, c := buildThree()
	assert.Same(t, c, RootCause(head))
}
