package arbor

import (
	"fmt"
	"strings"
)

// --- States ----------------------------------------------------------------

// State is an identifier drawn from the finite state set of an automaton.
// States carry no payload; they are used as lookup keys and for membership
// tests against a set of accepting states.
type State string

// Tuple is an ordered list of states, one for each child of a tree node.
// Leaves have an empty tuple.
type Tuple []State

// States is a small helper to create a tuple from plain strings.
func States(names ...string) Tuple {
	t := make(Tuple, len(names))
	for i, n := range names {
		t[i] = State(n)
	}
	return t
}

// Equals compares two tuples position by position.
func (t Tuple) Equals(other Tuple) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, s := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		if s == "" {
			b.WriteString("⊥") // no reachable state
		} else {
			b.WriteString(string(s))
		}
	}
	b.WriteByte(')')
	return b.String()
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. Scanners for
// tree notation attach spans to tokens, and syntax errors report them.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

// String prints a span as (x…y).
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
