package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/arbor"
)

// Key is the left hand side of a transition: an ordered tuple of children states
// together with the label of a node. Keys are comparable and may be used as
// map keys.
//
// The tuple is kept in an encoded form, where every state is prefixed by its
// length. Two keys are equal if and only if their tuples have the same length,
// agree position by position, and their labels are equal.
type Key struct {
	tuple string // length-prefixed encoding of the children states
	Label string
}

// MakeKey creates a key from a node label and the states of the node's children.
//
//     MakeKey("S", "qa", "qb")   // (qa, qb) × S
//     MakeKey("a")               // () × a
//
func MakeKey(label string, children ...arbor.State) Key {
	return Key{tuple: encodeTuple(children), Label: label}
}

// KeyFor is like MakeKey, with children states given as a tuple.
func KeyFor(children arbor.Tuple, label string) Key {
	return Key{tuple: encodeTuple(children), Label: label}
}

// Children returns the tuple of children states of a key.
func (k Key) Children() arbor.Tuple {
	return decodeTuple(k.tuple)
}

// Arity returns the number of children states of a key.
func (k Key) Arity() int {
	return len(decodeTuple(k.tuple))
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Children(), k.Label)
}

// compareKeys orders keys by label, then by children tuple.
func compareKeys(k1, k2 Key) int {
	if c := strings.Compare(k1.Label, k2.Label); c != 0 {
		return c
	}
	t1, t2 := k1.Children(), k2.Children()
	for i := 0; i < len(t1) && i < len(t2); i++ {
		if c := strings.Compare(string(t1[i]), string(t2[i])); c != 0 {
			return c
		}
	}
	return len(t1) - len(t2)
}

// --- Tuple encoding --------------------------------------------------------

func encodeTuple(states arbor.Tuple) string {
	var b strings.Builder
	for _, s := range states {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(string(s))
	}
	return b.String()
}

func decodeTuple(enc string) arbor.Tuple {
	t := arbor.Tuple{}
	for len(enc) > 0 {
		colon := strings.IndexByte(enc, ':')
		if colon < 0 {
			panic(fmt.Sprintf("corrupt tuple encoding: %q", enc))
		}
		n, err := strconv.Atoi(enc[:colon])
		if err != nil || colon+1+n > len(enc) {
			panic(fmt.Sprintf("corrupt tuple encoding: %q", enc))
		}
		t = append(t, arbor.State(enc[colon+1:colon+1+n]))
		enc = enc[colon+1+n:]
	}
	return t
}
