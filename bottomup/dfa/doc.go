/*
Package dfa implements bottom-up deterministic finite-state acceptors for
trees (tree automata).

An automaton consists of a set of states, an alphabet of node labels, a set
of accepting states, and a transition table. Transitions map the tuple of
states reached by the children of a node, together with the node's label,
to a state for the node:

    ()        × a  →  qa
    ()        × b  →  qb
    (qa, qb)  × S  →  qS

A tree is recognized if its root reaches an accepting state. If no transition
exists for some node, evaluation of this node and of all its ancestors fails.

Automata are usually created with a Builder:

    b := dfa.NewBuilder("anbn")
    b.States("qa", "qb", "qS").Symbols("a", "b", "S").Finals("qS")
    b.Leaf("a").Goto("qa")
    b.Leaf("b").Goto("qb")
    b.From("qa", "qb").On("S").Goto("qS")
    b.From("qa", "qS", "qb").On("S").Goto("qS")
    anbn := b.Automaton()
    anbn.Recognizes(tree.MustParse("S[a, S[a, b], b]"))  // => true

Automata are immutable after construction and may be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.bottomup'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.bottomup")
}
