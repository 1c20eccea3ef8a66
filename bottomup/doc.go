/*
Package bottomup holds the machinery shared by bottom-up tree automata,
i.e. acceptors (package dfa) and transducers (package dft).

A bottom-up automaton assigns a state to every node of a tree, starting at the
leaves. The state of a node is looked up from the tuple of its children's
states together with the node's label:

    (q1, q2, …, qn) × label  →  q

Leaves have the empty tuple (). If there is no entry for a node, the node
fails, and so do all of its ancestors. A tree is accepted if its root
reaches an accepting state.

Package bottomup provides the composite transition key, the transition table
(rows are children tuples, columns are labels, stored in a sparse matrix), a
post-order walker which evaluates trees without recursion, evaluation options
for tracing, and export functions for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bottomup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.bottomup'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.bottomup")
}
