/*
Package tree implements ordered, labeled trees as input and output values
for tree automata.

A tree node carries a label and an ordered list of children. Labels are
either literal symbols or, for output templates of transducers, positional
placeholders referring to the output of a child node. A node is a leaf iff
it has no children.

Trees may be written in a bracket notation, where children of a node are
listed in brackets behind the node's label:

    S[a, S[a, b], b]          // a tree for a^2 b^2
    NP[N, $0]                 // a template with placeholder $0
    DP[D, NP[""]]             // a quoted (empty) label

Parse reads trees in this notation, and Tree.String writes it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.tree'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.tree")
}
