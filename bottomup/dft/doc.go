/*
Package dft implements bottom-up deterministic finite-state transducers for
trees.

A transducer works like an acceptor (see package dfa), but every transition
additionally carries an output template. A template is a tree which may
contain placeholder leaves $0, $1, …, standing for the outputs of the node's
children:

    ()        × a  →  qa, a
    ()        × b  →  qb, b
    (qa, qb)  × S  →  qS, S[$1, $0]

The output for a node is its template, with every placeholder $i replaced by
the output of child i. Transforming S[a, b] with the rules above results in
S[b, a]. Output is produced only if the root of the input tree reaches an
accepting state.

Output trees never share nodes with templates, nor with each other. If a
template uses the output of a child more than once, later uses are copies.

Configuration

If the global configuration flag 'panic-on-invalid-template' is set, a
template placeholder referring to a non-existing child will panic instead of
failing the node. This is useful for debugging grammars.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dft

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.bottomup'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.bottomup")
}
