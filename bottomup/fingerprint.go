package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/arbor"
)

// Description is a canonical, order-independent description of an automaton,
// used for computing fingerprints. Automata with equal descriptions behave
// identically on every tree.
type Description struct {
	States   []string `hash:"name:states"`
	Alphabet []string `hash:"name:alphabet"`
	Finals   []string `hash:"name:finals"`
	Rules    []Edge   `hash:"name:rules"`
}

// Edge is a single transition of an automaton, as used for fingerprints and
// for export.
type Edge struct {
	From   string `hash:"name:from"` // encoded children tuple
	Label  string `hash:"name:label"`
	Target string `hash:"name:target"`
	Output string `hash:"name:output"` // output template in bracket notation, empty for acceptors
}

// NewEdge creates an edge for a transition.
func NewEdge(key Key, target string, output string) Edge {
	return Edge{
		From:   key.tuple,
		Label:  key.Label,
		Target: target,
		Output: output,
	}
}

// Fingerprint computes a hash for an automaton description. Rules have to be
// given in table order (see Table.Keys), set members in sorted order.
// Tables built from different rule lists with the same effective transitions
// have the same fingerprint.
func Fingerprint(d Description) string {
	h, err := structhash.Hash(d, 1)
	if err != nil {
		tracer().Errorf("cannot compute fingerprint: %v", err)
		return ""
	}
	return h
}

// Children returns the tuple of children states of an edge.
func (e Edge) Children() arbor.Tuple {
	return decodeTuple(e.From)
}
