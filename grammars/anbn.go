package grammars

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor/bottomup/dfa"
	"github.com/npillmayer/arbor/bottomup/dft"
)

// AnBn returns an automaton recognizing trees
//
//     S[a, b],  S[a, S[a, b], b],  S[a, S[a, S[a, b], b], b],  …
//
// i.e. trees with yield a^n b^n, n > 0.
func AnBn() *dfa.Automaton {
	b := dfa.NewBuilder("anbn")
	b.States("qa", "qb", "qS").Symbols("a", "b", "S").Finals("qS")
	b.Leaf("a").Goto("qa")
	b.Leaf("b").Goto("qb")
	b.From("qa", "qb").On("S").Goto("qS")
	b.From("qa", "qS", "qb").On("S").Goto("qS")
	return b.Automaton()
}

// ReverseAnBn returns a transducer for the trees recognized by AnBn, which
// mirrors every tree, i.e. S[a, S[a, b], b] is translated to S[b, S[b, a], a].
func ReverseAnBn() *dft.Transducer {
	b := dft.NewBuilder("reverse-anbn")
	b.States("qa", "qb", "qS").Symbols("a", "b", "S").Finals("qS")
	b.Leaf("a").Goto("qa", "a")
	b.Leaf("b").Goto("qb", "b")
	b.From("qa", "qb").On("S").Goto("qS", "S[$1, $0]")
	b.From("qa", "qS", "qb").On("S").Goto("qS", "S[$2, $1, $0]")
	return b.Transducer()
}
