package grammars

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor/bottomup/dft"
)

// TransducerCategories are the categories handled by GBToMinimalist.
// X, Y and Z are generic categories, I is the GB inflection phrase.
const TransducerCategories = "XYZNAVPDIC"

// Labels for phrases with a specifier but without a complement.
const (
	unknown    = "?"
	unknownBar = "?'"
	unknownP   = "?P"
)

// GBToMinimalist returns a transducer from GB X-bar trees to Minimalist bare
// phrase structure trees. Outputs are recognized by MinimalistBPS.
//
//     IP[NP[DP[D'[D]], N'[N]], I'[I, VP[V'[V, NP[N'[N]]]]]]
//
// becomes
//
//     TP[DP[D, NP], T'[T, VP[V, DP[D, NP]]]]
//
// Heads and non-branching bar levels produce empty output, which is never
// referenced by parent templates.
func GBToMinimalist() *dft.Transducer {
	b := dft.NewBuilder("gb-to-minimalist")
	b.States(QXP).Finals(QXP)
	for _, z := range TransducerCategories {
		c := categoryOf(z)
		b.States(c.qx, c.qxbar).Symbols(c.x, c.xbar, c.xp)
		b.Leaf(c.x).Goto(c.qx, `""`)
		b.From(c.qx).On(c.xbar).Goto(c.qx, `""`)
		b.From(c.qx).On(c.xp).Goto(QXP, c.xp)
		b.From(c.qx, QXP).On(c.xbar).Goto(c.qxbar, "$1")
		b.From(c.qxbar).On(c.xp).Goto(QXP, c.xp+"["+c.x+", $0]")
		b.From(QXP, c.qxbar).On(c.xp).Goto(QXP, c.xp+"[$0, "+c.xbar+"["+c.x+", $1]]")
		b.From(QXP, c.qx).On(c.xp).Goto(QXP, unknownP+"[$0, "+unknownBar+"["+unknown+", "+c.xp+"]]")
	}
	nounPhrases(b)
	inflectionPhrases(b)
	T := b.Transducer()
	tracer().Debugf("%s has %d transitions", T.Name(), T.Size())
	return T
}

// nounPhrases adds the rules for the NP to DP conversion. A DP consisting
// of a determiner only, in the specifier of NP, becomes the head of the
// resulting DP. Otherwise a null D is inserted.
func nounPhrases(b *dft.Builder) {
	b.States("qD", "qDbar", "qDP")
	b.Leaf("D").Goto("qD", `""`)
	b.From("qD").On("D'").Goto("qD", `""`)
	b.From("qD").On("DP").Goto("qDP", `""`)
	b.Leaf("N").Goto("qN", `""`)
	b.From("qN").On("N'").Goto("qN", `""`)
	b.From("qN").On("NP").Goto(QXP, "DP[D, NP]")
	b.From("qDP", "qN").On("NP").Goto(QXP, "DP[D, NP]")
	b.From("qDP", "qNbar").On("NP").Goto(QXP, "DP[D, NP[N, $1]]")
	b.From(QXP, "qN").On("NP").Goto(QXP, "DP[$0, D'[D, NP]]")
	b.From(QXP, "qNbar").On("NP").Goto(QXP, "DP[$0, D'[D, NP[N, $1]]]")
}

// inflectionPhrases adds the rules relabeling I, I' and IP to T, T' and TP.
func inflectionPhrases(b *dft.Builder) {
	b.Leaf("I").Goto("qI", `""`)
	b.From("qI").On("I'").Goto("qI", `""`)
	b.From("qI").On("IP").Goto(QXP, "TP")
	b.From("qI", QXP).On("I'").Goto("qIbar", "$1")
	b.From("qIbar").On("IP").Goto(QXP, "TP[T, $0]")
	b.From(QXP, "qIbar").On("IP").Goto(QXP, "TP[$0, T'[T, $1]]")
	b.From(QXP, "qI").On("IP").Goto(QXP, unknownP+"[$0, "+unknownBar+"["+unknown+", T'[T]]]")
}
