package grammars

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor/bottomup/dfa"
)

// QXP is the state reached by complete phrases of any category.
const QXP = "qXP"

// Categories of the GB and Minimalist grammars.
const Categories = "NAVPDTC"

// category holds the labels and states derived from a category symbol.
type category struct {
	x, xbar, xp string // X, X', XP
	qx, qxbar   string // qX, qXbar
}

func categoryOf(z rune) category {
	x := string(z)
	return category{
		x:     x,
		xbar:  x + "'",
		xp:    x + "P",
		qx:    "q" + x,
		qxbar: "q" + x + "bar",
	}
}

// Simple returns an automaton for simple sentences, e.g.
//
//     S[NP[Det, N], VP[V, NP[Det, N]]]
//
// Noun phrases and verb phrases are accepted on their own as well.
func Simple() *dfa.Automaton {
	b := dfa.NewBuilder("simple")
	b.States("qS", "qNP", "qN", "qVP", "qV", "qDet")
	b.Symbols("S", "NP", "N", "Det", "VP", "V")
	b.Finals("qNP", "qVP", "qS")
	b.Leaf("N").Goto("qN")
	b.Leaf("V").Goto("qV")
	b.Leaf("Det").Goto("qDet")
	b.From("qDet", "qN").On("NP").Goto("qNP")
	b.From("qV").On("VP").Goto("qVP")
	b.From("qV", "qNP").On("VP").Goto("qVP")
	b.From("qNP", "qVP").On("S").Goto("qS")
	return b.Automaton()
}

// GBXBar returns an automaton for X-bar trees in the style of Government and
// Binding theory:
//
//     X' → X
//     X' → X YP
//     XP → X'
//     XP → ZP X'
//
// for every category in Categories.
func GBXBar() *dfa.Automaton {
	b := dfa.NewBuilder("gb-xbar")
	b.States(QXP).Finals(QXP)
	for _, z := range Categories {
		c := categoryOf(z)
		b.States(c.qx, c.qxbar).Symbols(c.x, c.xbar, c.xp)
		b.Leaf(c.x).Goto(c.qx)
		b.From(c.qx).On(c.xbar).Goto(c.qxbar)
		b.From(c.qx, QXP).On(c.xbar).Goto(c.qxbar)
		b.From(c.qxbar).On(c.xp).Goto(QXP)
		b.From(QXP, c.qxbar).On(c.xp).Goto(QXP)
	}
	return b.Automaton()
}

// MinimalistBPS returns an automaton for Minimalist bare phrase structure:
//
//     XP
//     XP → X YP
//     X' → X YP
//     XP → ZP X'
//
// for every category in Categories.
func MinimalistBPS() *dfa.Automaton {
	b := dfa.NewBuilder("minimalist-bps")
	b.States(QXP).Finals(QXP)
	for _, z := range Categories {
		c := categoryOf(z)
		b.States(c.qx, c.qxbar).Symbols(c.x, c.xbar, c.xp)
		b.Leaf(c.xp).Goto(QXP)
		b.Leaf(c.x).Goto(c.qx)
		b.From(c.qx, QXP).On(c.xp).Goto(QXP)
		b.From(c.qx, QXP).On(c.xbar).Goto(c.qxbar)
		b.From(QXP, c.qxbar).On(c.xp).Goto(QXP)
	}
	return b.Automaton()
}
