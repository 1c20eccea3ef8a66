package grammars

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/arbor/bottomup/dfa"
	"github.com/npillmayer/arbor/bottomup/dft"
	"github.com/npillmayer/arbor/tree"
)

// Sample trees, in bracket notation.
var samples = map[string]string{
	"anbn-1":  "S[a, b]",
	"anbn-2":  "S[a, S[a, b], b]",
	"anbn-3":  "S[a, S[a, S[a, b], b], b]",
	"anbn-3x": "S[a, b, S[a, S[a, b], b]]",
	"simple":  "S[NP[Det, N], VP[V, NP[Det, N]]]",
	//
	"gb-np-n":              "NP[N'[N]]",
	"gb-np-d-n":            "NP[DP[D'[D]], N'[N]]",
	"gb-simple-trans":      "TP[NP[DP[D'[D]], N'[N]], T'[T, VP[V'[V, NP[DP[D'[D]], N'[N]]]]]]",
	"gb-ip-simple-trans":   "IP[NP[DP[D'[D]], N'[N]], I'[I, VP[V'[V, NP[DP[D'[D]], N'[N]]]]]]",
	"gb-xp-singleton":      "XP[X'[X]]",
	"gb-xp-w-comp":         "XP[X'[X, YP[Y'[Y]]]]",
	"gb-xp-w-comp-spec":    "XP[ZP[Z'[Z]], X'[X, YP[Y'[Y]]]]",
	"gb-xp-w-spec-no-comp": "XP[ZP[Z'[Z]], X'[X]]",
	"gb-pp-comp-cp-comp":   "PP[P'[P, CP[C'[C]]]]",
	"min-dp-leaf":          "DP",
	"min-dp-d-n":           "DP[D, NP]",
	"min-simple-trans":     "TP[DP[D, NP], T'[T, VP[V, DP[D, NP]]]]",
}

// Sample returns a new copy of a sample tree, or nil if no sample with the
// given name exists.
func Sample(name string) *tree.Tree {
	s, ok := samples[name]
	if !ok {
		return nil
	}
	return tree.MustParse(s)
}

// SampleNames returns the names of all sample trees, sorted.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Acceptors maps names to constructors of the acceptors in this package.
var Acceptors = map[string]func() *dfa.Automaton{
	"anbn":       AnBn,
	"simple":     Simple,
	"gb":         GBXBar,
	"minimalist": MinimalistBPS,
}

// Transducers maps names to constructors of the transducers in this package.
var Transducers = map[string]func() *dft.Transducer{
	"reverse-anbn": ReverseAnBn,
	"gb2min":       GBToMinimalist,
}
