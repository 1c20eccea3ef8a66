/*
Package grammars provides ready-made tree automata and transducers.

There are toy automata for the tree language of a^n b^n, together with a
transducer reversing such trees, and automata for phrase structure trees
of natural language syntax:

■ a simple grammar for sentences (S, NP, VP)

■ an X-bar grammar in the style of Government and Binding theory (GB), with
categories N, A, V, P, D, T and C

■ a grammar for Minimalist bare phrase structure

■ a transducer translating GB trees into Minimalist trees

Neither grammar models subcategorization: a single state 'qXP' stands for
a complete phrase of any category.

The GB to Minimalist transducer removes bar levels which do not branch,
converts NPs into DPs (the determiner phrase in the specifier of NP becomes
the head of the DP, or a null D is inserted), and relabels IP as TP. Phrases
with a specifier but no complement cannot be expressed in bare phrase
structure; they are marked with category '?'.

Every call of a grammar function creates a new automaton.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammars

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.bottomup'.
func tracer() tracing.Trace {
	return tracing.Select("arbor.bottomup")
}
