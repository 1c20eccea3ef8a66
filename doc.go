/*
Package arbor is a toolbox for bottom-up deterministic tree automata.

Arbor evaluates ordered, labeled trees from the leaves towards the root,
computing a state for every node from the states of its children and its
own label. On top of this it offers tree transducers, which build an output
tree alongside the states by filling rule templates with the outputs of
children nodes. Linguists may use this to encode phrase-structure grammars
and translations between them, but the machinery is domain independent.
Package structure is as follows:

■ tree: Package tree implements a plain tree value type, with a bracket
notation for reading and printing trees.

■ bottomup: Package bottomup implements the machinery shared by acceptors
and transducers: transition tables, post-order evaluation and tracing.
Sub-packages dfa and dft implement acceptors and transducers.

■ grammars: Package grammars provides example grammars and transducers,
among them GB-style X-bar grammars and a GB to Minimalist translation.
Grammars may be loaded from and saved to YAML definitions.

Command arbor (in cmd/arbor) is an interactive shell for trying out
grammars and transducers on trees.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arbor
