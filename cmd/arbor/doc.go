/*
Command arbor provides an interactive command line tool for experimenting
with bottom-up tree automata and transducers.

Users enter trees in bracket notation, e.g.

    arbor> S[a, S[a, b], b]

which are evaluated by the current acceptor and transducer. Lines starting
with a colon are commands:

    :grammar name        select an acceptor (anbn, simple, gb, minimalist)
    :transducer name     select a transducer (reverse-anbn, gb2min), or 'none'
    :sample name         evaluate a built-in sample tree
    :let name tree       store a tree under a name
    :eval name           evaluate a stored tree; 'it' is the most recent output
    :names               list stored trees
    :list                list acceptors, transducers and samples
    :dump                print the current acceptor and transducer
    :valid               check the current acceptor and transducer for consistency
    :debug on|off        trace every visited node
    :load file           load an acceptor or transducer from a YAML file
    :save file           save the current transducer (or acceptor) to a YAML file
    :dot [which] file    export the current acceptor (default) or transducer to Graphviz
    :html [which] file   export a transition table to HTML; which is acceptor or transducer
    :quit                leave

Flags:

    -trace level         trace level [Debug|Info|Error]
    -grammar name        initial acceptor
    -transducer name     initial transducer
    -init file           file of lines to evaluate at start-up

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arbor.cli'
func tracer() tracing.Trace {
	return tracing.Select("arbor.cli")
}
