package dft

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/arbor/tree"
	"github.com/npillmayer/schuko/gconf"
)

// substitution replaces placeholders of a template by children outputs.
type substitution struct {
	outputs []*tree.Tree
	used    []bool
}

// substitute instantiates a template with the outputs of a node's children.
// It returns false if the template refers to a child which does not exist.
func substitute(template *tree.Tree, outputs []*tree.Tree) (*tree.Tree, bool) {
	if template == nil {
		return nil, false
	}
	s := &substitution{outputs: outputs, used: make([]bool, len(outputs))}
	return s.instantiate(template)
}

func (s *substitution) instantiate(tmpl *tree.Tree) (*tree.Tree, bool) {
	if tmpl.Label.IsPlaceholder() {
		return s.output(tmpl.Label.Index())
	}
	node := &tree.Tree{Label: tmpl.Label}
	if len(tmpl.Children) > 0 {
		node.Children = make([]*tree.Tree, len(tmpl.Children))
		for i, c := range tmpl.Children {
			child, ok := s.instantiate(c)
			if !ok {
				return nil, false
			}
			node.Children[i] = child
		}
	}
	return node, true
}

// output returns the output of child i. The first use hands out the output
// itself, subsequent uses get a copy.
func (s *substitution) output(i int) (*tree.Tree, bool) {
	if i >= len(s.outputs) || s.outputs[i] == nil {
		msg := fmt.Sprintf("template placeholder $%d refers to non-existing child (arity %d)",
			i, len(s.outputs))
		if gconf.GetBool("panic-on-invalid-template") {
			panic(msg)
		}
		tracer().Errorf("%s", msg)
		return nil, false
	}
	if s.used[i] {
		return s.outputs[i].Copy(), true
	}
	s.used[i] = true
	return s.outputs[i], true
}
