package dft

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/tree"
)

// Builder is used to create transducers in a fluent style:
//
//     b := dft.NewBuilder("reverse")
//     b.States("qa", "qb", "qS").Symbols("a", "b", "S").Finals("qS")
//     b.Leaf("a").Goto("qa", "a")
//     b.Leaf("b").Goto("qb", "b")
//     b.From("qa", "qb").On("S").Goto("qS", "S[$1, $0]")
//     T := b.Transducer()
//
// Templates given to Goto are in bracket notation (see package tree) and must
// be well formed; Goto panics otherwise. Use GotoTree for templates constructed
// by other means.
type Builder struct {
	name     string
	states   []arbor.State
	alphabet []string
	finals   []arbor.State
	rules    []Rule
}

// NewBuilder creates a builder for a transducer with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// States declares states.
func (b *Builder) States(names ...string) *Builder {
	b.states = append(b.states, arbor.States(names...)...)
	return b
}

// Symbols declares symbols of the alphabet.
func (b *Builder) Symbols(labels ...string) *Builder {
	b.alphabet = append(b.alphabet, labels...)
	return b
}

// Finals declares accepting states.
func (b *Builder) Finals(names ...string) *Builder {
	b.finals = append(b.finals, arbor.States(names...)...)
	return b
}

// From starts a rule for nodes whose children reached the given states.
func (b *Builder) From(children ...string) *RuleBuilder {
	return &RuleBuilder{b: b, children: arbor.States(children...)}
}

// Leaf starts a rule for leaf nodes with a given label.
func (b *Builder) Leaf(label string) *RuleBuilder {
	return b.From().On(label)
}

// Rule adds a ready-made rule.
func (b *Builder) Rule(r Rule) *Builder {
	b.rules = append(b.rules, r)
	return b
}

// Transducer creates the transducer.
func (b *Builder) Transducer() *Transducer {
	return New(b.name, b.states, b.alphabet, b.finals, b.rules)
}

// RuleBuilder is an intermediate object for adding a rule to a Builder.
type RuleBuilder struct {
	b        *Builder
	children arbor.Tuple
	label    string
}

// On sets the node label for a rule.
func (rb *RuleBuilder) On(label string) *RuleBuilder {
	rb.label = label
	return rb
}

// Goto completes a rule with its target state and an output template in
// bracket notation, and adds it to the builder.
func (rb *RuleBuilder) Goto(target string, template string) *Builder {
	return rb.GotoTree(target, tree.MustParse(template))
}

// GotoTree completes a rule with its target state and an output template,
// and adds it to the builder.
func (rb *RuleBuilder) GotoTree(target string, template *tree.Tree) *Builder {
	return rb.b.Rule(Rule{
		Children: rb.children,
		Label:    rb.label,
		Target:   arbor.State(target),
		Output:   template,
	})
}
