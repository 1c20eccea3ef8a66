package dfa

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor"
)

// Builder is used to create automata in a fluent style:
//
//     b := dfa.NewBuilder("G")
//     b.States("qN", "qNP").Symbols("N", "NP").Finals("qNP")
//     b.Leaf("N").Goto("qN")
//     b.From("qN").On("NP").Goto("qNP")
//     G := b.Automaton()
//
// Rules are collected in order; later rules for the same children tuple and
// label override earlier ones.
type Builder struct {
	name     string
	states   []arbor.State
	alphabet []string
	finals   []arbor.State
	rules    []Rule
}

// NewBuilder creates a builder for an automaton with a given name.
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
// Complete the rule with On(…).Goto(…).
func (b *Builder) From(children ...string) *RuleBuilder {
	return &RuleBuilder{b: b, children: arbor.States(children...)}
}

// Leaf starts a rule for leaf nodes with a given label.
// Complete the rule with Goto(…).
func (b *Builder) Leaf(label string) *RuleBuilder {
	return b.From().On(label)
}

// Rule adds a ready-made rule.
func (b *Builder) Rule(r Rule) *Builder {
	b.rules = append(b.rules, r)
	return b
}

// Automaton creates the automaton. The builder may be used further, but
// subsequent changes will not affect the automaton.
func (b *Builder) Automaton() *Automaton {
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

// Goto completes a rule with its target state and adds it to the builder.
func (rb *RuleBuilder) Goto(target string) *Builder {
	return rb.b.Rule(Rule{
		Children: rb.children,
		Label:    rb.label,
		Target:   arbor.State(target),
	})
}
