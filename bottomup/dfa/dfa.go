package dfa

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bottomup"
	"github.com/npillmayer/arbor/tree"
)

// Rule is a single transition: a node labeled Label, the children of which
// reached the states in Children, reaches state Target.
type Rule struct {
	Children arbor.Tuple
	Label    string
	Target   arbor.State
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s → %s", r.Children, r.Label, r.Target)
}

// Automaton is a bottom-up deterministic finite-state acceptor for trees.
type Automaton struct {
	name     string
	states   *bottomup.Set
	alphabet *bottomup.Set
	finals   *bottomup.Set
	table    *bottomup.Table
	targets  []arbor.State // table values index into targets
}

func newAutomaton(name string, states []arbor.State, alphabet []string, finals []arbor.State) *Automaton {
	return &Automaton{
		name:     name,
		states:   bottomup.StateSet(states...),
		alphabet: bottomup.NewSet(alphabet...),
		finals:   bottomup.StateSet(finals...),
		table:    bottomup.NewTable(),
	}
}

// New creates an automaton from a list of rules. If more than one rule exists
// for the same children tuple and label, the last one wins.
//
// New does not check the rules for consistency with states and alphabet,
// see IsValid.
func New(name string, states []arbor.State, alphabet []string, finals []arbor.State,
	rules []Rule) *Automaton {
	//
	a := newAutomaton(name, states, alphabet, finals)
	for _, r := range rules {
		a.set(bottomup.KeyFor(r.Children, r.Label), r.Target)
	}
	tracer().Debugf("created automaton %s with %d transitions from %d rules",
		name, a.table.Len(), len(rules))
	return a
}

// FromMap creates an automaton from a transition map.
func FromMap(name string, states []arbor.State, alphabet []string, finals []arbor.State,
	transitions map[bottomup.Key]arbor.State) *Automaton {
	//
	a := newAutomaton(name, states, alphabet, finals)
	for k, target := range transitions {
		a.set(k, target)
	}
	return a
}

func (a *Automaton) set(k bottomup.Key, target arbor.State) {
	if v, ok := a.table.Value(k); ok {
		tracer().Debugf("%s: rule %s %s overrides → %s", a.name, k, target, a.targets[v])
		a.targets[v] = target
		return
	}
	a.targets = append(a.targets, target)
	a.table.Set(k, int32(len(a.targets)-1))
}

// Name returns the name of the automaton.
func (a *Automaton) Name() string {
	return a.name
}

// Transition looks up the state for a node with a given label, whose
// children reached the states in children.
func (a *Automaton) Transition(children arbor.Tuple, label string) (arbor.State, bool) {
	v, ok := a.table.Lookup(children, label)
	if !ok {
		return "", false
	}
	return a.targets[v], true
}

// Process evaluates a tree bottom-up and returns the state reached by the root
// node, if any. The state need not be accepting. Use Recognizes to test for
// acceptance.
//
// Placeholder nodes never match a transition.
func (a *Automaton) Process(t *tree.Tree, opts ...bottomup.Option) (arbor.State, bool) {
	cfg := bottomup.Configure(opts...)
	r := bottomup.Run(t, cfg, func(node *tree.Tree, states arbor.Tuple, _ []bottomup.Result) bottomup.Result {
		if node.Label.IsPlaceholder() {
			return bottomup.Result{}
		}
		q, ok := a.Transition(states, node.Symbol())
		return bottomup.Result{State: q, OK: ok}
	})
	return r.State, r.OK
}

// Recognizes returns true if the root of t reaches an accepting state.
func (a *Automaton) Recognizes(t *tree.Tree, opts ...bottomup.Option) bool {
	q, ok := a.Process(t, opts...)
	return ok && a.finals.ContainsState(q)
}

// Accepting returns true if q is an accepting state.
func (a *Automaton) Accepting(q arbor.State) bool {
	return a.finals.ContainsState(q)
}

// States returns the states of a, sorted.
func (a *Automaton) States() []arbor.State {
	return a.states.States()
}

// Alphabet returns the alphabet of a, sorted.
func (a *Automaton) Alphabet() []string {
	return a.alphabet.Values()
}

// Finals returns the accepting states of a, sorted.
func (a *Automaton) Finals() []arbor.State {
	return a.finals.States()
}

// Rules returns the transitions of a, sorted by label and children tuple.
func (a *Automaton) Rules() []Rule {
	rules := make([]Rule, 0, a.table.Len())
	a.table.Each(func(k bottomup.Key, v int32) {
		rules = append(rules, Rule{Children: k.Children(), Label: k.Label, Target: a.targets[v]})
	})
	return rules
}

// Size returns the number of transitions of a.
func (a *Automaton) Size() int {
	return a.table.Len()
}

// IsValid checks that every state used in a transition is a declared state and
// every label is a symbol of the alphabet. Violations are traced.
func (a *Automaton) IsValid() bool {
	valid := true
	for _, r := range a.Rules() {
		for _, q := range r.Children {
			if !a.states.ContainsState(q) {
				tracer().Infof("%s: rule %s uses undeclared state %q", a.name, r, q)
				valid = false
			}
		}
		if !a.alphabet.Contains(r.Label) {
			tracer().Infof("%s: rule %s uses symbol %q not in alphabet", a.name, r, r.Label)
			valid = false
		}
		if !a.states.ContainsState(r.Target) {
			tracer().Infof("%s: rule %s targets undeclared state %q", a.name, r, r.Target)
			valid = false
		}
	}
	return valid
}

func (a *Automaton) description() bottomup.Description {
	d := bottomup.Description{
		States:   a.states.Values(),
		Alphabet: a.alphabet.Values(),
		Finals:   a.finals.Values(),
	}
	a.table.Each(func(k bottomup.Key, v int32) {
		d.Rules = append(d.Rules, bottomup.NewEdge(k, string(a.targets[v]), ""))
	})
	return d
}

// Fingerprint returns a hash of the states, alphabet, accepting states and
// effective transitions of a. The name is not part of the fingerprint.
func (a *Automaton) Fingerprint() string {
	return bottomup.Fingerprint(a.description())
}

// ToGraphViz exports a to the Graphviz Dot format.
func (a *Automaton) ToGraphViz(w io.Writer) error {
	return bottomup.WriteGraphViz(w, a.name, a.description())
}

// TableAsHTML exports the transition table of a in HTML format.
func (a *Automaton) TableAsHTML(w io.Writer) error {
	return bottomup.TableAsHTML(w, a.name, a.table, func(v int32) string {
		return string(a.targets[v])
	})
}

func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<TreeBDFA %s>\n", a.name))
	b.WriteString(fmt.Sprintf("states: %s\n", a.states))
	b.WriteString(fmt.Sprintf("alphabet: %s\n", a.alphabet))
	b.WriteString(fmt.Sprintf("finals: %s\n", a.finals))
	b.WriteString("transitions:\n")
	for _, r := range a.Rules() {
		b.WriteString("    ")
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes the automaton to the tracer, at Debug level.
func (a *Automaton) Dump() {
	for _, line := range strings.Split(strings.TrimSpace(a.String()), "\n") {
		tracer().Debugf("%s", line)
	}
}
