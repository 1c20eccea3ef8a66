package dft

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
// reached the states in Children, reaches state Target and outputs the
// template Output, instantiated with the children's outputs.
type Rule struct {
	Children arbor.Tuple
	Label    string
	Target   arbor.State
	Output   *tree.Tree
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s → %s, %s", r.Children, r.Label, r.Target, r.Output)
}

// Result is the right hand side of a transition: a state and an output template.
type Result struct {
	State    arbor.State
	Template *tree.Tree
}

// Transducer is a bottom-up deterministic finite-state transducer for trees.
type Transducer struct {
	name     string
	states   *bottomup.Set
	alphabet *bottomup.Set
	finals   *bottomup.Set
	table    *bottomup.Table
	results  []Result // table values index into results
}

func newTransducer(name string, states []arbor.State, alphabet []string, finals []arbor.State) *Transducer {
	return &Transducer{
		name:     name,
		states:   bottomup.StateSet(states...),
		alphabet: bottomup.NewSet(alphabet...),
		finals:   bottomup.StateSet(finals...),
		table:    bottomup.NewTable(),
	}
}

// New creates a transducer from a list of rules. If more than one rule exists
// for the same children tuple and label, the last one wins.
//
// Templates are copied, so clients may re-use them.
func New(name string, states []arbor.State, alphabet []string, finals []arbor.State,
	rules []Rule) *Transducer {
	//
	dt := newTransducer(name, states, alphabet, finals)
	for _, r := range rules {
		dt.set(bottomup.KeyFor(r.Children, r.Label), Result{State: r.Target, Template: r.Output})
	}
	tracer().Debugf("created transducer %s with %d transitions from %d rules",
		name, dt.table.Len(), len(rules))
	return dt
}

// FromMap creates a transducer from a transition map.
func FromMap(name string, states []arbor.State, alphabet []string, finals []arbor.State,
	transitions map[bottomup.Key]Result) *Transducer {
	//
	dt := newTransducer(name, states, alphabet, finals)
	for k, r := range transitions {
		dt.set(k, r)
	}
	return dt
}

func (dt *Transducer) set(k bottomup.Key, r Result) {
	r.Template = r.Template.Copy()
	if v, ok := dt.table.Value(k); ok {
		tracer().Debugf("%s: rule %s %s overrides → %s", dt.name, k, r.State, dt.results[v].State)
		dt.results[v] = r
		return
	}
	dt.results = append(dt.results, r)
	dt.table.Set(k, int32(len(dt.results)-1))
}

// Name returns the name of the transducer.
func (dt *Transducer) Name() string {
	return dt.name
}

// Transition looks up state and template for a node with a given label, whose
// children reached the states in children. The template must not be modified.
func (dt *Transducer) Transition(children arbor.Tuple, label string) (Result, bool) {
	v, ok := dt.table.Lookup(children, label)
	if !ok {
		return Result{}, false
	}
	return dt.results[v], true
}

// Process evaluates a tree bottom-up and returns the state reached by the root
// node together with its output, if any. The state need not be accepting; use
// Transform to get outputs for accepting states only.
func (dt *Transducer) Process(t *tree.Tree, opts ...bottomup.Option) (arbor.State, *tree.Tree, bool) {
	cfg := bottomup.Configure(opts...)
	r := bottomup.Run(t, cfg, func(node *tree.Tree, states arbor.Tuple, children []bottomup.Result) bottomup.Result {
		if node.Label.IsPlaceholder() {
			return bottomup.Result{}
		}
		res, ok := dt.Transition(states, node.Symbol())
		if !ok {
			return bottomup.Result{}
		}
		outputs := make([]*tree.Tree, len(children))
		for i, c := range children {
			outputs[i] = c.Output
		}
		out, ok := substitute(res.Template, outputs)
		if !ok {
			tracer().Infof("%s: cannot instantiate %s for %s %s", dt.name, res.Template, states, node.Symbol())
			return bottomup.Result{}
		}
		return bottomup.Result{State: res.State, OK: true, Output: out}
	})
	if !r.OK {
		return "", nil, false
	}
	return r.State, r.Output, true
}

// Transform returns the output for a tree if its root reaches an accepting
// state. Otherwise it returns false.
func (dt *Transducer) Transform(t *tree.Tree, opts ...bottomup.Option) (*tree.Tree, bool) {
	q, out, ok := dt.Process(t, opts...)
	if !ok || !dt.finals.ContainsState(q) {
		return nil, false
	}
	return out, true
}

// Accepting returns true if q is an accepting state.
func (dt *Transducer) Accepting(q arbor.State) bool {
	return dt.finals.ContainsState(q)
}

// States returns the states of dt, sorted.
func (dt *Transducer) States() []arbor.State {
	return dt.states.States()
}

// Alphabet returns the alphabet of dt, sorted.
func (dt *Transducer) Alphabet() []string {
	return dt.alphabet.Values()
}

// Finals returns the accepting states of dt, sorted.
func (dt *Transducer) Finals() []arbor.State {
	return dt.finals.States()
}

// Rules returns the transitions of dt, sorted by label and children tuple.
// Templates are copies.
func (dt *Transducer) Rules() []Rule {
	rules := make([]Rule, 0, dt.table.Len())
	dt.table.Each(func(k bottomup.Key, v int32) {
		r := dt.results[v]
		rules = append(rules, Rule{
			Children: k.Children(),
			Label:    k.Label,
			Target:   r.State,
			Output:   r.Template.Copy(),
		})
	})
	return rules
}

// Size returns the number of transitions of dt.
func (dt *Transducer) Size() int {
	return dt.table.Len()
}

// IsValid checks that every state used in a transition is a declared state,
// every label is a symbol of the alphabet, and every template is well formed:
// placeholders are leaves and refer to existing children. Violations are traced.
func (dt *Transducer) IsValid() bool {
	valid := true
	for _, r := range dt.Rules() {
		for _, q := range r.Children {
			if !dt.states.ContainsState(q) {
				tracer().Infof("%s: rule %s uses undeclared state %q", dt.name, r, q)
				valid = false
			}
		}
		if !dt.alphabet.Contains(r.Label) {
			tracer().Infof("%s: rule %s uses symbol %q not in alphabet", dt.name, r, r.Label)
			valid = false
		}
		if !dt.states.ContainsState(r.Target) {
			tracer().Infof("%s: rule %s targets undeclared state %q", dt.name, r, r.Target)
			valid = false
		}
		if !validTemplate(r.Output, len(r.Children)) {
			tracer().Infof("%s: rule %s has an invalid template", dt.name, r)
			valid = false
		}
	}
	return valid
}

func validTemplate(tmpl *tree.Tree, arity int) bool {
	if tmpl == nil {
		return false
	}
	if tmpl.Label.IsPlaceholder() {
		return tmpl.IsLeaf() && tmpl.Label.Index() < arity
	}
	for _, c := range tmpl.Children {
		if !validTemplate(c, arity) {
			return false
		}
	}
	return true
}

func (dt *Transducer) description() bottomup.Description {
	d := bottomup.Description{
		States:   dt.states.Values(),
		Alphabet: dt.alphabet.Values(),
		Finals:   dt.finals.Values(),
	}
	dt.table.Each(func(k bottomup.Key, v int32) {
		r := dt.results[v]
		d.Rules = append(d.Rules, bottomup.NewEdge(k, string(r.State), r.Template.String()))
	})
	return d
}

// Fingerprint returns a hash of the states, alphabet, accepting states and
// effective transitions of dt, including templates. The name is not part of
// the fingerprint.
func (dt *Transducer) Fingerprint() string {
	return bottomup.Fingerprint(dt.description())
}

// ToGraphViz exports dt to the Graphviz Dot format.
func (dt *Transducer) ToGraphViz(w io.Writer) error {
	return bottomup.WriteGraphViz(w, dt.name, dt.description())
}

// TableAsHTML exports the transition table of dt in HTML format.
func (dt *Transducer) TableAsHTML(w io.Writer) error {
	return bottomup.TableAsHTML(w, dt.name, dt.table, func(v int32) string {
		r := dt.results[v]
		return fmt.Sprintf("%s, %s", r.State, r.Template)
	})
}

func (dt *Transducer) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<TreeBDFT %s>\n", dt.name))
	b.WriteString(fmt.Sprintf("states: %s\n", dt.states))
	b.WriteString(fmt.Sprintf("alphabet: %s\n", dt.alphabet))
	b.WriteString(fmt.Sprintf("finals: %s\n", dt.finals))
	b.WriteString("transitions:\n")
	for _, r := range dt.Rules() {
		b.WriteString("    ")
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes the transducer to the tracer, at Debug level.
func (dt *Transducer) Dump() {
	for _, line := range strings.Split(strings.TrimSpace(dt.String()), "\n") {
		tracer().Debugf("%s", line)
	}
}
