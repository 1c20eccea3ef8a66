package grammars

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"io"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bottomup/dfa"
	"github.com/npillmayer/arbor/bottomup/dft"
	"github.com/npillmayer/arbor/tree"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Definition is the external form of an acceptor or transducer, as read
// from YAML:
//
//     name: reverse-anbn
//     states: [qa, qb, qS]
//     alphabet: [a, b, S]
//     finals: [qS]
//     rules:
//       - { label: a, target: qa, output: a }
//       - { label: b, target: qb, output: b }
//       - { children: [qa, qb], label: S, target: qS, output: "S[$1, $0]" }
//
// Outputs are templates in bracket notation. A definition is a transducer
// if at least one rule has an output.
type Definition struct {
	Name     string           `yaml:"name"`
	States   []string         `yaml:"states"`
	Alphabet []string         `yaml:"alphabet"`
	Finals   []string         `yaml:"finals"`
	Rules    []RuleDefinition `yaml:"rules"`
}

// RuleDefinition is the external form of a single transition.
type RuleDefinition struct {
	Children []string `yaml:"children,flow,omitempty"`
	Label    string   `yaml:"label"`
	Target   string   `yaml:"target"`
	Output   string   `yaml:"output,omitempty"`
}

// Load reads a definition in YAML format.
func Load(r io.Reader) (*Definition, error) {
	def := &Definition{}
	if err := yaml.NewDecoder(r).Decode(def); err != nil {
		return nil, errors.Wrap(err, "cannot decode grammar definition")
	}
	if def.Name == "" {
		return nil, errors.New("grammar definition has no name")
	}
	tracer().Debugf("loaded definition %s with %d rules", def.Name, len(def.Rules))
	return def, nil
}

// IsTransducer returns true if any rule of d carries an output template.
func (d *Definition) IsTransducer() bool {
	for _, r := range d.Rules {
		if r.Output != "" {
			return true
		}
	}
	return false
}

// Acceptor creates an acceptor from d. Output templates are ignored.
func (d *Definition) Acceptor() *dfa.Automaton {
	rules := make([]dfa.Rule, len(d.Rules))
	for i, r := range d.Rules {
		rules[i] = dfa.Rule{
			Children: arbor.States(r.Children...),
			Label:    r.Label,
			Target:   arbor.State(r.Target),
		}
	}
	return dfa.New(d.Name, arbor.States(d.States...), d.Alphabet, arbor.States(d.Finals...), rules)
}

// Transducer creates a transducer from d. It is an error for a rule to have
// no output, or an output which is not a tree in bracket notation.
func (d *Definition) Transducer() (*dft.Transducer, error) {
	rules := make([]dft.Rule, len(d.Rules))
	for i, r := range d.Rules {
		if r.Output == "" {
			return nil, errors.Errorf("%s: rule #%d (%s) has no output", d.Name, i, r.Label)
		}
		out, err := tree.Parse(r.Output)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: rule #%d (%s)", d.Name, i, r.Label)
		}
		rules[i] = dft.Rule{
			Children: arbor.States(r.Children...),
			Label:    r.Label,
			Target:   arbor.State(r.Target),
			Output:   out,
		}
	}
	return dft.New(d.Name, arbor.States(d.States...), d.Alphabet, arbor.States(d.Finals...), rules), nil
}

// AcceptorDefinition creates the external form of an acceptor.
func AcceptorDefinition(a *dfa.Automaton) *Definition {
	d := &Definition{
		Name:     a.Name(),
		States:   stateNames(a.States()),
		Alphabet: a.Alphabet(),
		Finals:   stateNames(a.Finals()),
	}
	for _, r := range a.Rules() {
		d.Rules = append(d.Rules, RuleDefinition{
			Children: stateNames(r.Children),
			Label:    r.Label,
			Target:   string(r.Target),
		})
	}
	return d
}

// TransducerDefinition creates the external form of a transducer.
func TransducerDefinition(dt *dft.Transducer) *Definition {
	d := &Definition{
		Name:     dt.Name(),
		States:   stateNames(dt.States()),
		Alphabet: dt.Alphabet(),
		Finals:   stateNames(dt.Finals()),
	}
	for _, r := range dt.Rules() {
		d.Rules = append(d.Rules, RuleDefinition{
			Children: stateNames(r.Children),
			Label:    r.Label,
			Target:   string(r.Target),
			Output:   r.Output.String(),
		})
	}
	return d
}

// Write writes d in YAML format.
func (d *Definition) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrapf(err, "cannot encode grammar definition %s", d.Name)
	}
	return enc.Close()
}

func stateNames(states []arbor.State) []string {
	if len(states) == 0 {
		return nil
	}
	names := make([]string, len(states))
	for i, q := range states {
		names[i] = string(q)
	}
	return names
}
