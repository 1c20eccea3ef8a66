package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/arbor/bottomup"
	"github.com/npillmayer/arbor/bottomup/dfa"
	"github.com/npillmayer/arbor/bottomup/dft"
	"github.com/npillmayer/arbor/grammars"
	"github.com/npillmayer/arbor/tree"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	acceptor   *dfa.Automaton
	transducer *dft.Transducer // may be nil
	debug      bool
	lastTree   *tree.Tree
	lastOutput *tree.Tree
	ws         *Workspace // named trees
}

// command is a REPL command, given on a line starting with ':'.
type command func(intp *Intp, args []string) (bool, error)

var commands map[string]command

func init() {
	commands = map[string]command{
		"quit":       func(*Intp, []string) (bool, error) { return true, nil },
		"grammar":    (*Intp).cmdGrammar,
		"transducer": (*Intp).cmdTransducer,
		"sample":     (*Intp).cmdSample,
		"list":       (*Intp).cmdList,
		"dump":       (*Intp).cmdDump,
		"valid":      (*Intp).cmdValid,
		"debug":      (*Intp).cmdDebug,
		"dot":        (*Intp).cmdDot,
		"html":       (*Intp).cmdHTML,
		"let":        (*Intp).cmdLet,
		"eval":       (*Intp).cmdEvalName,
		"names":      (*Intp).cmdNames,
		"load":       (*Intp).cmdLoad,
		"save":       (*Intp).cmdSave,
	}
}

// Eval evaluates a line of input, either a command or a tree in bracket notation.
// It returns true if the user requested to quit.
//
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		args := strings.Fields(line[1:])
		if len(args) == 0 {
			return intp.fail(fmt.Errorf("missing command after ':'"))
		}
		cmd, ok := commands[args[0]]
		if !ok {
			return intp.fail(fmt.Errorf("unknown command :%s", args[0]))
		}
		quit, err := cmd(intp, args[1:])
		if err != nil {
			return intp.fail(err)
		}
		return quit, nil
	}
	t, err := tree.Parse(line)
	if err != nil {
		return intp.fail(err)
	}
	if err = intp.evaluate(t); err != nil {
		return intp.fail(err)
	}
	return false, nil
}

func (intp *Intp) fail(err error) (bool, error) {
	pterm.Error.Println(err.Error())
	return false, err
}

// evaluate runs the current acceptor and transducer on a tree and prints the
// results.
func (intp *Intp) evaluate(t *tree.Tree) error {
	intp.lastTree, intp.lastOutput = t, nil
	printTree("input", t)
	opts := []bottomup.Option{bottomup.Debug(intp.debug)}
	if q, ok := intp.acceptor.Process(t, opts...); !ok {
		pterm.Info.Println(fmt.Sprintf("%s: no match", intp.acceptor.Name()))
	} else if intp.acceptor.Accepting(q) {
		pterm.Info.Println(fmt.Sprintf("%s: accepted in state %s", intp.acceptor.Name(), q))
	} else {
		pterm.Info.Println(fmt.Sprintf("%s: rejected in state %s", intp.acceptor.Name(), q))
	}
	if intp.transducer == nil {
		return nil
	}
	q, out, ok := intp.transducer.Process(t, opts...)
	switch {
	case !ok:
		pterm.Info.Println(fmt.Sprintf("%s: no match", intp.transducer.Name()))
	case !intp.transducer.Accepting(q):
		pterm.Info.Println(fmt.Sprintf("%s: no output, state %s is not accepting", intp.transducer.Name(), q))
	default:
		intp.lastOutput = out
		if _, err := intp.workspace().Define(lastOutputName, out.Copy()); err != nil {
			return err
		}
		pterm.Info.Println(fmt.Sprintf("%s: %s", intp.transducer.Name(), out))
		printTree("output", out)
	}
	return nil
}

// --- Commands --------------------------------------------------------------

func (intp *Intp) selectGrammar(name string) error {
	G, ok := grammars.Acceptors[name]
	if !ok {
		return fmt.Errorf("no acceptor named %q", name)
	}
	intp.acceptor = G()
	return nil
}

func (intp *Intp) selectTransducer(name string) error {
	if name == "none" || name == "" {
		intp.transducer = nil
		return nil
	}
	T, ok := grammars.Transducers[name]
	if !ok {
		return fmt.Errorf("no transducer named %q", name)
	}
	intp.transducer = T()
	return nil
}

func (intp *Intp) cmdGrammar(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: :grammar name")
	}
	if err := intp.selectGrammar(args[0]); err != nil {
		return false, err
	}
	pterm.Info.Println(fmt.Sprintf("acceptor is %s", intp.acceptor.Name()))
	return false, nil
}

func (intp *Intp) cmdTransducer(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: :transducer name|none")
	}
	if err := intp.selectTransducer(args[0]); err != nil {
		return false, err
	}
	if intp.transducer != nil {
		pterm.Info.Println(fmt.Sprintf("transducer is %s", intp.transducer.Name()))
	}
	return false, nil
}

func (intp *Intp) cmdSample(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: :sample name")
	}
	t := grammars.Sample(args[0])
	if t == nil {
		return false, fmt.Errorf("no sample named %q", args[0])
	}
	return false, intp.evaluate(t)
}

func (intp *Intp) cmdList([]string) (bool, error) {
	pterm.Info.Println("acceptors:   " + strings.Join(sortedKeys(grammars.Acceptors), ", "))
	pterm.Info.Println("transducers: " + strings.Join(sortedKeys(grammars.Transducers), ", "))
	pterm.Info.Println("samples:     " + strings.Join(grammars.SampleNames(), ", "))
	return false, nil
}

func (intp *Intp) cmdDump([]string) (bool, error) {
	pterm.Println(intp.acceptor.String())
	if intp.transducer != nil {
		pterm.Println(intp.transducer.String())
	}
	return false, nil
}

func (intp *Intp) cmdValid([]string) (bool, error) {
	if !intp.acceptor.IsValid() {
		return false, fmt.Errorf("acceptor %s is not valid", intp.acceptor.Name())
	}
	if intp.transducer != nil && !intp.transducer.IsValid() {
		return false, fmt.Errorf("transducer %s is not valid", intp.transducer.Name())
	}
	pterm.Info.Println("valid")
	return false, nil
}

func (intp *Intp) cmdDebug(args []string) (bool, error) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return false, fmt.Errorf("usage: :debug on|off")
	}
	intp.debug = args[0] == "on"
	return false, nil
}

// :load file.yaml
func (intp *Intp) cmdLoad(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: :load file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return false, err
	}
	defer f.Close()
	def, err := grammars.Load(f)
	if err != nil {
		return false, err
	}
	if def.IsTransducer() {
		T, err := def.Transducer()
		if err != nil {
			return false, err
		}
		intp.transducer = T
		pterm.Info.Println(fmt.Sprintf("transducer is %s", T.Name()))
		return false, nil
	}
	intp.acceptor = def.Acceptor()
	pterm.Info.Println(fmt.Sprintf("acceptor is %s", intp.acceptor.Name()))
	return false, nil
}

// :save file.yaml writes the current transducer, or the acceptor if there is none.
func (intp *Intp) cmdSave(args []string) (bool, error) {
	def := grammars.AcceptorDefinition(intp.acceptor)
	if intp.transducer != nil {
		def = grammars.TransducerDefinition(intp.transducer)
	}
	return false, exportTo(args, def.Write)
}

// :dot [acceptor|transducer] file
func (intp *Intp) cmdDot(args []string) (bool, error) {
	args, useTransducer, err := intp.exportTarget(args)
	if err != nil {
		return false, err
	}
	if useTransducer {
		return false, exportTo(args, intp.transducer.ToGraphViz)
	}
	return false, exportTo(args, intp.acceptor.ToGraphViz)
}

// :html [acceptor|transducer] file
func (intp *Intp) cmdHTML(args []string) (bool, error) {
	args, useTransducer, err := intp.exportTarget(args)
	if err != nil {
		return false, err
	}
	if useTransducer {
		return false, exportTo(args, intp.transducer.TableAsHTML)
	}
	return false, exportTo(args, intp.acceptor.TableAsHTML)
}

// exportTarget strips an optional 'acceptor' or 'transducer' argument.
func (intp *Intp) exportTarget(args []string) ([]string, bool, error) {
	if len(args) != 2 {
		return args, false, nil
	}
	switch args[0] {
	case "acceptor":
		return args[1:], false, nil
	case "transducer":
		if intp.transducer == nil {
			return nil, false, fmt.Errorf("no transducer selected")
		}
		return args[1:], true, nil
	}
	return nil, false, fmt.Errorf("cannot export %q, expected acceptor or transducer", args[0])
}

func exportTo(args []string, export func(io.Writer) error) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: :dot|:html [acceptor|transducer] filename, :save filename")
	}
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err = export(f); err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("written to %s", args[0]))
	return nil
}

func sortedKeys(m interface{}) []string {
	var keys []string
	switch mm := m.(type) {
	case map[string]func() *dfa.Automaton:
		for k := range mm {
			keys = append(keys, k)
		}
	case map[string]func() *dft.Transducer:
		for k := range mm {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
