package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/arbor/tree"
	"github.com/pterm/pterm"
)

// Workspace holds trees by name, for re-use in later commands. The name 'it'
// is bound to the most recent transducer output.
type Workspace struct {
	Table map[string]*tree.Tree
}

// lastOutputName is the name of the most recent transducer output.
const lastOutputName = "it"

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{Table: make(map[string]*tree.Tree)}
}

// Resolve finds a tree by name. Returns nil if no tree has been defined
// under this name.
func (ws *Workspace) Resolve(name string) *tree.Tree {
	return ws.Table[name]
}

// Define stores a tree under a name. Overwrites an existing tree with this
// name, if any, and returns the previously stored tree (or nil).
// Names may not be empty.
func (ws *Workspace) Define(name string, t *tree.Tree) (*tree.Tree, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name of tree may not be empty")
	}
	old := ws.Table[name]
	ws.Table[name] = t
	return old, nil
}

// Names returns all names defined, sorted.
func (ws *Workspace) Names() []string {
	names := make([]string, 0, len(ws.Table))
	for n := range ws.Table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// --- Commands --------------------------------------------------------------

// :let name tree
func (intp *Intp) cmdLet(args []string) (bool, error) {
	if len(args) < 2 {
		return false, fmt.Errorf("usage: :let name tree")
	}
	t, err := tree.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return false, err
	}
	if old, err := intp.workspace().Define(args[0], t); err != nil {
		return false, err
	} else if old != nil {
		tracer().Infof("%s was %s", args[0], old)
	}
	return false, nil
}

// :eval name
func (intp *Intp) cmdEvalName(args []string) (bool, error) {
	if len(args) != 1 {
		return false, fmt.Errorf("usage: :eval name")
	}
	t := intp.workspace().Resolve(args[0])
	if t == nil {
		return false, fmt.Errorf("no tree named %q", args[0])
	}
	return false, intp.evaluate(t.Copy())
}

// :names
func (intp *Intp) cmdNames([]string) (bool, error) {
	ws := intp.workspace()
	for _, n := range ws.Names() {
		pterm.Info.Println(fmt.Sprintf("%s = %s", n, ws.Resolve(n)))
	}
	return false, nil
}

func (intp *Intp) workspace() *Workspace {
	if intp.ws == nil {
		intp.ws = NewWorkspace()
	}
	return intp.ws
}
