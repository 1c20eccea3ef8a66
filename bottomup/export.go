package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// WriteGraphViz exports an automaton to the Graphviz Dot format.
//
// Bottom-up automata are hypergraphs: a transition connects a tuple of states
// to a target state. Every transition is drawn as a box, labeled with its
// node label (and output template, if any), with numbered edges from the
// children states and an edge to the target state. Accepting states are
// filled gray.
func WriteGraphViz(w io.Writer, name string, d Description) error {
	finals := NewSet(d.Finals...)
	states := NewSet(d.States...)
	for _, e := range d.Rules { // include undeclared states
		for _, s := range e.Children() {
			states.Add(string(s))
		}
		states.Add(e.Target)
	}
	ids := make(map[string]string, states.Size())
	var b strings.Builder
	b.WriteString(fmt.Sprintf("digraph %q {\n", name))
	b.WriteString(`graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=ellipse, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for i, s := range states.Values() {
		ids[s] = fmt.Sprintf("s%03d", i)
		b.WriteString(fmt.Sprintf("%s [fillcolor=%s label=\"%s\"]\n",
			ids[s], nodecolor(finals.Contains(s)), dotEscape(s)))
	}
	for i, e := range d.Rules {
		r := fmt.Sprintf("r%03d", i)
		label := e.Label
		if e.Output != "" {
			label = e.Label + " / " + e.Output
		}
		b.WriteString(fmt.Sprintf("%s [shape=box fillcolor=white label=\"%s\"]\n", r, dotEscape(label)))
		for j, s := range e.Children() {
			b.WriteString(fmt.Sprintf("%s -> %s [label=\"%d\"]\n", ids[string(s)], r, j))
		}
		b.WriteString(fmt.Sprintf("%s -> %s\n", r, ids[e.Target]))
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func nodecolor(accept bool) string {
	if accept {
		return "lightgray"
	}
	return "white"
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// TableAsHTML exports a transition table in HTML format. Rows are children
// tuples, columns are labels. cell formats the value of a table entry.
func TableAsHTML(w io.Writer, name string, t *Table, cell func(int32) string) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString(fmt.Sprintf("%s table with %d entries<p>", html.EscapeString(name), t.Len()))
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	labels := t.Labels()
	for _, l := range labels {
		b.WriteString(fmt.Sprintf("<td>%s</td>", html.EscapeString(l)))
	}
	b.WriteString("</tr>\n")
	var td string // table cell
	for _, tuple := range t.Tuples() {
		b.WriteString(fmt.Sprintf("<tr><td>%s</td>\n", html.EscapeString(tuple.String())))
		for _, l := range labels {
			if v, ok := t.Lookup(tuple, l); ok {
				td = html.EscapeString(cell(v))
			} else {
				td = "&nbsp;"
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
