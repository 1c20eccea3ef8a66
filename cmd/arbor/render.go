package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/arbor/tree"
	"github.com/pterm/pterm"
)

// printTree displays a tree on the terminal.
func printTree(title string, t *tree.Tree) {
	pterm.Println(title)
	ll := leveledList(t)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// leveledList flattens a tree in pre-order, with every node's depth as its level.
func leveledList(t *tree.Tree) pterm.LeveledList {
	type entry struct {
		node  *tree.Tree
		level int
	}
	var ll pterm.LeveledList
	if t == nil {
		return ll
	}
	stack := []entry{{t, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ll = append(ll, pterm.LeveledListItem{
			Level: e.level,
			Text:  e.node.Label.String(),
		})
		for i := len(e.node.Children) - 1; i >= 0; i-- { // push right to left
			stack = append(stack, entry{e.node.Children[i], e.level + 1})
		}
	}
	return ll
}
