package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/tree"
)

// Result is the outcome of evaluating a tree node.
type Result struct {
	State  arbor.State // state reached, valid if OK
	OK     bool        // false if no transition applied to the node or one of its descendants
	Output *tree.Tree  // output of transducers, nil for acceptors
}

// Visitor is called for every node after all of its children have been
// visited. children holds the children's results, left to right.
type Visitor func(node *tree.Tree, children []Result) Result

// frame is an entry of the worklist: a node and the results of those of its
// children which are already done.
type frame struct {
	node    *tree.Tree
	results []Result
	next    int // next child to push
}

func newFrame(node *tree.Tree) *frame {
	return &frame{node: node, results: make([]Result, 0, len(node.Children))}
}

// Walk traverses a tree in post-order and calls visit for every node, exactly
// once, after its children. It returns the result for the root node.
//
// Walk uses an explicit stack instead of recursion, so the depth of trees is
// limited by available memory only. A nil root results in a failed result.
func Walk(root *tree.Tree, visit Visitor) Result {
	if root == nil {
		return Result{}
	}
	var result Result
	stack := arraystack.New()
	stack.Push(newFrame(root))
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.next < len(f.node.Children) {
			child := f.node.Children[f.next]
			f.next++
			if child == nil {
				tracer().Errorf("tree node %s has a nil child", f.node.Label)
				f.results = append(f.results, Result{})
				continue
			}
			stack.Push(newFrame(child))
			continue
		}
		stack.Pop()
		r := visit(f.node, f.results)
		if parent, ok := stack.Peek(); ok {
			p := parent.(*frame)
			p.results = append(p.results, r)
		} else {
			result = r
		}
	}
	return result
}

// Transition computes the result for a node whose children all succeeded.
// states holds the children's states.
type Transition func(node *tree.Tree, states arbor.Tuple, children []Result) Result

// Run evaluates a tree bottom-up. For every node, Run collects the children's
// states and reports a Step to the configuration. If any child has failed, the
// node fails without consulting transit. Otherwise the node's result is
// the result of transit.
func Run(root *tree.Tree, cfg *Config, transit Transition) Result {
	return Walk(root, func(node *tree.Tree, children []Result) Result {
		states := StatesOf(children)
		blocked := false
		for _, c := range children {
			blocked = blocked || !c.OK
		}
		cfg.report(Step{
			Node:     node,
			Label:    node.Symbol(),
			Children: states,
			Blocked:  blocked,
		})
		if blocked {
			return Result{}
		}
		return transit(node, states, children)
	})
}

// StatesOf extracts the tuple of states from a list of results. Failed
// results contribute the empty state.
func StatesOf(results []Result) arbor.Tuple {
	t := make(arbor.Tuple, len(results))
	for i, r := range results {
		if r.OK {
			t[i] = r.State
		}
	}
	return t
}
