package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// --- Labels ----------------------------------------------------------------

// Label is the payload of a tree node. It is either a literal symbol or a
// placeholder, which stands for the output of the child at position Index().
// Placeholders are used within output templates of transducers only.
type Label struct {
	symbol string
	slot   int // -1 for literals
}

// Literal creates a label for a literal symbol.
func Literal(symbol string) Label {
	return Label{symbol: symbol, slot: -1}
}

// Placeholder creates a label for the output of child number inx (0-based).
func Placeholder(inx int) Label {
	if inx < 0 {
		panic(fmt.Sprintf("tree.Placeholder() with index < 0: %d", inx))
	}
	return Label{slot: inx}
}

// IsPlaceholder returns true for placeholder labels.
func (l Label) IsPlaceholder() bool {
	return l.slot >= 0
}

// Index returns the child position of a placeholder, or -1 for literals.
func (l Label) Index() int {
	if l.slot < 0 {
		return -1
	}
	return l.slot
}

// Symbol returns the symbol of a literal label, or "" for placeholders.
func (l Label) Symbol() string {
	return l.symbol
}

func (l Label) String() string {
	if l.IsPlaceholder() {
		return "$" + strconv.Itoa(l.slot)
	}
	if isBareSymbol(l.symbol) {
		return l.symbol
	}
	return `"` + l.symbol + `"`
}

// --- Trees -----------------------------------------------------------------

// Tree is an ordered tree of labeled nodes. A tree exclusively owns its
// children; subtrees are never shared between trees.
//
// Trees are not modified after construction, except by AddSubtree during
// ad-hoc assembly.
type Tree struct {
	Label    Label
	Children []*Tree
}

// New creates a node with a literal label and an optional list of children.
func New(symbol string, children ...*Tree) *Tree {
	return &Tree{
		Label:    Literal(symbol),
		Children: children,
	}
}

// Var creates a placeholder leaf for the output of child number inx.
func Var(inx int) *Tree {
	return &Tree{Label: Placeholder(inx)}
}

// FromList constructs a tree from a list of form
//
//     label, child1, child2, …
//
// similar to Lisp S-expressions. Strings will become literal labels, ints
// will become placeholders. Children are either single labels (leafs),
// *Tree values, or nested lists of type []interface{}, the first entry of which
// is the label of the subtree. Example:
//
//     FromList("NP", "N", 0)                                     // NP[N, $0]
//     FromList("a", []interface{}{"b", "c", []interface{}{"d"}}) // a[b[c, d]]
//
func FromList(nodes ...interface{}) (*Tree, error) {
	if len(nodes) < 1 {
		return nil, errors.New("tree level cannot be empty")
	}
	var t *Tree
	switch l := nodes[0].(type) {
	case string:
		t = New(l)
	case int:
		if l < 0 {
			return nil, fmt.Errorf("placeholder index must not be negative: %d", l)
		}
		t = Var(l)
	default:
		return nil, fmt.Errorf("illegal tree label %v of type %T", l, l)
	}
	for _, n := range nodes[1:] {
		var child *Tree
		var err error
		switch c := n.(type) {
		case *Tree:
			child = c
		case []interface{}:
			child, err = FromList(c...)
		default:
			child, err = FromList(c)
		}
		if err != nil {
			return nil, err
		}
		t.Children = append(t.Children, child)
	}
	if t.Label.IsPlaceholder() && len(t.Children) > 0 {
		return nil, fmt.Errorf("placeholder %s cannot have children", t.Label)
	}
	return t, nil
}

// Symbol returns the literal symbol of the root node, or "" for placeholders.
func (t *Tree) Symbol() string {
	return t.Label.Symbol()
}

// IsLeaf returns true if t has no children.
func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// AddSubtree adds the given subtree as the last (rightmost) child of this tree.
// Returns t (for chaining).
func (t *Tree) AddSubtree(subtree *Tree) *Tree {
	t.Children = append(t.Children, subtree)
	return t
}

// Size returns the number of nodes contained in the tree.
func (t *Tree) Size() int {
	n := 1
	for _, c := range t.Children {
		n += c.Size()
	}
	return n
}

// Depth returns the depth of the tree, where a single root node has depth 0
// and each additional level adds 1 to the depth.
func (t *Tree) Depth() int {
	d := 0
	for _, c := range t.Children {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}

// Width returns the width of the tree, defined as the largest number of children
// of any node in the tree, or 0 in the case of a single root node.
func (t *Tree) Width() int {
	w := len(t.Children)
	for _, c := range t.Children {
		if cw := c.Width(); cw > w {
			w = cw
		}
	}
	return w
}

// Yield returns the string formed by concatenating all leaf labels of the tree,
// from left to right.
func (t *Tree) Yield() string {
	var b strings.Builder
	t.yield(&b)
	return b.String()
}

func (t *Tree) yield(b *strings.Builder) {
	if t.IsLeaf() {
		if t.Label.IsPlaceholder() {
			b.WriteString(t.Label.String())
		} else {
			b.WriteString(t.Label.Symbol())
		}
		return
	}
	for _, c := range t.Children {
		c.yield(b)
	}
}

// Gorn returns the subtree at a given Gorn address, i.e. a path of child
// positions starting at the root. The empty address denotes t itself.
// Returns nil if the address does not exist within t.
func (t *Tree) Gorn(addr ...int) *Tree {
	node := t
	for _, i := range addr {
		if i < 0 || i >= len(node.Children) {
			return nil
		}
		node = node.Children[i]
	}
	return node
}

// Equal compares two trees structurally: labels (including placeholder-ness)
// and children, position by position.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Label != other.Label || len(t.Children) != len(other.Children) {
		return false
	}
	for i, c := range t.Children {
		if !c.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of t.
func (t *Tree) Copy() *Tree {
	if t == nil {
		return nil
	}
	cp := &Tree{Label: t.Label}
	if len(t.Children) > 0 {
		cp.Children = make([]*Tree, len(t.Children))
		for i, c := range t.Children {
			cp.Children[i] = c.Copy()
		}
	}
	return cp
}

// String returns t in bracket notation, e.g. "S[a, S[a, b], b]".
func (t *Tree) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	b.WriteString(t.Label.String())
	if len(t.Children) == 0 {
		return
	}
	b.WriteByte('[')
	for i, c := range t.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.write(b)
	}
	b.WriteByte(']')
}

// isBareSymbol returns true if a symbol may be written without quotes.
// This mirrors the symbol token of the bracket notation scanner.
func isBareSymbol(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune(symbolPunctuation, r):
		default:
			return false
		}
	}
	return true
}

// symbolPunctuation lists the non-alphanumeric characters allowed in bare symbols.
const symbolPunctuation = "_'-?.*+#/:<>=!@%&^~"
