package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/arbor"
)

// Grammar of the bracket notation:
//
//     Tree     ::=  Label
//     Tree     ::=  Label '[' ']'
//     Tree     ::=  Label '[' Children ']'
//     Children ::=  Tree
//     Children ::=  Children ',' Tree
//     Label    ::=  symbol | string | placeholder
//
// The parser is a small shift-reduce machine with an explicit stack of open
// nodes, so nesting depth of the input is not limited by recursion.

// parser states, i.e. what the parser expects next
type expectation int

const (
	expectLabel        expectation = iota // after ',' or at start
	expectLabelOrClose                    // after '['
	expectAfterLabel                      // '[', ',', ']' or end of input
	expectAfterClose                      // ',', ']' or end of input
)

// Parse reads a tree in bracket notation, e.g.
//
//     S[a, S[a, b], b]
//
// Placeholders are written as $0, $1, …, and labels containing characters
// other than letters, digits and a few punctuation characters have to be
// enclosed in double quotes. Placeholders cannot have children.
func Parse(input string) (*Tree, error) {
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	var root, last *Tree
	var open []*Tree         // stack of nodes with unclosed '['
	var brackets []arbor.Span // positions of unclosed '['
	expect := expectLabel
	for {
		tok, err := sc.nextToken()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokSymbol, tokString, tokVar:
			if expect == expectAfterLabel || expect == expectAfterClose {
				return nil, syntaxError(tok, "',' or ']'")
			}
			node, err := nodeFor(tok)
			if err != nil {
				return nil, err
			}
			if len(open) == 0 {
				root = node
			} else {
				parent := open[len(open)-1]
				parent.Children = append(parent.Children, node)
			}
			last, expect = node, expectAfterLabel
		case '[':
			if expect == expectAfterClose {
				return nil, syntaxError(tok, "',' or ']'")
			}
			if expect != expectAfterLabel {
				return nil, syntaxError(tok, "label")
			}
			if last.Label.IsPlaceholder() {
				return nil, fmt.Errorf("placeholder %s at %s cannot have children", last.Label, tok.span)
			}
			open = append(open, last)
			brackets = append(brackets, tok.span)
			expect = expectLabelOrClose
		case ',':
			if (expect != expectAfterLabel && expect != expectAfterClose) || len(open) == 0 {
				return nil, syntaxError(tok, "label")
			}
			expect = expectLabel
		case ']':
			if expect == expectLabel || len(open) == 0 {
				return nil, syntaxError(tok, "label")
			}
			last = open[len(open)-1]
			open = open[:len(open)-1]
			brackets = brackets[:len(brackets)-1]
			expect = expectAfterClose
		case tokEOF:
			if expect == expectLabel && tok.span.IsNull() {
				return nil, fmt.Errorf("empty input")
			}
			if expect != expectAfterLabel && expect != expectAfterClose {
				return nil, syntaxError(tok, "label")
			}
			if len(open) > 0 {
				unclosed := brackets[len(brackets)-1].Extend(tok.span)
				return nil, fmt.Errorf("syntax error at %s: unclosed '[' of %s", unclosed, open[len(open)-1].Label)
			}
			tracer().Debugf("parsed tree %s", root)
			return root, nil
		default:
			return nil, syntaxError(tok, "label")
		}
	}
}

// MustParse is like Parse, but panics if the input cannot be parsed.
// It is intended for static grammar data.
func MustParse(input string) *Tree {
	t, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("tree: cannot parse %q: %v", input, err))
	}
	return t
}

func nodeFor(tok token) (*Tree, error) {
	switch tok.kind {
	case tokString:
		return New(tok.lexeme[1 : len(tok.lexeme)-1]), nil
	case tokVar:
		inx, err := strconv.Atoi(tok.lexeme[1:])
		if err != nil {
			return nil, fmt.Errorf("illegal placeholder %s at %s: %v", tok.lexeme, tok.span, err)
		}
		return Var(inx), nil
	}
	return New(tok.lexeme), nil
}

func syntaxError(tok token, expected string) error {
	return fmt.Errorf("syntax error at %s: expected %s, have %s", tok.span, expected, tok)
}
