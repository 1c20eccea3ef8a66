package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/arbor"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the bracket notation. Literal one-char tokens use their
// character value as token type.
const (
	tokEOF    = -1
	tokSymbol = -2 // bare symbol: N'
	tokString = -3 // quoted symbol: "N bar"
	tokVar    = -4 // placeholder: $0
)

// The tokens representing literal one-char lexemes
var literals = []string{"[", "]", ","}

var lexer *lexmachine.Lexer
var lexerError error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// bracketLexer returns the (compiled) lexer for bracket notation.
func bracketLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("Creating lexer for bracket notation")
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`"[^"]*"`), makeToken(tokString))
		lexer.Add([]byte(`\$[0-9]+`), makeToken(tokVar))
		lexer.Add([]byte(`([a-z]|[A-Z]|[0-9]|_|'|-|\?|\.|\*|\+|#|/|:|<|>|=|!|@|%|&|\^|~)+`),
			makeToken(tokSymbol))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
			lexer.Add([]byte(r), makeToken(int(lit[0])))
		}
		if lexerError = lexer.Compile(); lexerError != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerError)
		}
	})
	return lexer, lexerError
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// token is a very unsophisticated token type for bracket notation.
type token struct {
	kind   int
	lexeme string
	span   arbor.Span
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokSymbol, tokString, tokVar:
		return fmt.Sprintf("%q", t.lexeme)
	}
	return fmt.Sprintf("'%c'", rune(t.kind))
}

// --- Scanner ---------------------------------------------------------------

// scanner tokenizes an input string in bracket notation.
type scanner struct {
	scan  *lexmachine.Scanner
	input string
}

func newScanner(input string) (*scanner, error) {
	lex, err := bracketLexer()
	if err != nil {
		return nil, err
	}
	s, err := lex.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &scanner{scan: s, input: input}, nil
}

// nextToken returns the next token of the input, or a token of type tokEOF at
// the end of input. Unrecognized input results in an error.
func (sc *scanner) nextToken() (token, error) {
	tok, err, eof := sc.scan.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			span := arbor.Span{uint64(ui.StartTC), uint64(ui.FailTC)}
			sc.scan.TC = ui.FailTC
			return token{}, fmt.Errorf("unrecognized input %q at %s", sc.excerpt(span), span)
		}
		return token{}, err
	}
	if eof {
		end := uint64(len(sc.input))
		return token{kind: tokEOF, span: arbor.Span{end, end}}, nil
	}
	t := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | %s", t.Type, string(t.Lexeme))
	return token{
		kind:   t.Type,
		lexeme: string(t.Lexeme),
		span:   arbor.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}, nil
}

func (sc *scanner) excerpt(span arbor.Span) string {
	from, to := int(span.From()), int(span.To())
	if span.Len() == 0 {
		to = from + 1
	}
	if to > len(sc.input) {
		to = len(sc.input)
	}
	if from >= to {
		return ""
	}
	return sc.input[from:to]
}
