/*
Package scan implements the tokenizer for logic notation.

A formula string is split into a flat stream of tokens with source
positions. ASCII operator aliases are accepted and normalized to their
Unicode canonical spelling in the emitted token values, so downstream
packages only ever see one spelling per operator:

   forall → ∀    exists → ∃    ! ~ → ¬    & → ∧    | → ∨
   ->  → →       <-> → ↔       <= → ≤     >= → ≥   != → ≠

Multi-character operators are matched longest-first, so `<->` is never
split into `<` followed by `->`.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to fol.scan .
func tracer() tracing.Trace {
	return tracing.Select("fol.scan")
}

// TokenType classifies a token.
type TokenType int8

// The closed set of token types.
const (
	EOI        TokenType = iota // end of input
	Quantifier                  // ∀ or ∃
	Connective                  // ¬ ∧ ∨ → ↔
	LParen                      // (
	RParen                      // )
	Comma                       // ,
	Variable                    // single letter plus optional digits
	Ident                       // predicate, constant or function name
	DomainSym                   // ℝ ℤ ℚ ℕ ℂ
	Membership                  // ∈ ∉
	Comparison                  // < ≤ > ≥ = ≠
	Number                      // numeric literal
)

func (tt TokenType) String() string {
	switch tt {
	case EOI:
		return "end of input"
	case Quantifier:
		return "quantifier"
	case Connective:
		return "connective"
	case LParen:
		return "opening parenthesis"
	case RParen:
		return "closing parenthesis"
	case Comma:
		return "comma"
	case Variable:
		return "variable"
	case Ident:
		return "identifier"
	case DomainSym:
		return "domain symbol"
	case Membership:
		return "membership operator"
	case Comparison:
		return "comparison operator"
	case Number:
		return "number"
	}
	return "token"
}

// Token is a single lexeme of a formula, with its source position.
// Tokens are produced once per input and never modified.
type Token struct {
	Type   TokenType
	Value  string // canonical (Unicode) spelling
	Line   int    // 1-based
	Column int    // 1-based, in runes, reset on newline
}

// Error is a lexical error: the tokenizer found a character it cannot
// assign to any lexeme. Scanning aborts at the first such character.
type Error struct {
	Msg    string
	Line   int
	Column int
	Offset int // rune offset into the (normalized) input
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// Offset re-derives the rune offset of a line/column position within text.
// It returns -1 if the position does not exist in text. Error positions and
// token positions are always derivable this way, which is what UI clients
// use for error highlighting.
func Offset(text string, line, column int) int {
	ln, col := 1, 1
	for i, r := range []rune(NormalizeInput(text)) {
		if ln == line && col == column {
			return i
		}
		if r == '\n' {
			ln++
			col = 1
		} else {
			col++
		}
	}
	if ln == line && col == column { // position just past the input
		return len([]rune(NormalizeInput(text)))
	}
	return -1
}

// NormalizeInput brings input text into Unicode normal form NFC. Both
// tokenizers of this module (logic and English) apply it before scanning, so
// composed and decomposed spellings of the same symbol are indistinguishable
// downstream.
func NormalizeInput(text string) string {
	return norm.NFC.String(text)
}

// domainSymbols are the well-known domain letters of §6 of the surface
// grammar. Other symbols may still act as domains; the parser accepts plain
// identifiers there as well.
var domainSymbols = map[rune]bool{'ℝ': true, 'ℤ': true, 'ℚ': true, 'ℕ': true, 'ℂ': true}

// Scan tokenizes a formula in logic notation. The returned stream is
// terminated by an EOI token. On the first unrecognizable character Scan
// stops and returns a *Error carrying the exact position.
func Scan(text string) ([]Token, error) {
	s := &scanner{input: []rune(NormalizeInput(text)), line: 1, col: 1}
	var tokens []Token
	for {
		tok, err := s.next()
		if err != nil {
			tracer().Errorf("lexical error: %v", err)
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOI {
			break
		}
	}
	tracer().Debugf("scanned %d tokens", len(tokens))
	return tokens, nil
}

type scanner struct {
	input []rune
	pos   int
	line  int
	col   int
}

// read consumes one rune, keeping line/column in sync.
func (s *scanner) read() rune {
	r := s.input[s.pos]
	s.pos++
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) peek(ahead int) rune {
	if s.pos+ahead >= len(s.input) {
		return 0
	}
	return s.input[s.pos+ahead]
}

func (s *scanner) errorf(line, col int, format string, args ...interface{}) *Error {
	return &Error{
		Msg:    fmt.Sprintf(format, args...),
		Line:   line,
		Column: col,
		Offset: s.pos,
	}
}

func (s *scanner) next() (Token, error) {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.read()
	}
	if s.pos >= len(s.input) {
		return Token{Type: EOI, Line: s.line, Column: s.col}, nil
	}
	line, col := s.line, s.col
	r := s.input[s.pos]
	switch {
	case r == '∀' || r == '∃':
		s.read()
		return Token{Type: Quantifier, Value: string(r), Line: line, Column: col}, nil
	case r == '¬' || r == '∧' || r == '∨' || r == '→' || r == '↔':
		s.read()
		return Token{Type: Connective, Value: string(r), Line: line, Column: col}, nil
	case r == '∈' || r == '∉':
		s.read()
		return Token{Type: Membership, Value: string(r), Line: line, Column: col}, nil
	case r == '≤' || r == '≥' || r == '≠' || r == '=':
		s.read()
		if r == '=' {
			return Token{Type: Comparison, Value: "=", Line: line, Column: col}, nil
		}
		return Token{Type: Comparison, Value: string(r), Line: line, Column: col}, nil
	case r == '(':
		s.read()
		return Token{Type: LParen, Value: "(", Line: line, Column: col}, nil
	case r == ')':
		s.read()
		return Token{Type: RParen, Value: ")", Line: line, Column: col}, nil
	case r == ',':
		s.read()
		return Token{Type: Comma, Value: ",", Line: line, Column: col}, nil
	case r == '<':
		// longest match first: <-> before <= before <
		if s.peek(1) == '-' && s.peek(2) == '>' {
			s.read()
			s.read()
			s.read()
			return Token{Type: Connective, Value: "↔", Line: line, Column: col}, nil
		}
		if s.peek(1) == '=' {
			s.read()
			s.read()
			return Token{Type: Comparison, Value: "≤", Line: line, Column: col}, nil
		}
		s.read()
		return Token{Type: Comparison, Value: "<", Line: line, Column: col}, nil
	case r == '>':
		if s.peek(1) == '=' {
			s.read()
			s.read()
			return Token{Type: Comparison, Value: "≥", Line: line, Column: col}, nil
		}
		s.read()
		return Token{Type: Comparison, Value: ">", Line: line, Column: col}, nil
	case r == '-':
		if s.peek(1) == '>' {
			s.read()
			s.read()
			return Token{Type: Connective, Value: "→", Line: line, Column: col}, nil
		}
		return Token{}, s.errorf(line, col, "unrecognized character %q", r)
	case r == '!':
		if s.peek(1) == '=' {
			s.read()
			s.read()
			return Token{Type: Comparison, Value: "≠", Line: line, Column: col}, nil
		}
		s.read()
		return Token{Type: Connective, Value: "¬", Line: line, Column: col}, nil
	case r == '~':
		s.read()
		return Token{Type: Connective, Value: "¬", Line: line, Column: col}, nil
	case r == '&':
		s.read()
		return Token{Type: Connective, Value: "∧", Line: line, Column: col}, nil
	case r == '|':
		s.read()
		return Token{Type: Connective, Value: "∨", Line: line, Column: col}, nil
	case domainSymbols[r]:
		s.read()
		return Token{Type: DomainSym, Value: string(r), Line: line, Column: col}, nil
	case unicode.IsDigit(r):
		return s.scanNumber(line, col), nil
	case unicode.IsLetter(r):
		return s.scanWord(line, col), nil
	}
	return Token{}, s.errorf(line, col, "unrecognized character %q", r)
}

func (s *scanner) scanNumber(line, col int) Token {
	start := s.pos
	for s.pos < len(s.input) && unicode.IsDigit(s.input[s.pos]) {
		s.read()
	}
	if s.pos < len(s.input) && s.input[s.pos] == '.' && s.pos+1 < len(s.input) &&
		unicode.IsDigit(s.input[s.pos+1]) {
		s.read()
		for s.pos < len(s.input) && unicode.IsDigit(s.input[s.pos]) {
			s.read()
		}
	}
	return Token{Type: Number, Value: string(s.input[start:s.pos]), Line: line, Column: col}
}

func (s *scanner) scanWord(line, col int) Token {
	start := s.pos
	for s.pos < len(s.input) &&
		(unicode.IsLetter(s.input[s.pos]) || unicode.IsDigit(s.input[s.pos]) || s.input[s.pos] == '_') {
		s.read()
	}
	word := string(s.input[start:s.pos])
	switch word {
	case "forall":
		return Token{Type: Quantifier, Value: "∀", Line: line, Column: col}
	case "exists":
		return Token{Type: Quantifier, Value: "∃", Line: line, Column: col}
	}
	if IsVariableName(word) {
		return Token{Type: Variable, Value: word, Line: line, Column: col}
	}
	return Token{Type: Ident, Value: word, Line: line, Column: col}
}

// IsVariableName reports whether an identifier is classified as a variable:
// a single letter, optionally followed by digits (x, y, z, n1, …). All other
// identifiers name predicates, constants or functions.
func IsVariableName(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
