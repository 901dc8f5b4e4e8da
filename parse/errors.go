package parse

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fol/scan"
)

// Error is a syntax error. The parser never recovers or guesses: the first
// unexpected token aborts the parse, and the error reports the complete set
// of token types that would have been accepted at that point.
type Error struct {
	Msg      string
	Line     int
	Column   int
	Offset   int              // rune offset, re-derivable from Line/Column via scan.Offset
	Expected []scan.TokenType // all token types acceptable at the error position
	Actual   scan.TokenType
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// expectedList spells out a set of token types for a user-facing message.
func expectedList(expected []scan.TokenType) string {
	names := make([]string, len(expected))
	for i, tt := range expected {
		names[i] = tt.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

func (p *parser) errorExpected(expected ...scan.TokenType) *Error {
	tok := p.current()
	var msg string
	if tok.Type == scan.EOI {
		msg = fmt.Sprintf("unexpected end of input, expected %s", expectedList(expected))
	} else {
		msg = fmt.Sprintf("expected %s, found %s %q", expectedList(expected), tok.Type, tok.Value)
	}
	return &Error{
		Msg:      msg,
		Line:     tok.Line,
		Column:   tok.Column,
		Offset:   scan.Offset(p.text, tok.Line, tok.Column),
		Expected: expected,
		Actual:   tok.Type,
	}
}
