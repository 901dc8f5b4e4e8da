package scan

import (
	gscanner "github.com/npillmayer/gorgo/lr/scanner"
)

// Tokenizer implements the scanner.Tokenizer interface of gorgo, so that
// gorgo-driven tools can consume a logic token stream without knowing this
// package's Token type. Token values are reported as their TokenType, token
// lexemes as the canonical (Unicode) spelling.
type Tokenizer struct {
	text   string
	tokens []Token
	pos    int
	errh   func(error)
}

// NewTokenizer scans text and wraps the resulting token stream. A lexical
// error is returned immediately; NextToken never fails afterwards.
func NewTokenizer(text string) (*Tokenizer, error) {
	tokens, err := Scan(text)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{text: text, tokens: tokens}, nil
}

// NextToken returns the next token of the stream. The token's value is the
// TokenType, the token itself is the canonical lexeme. The expected-token
// hint is ignored; logic tokens are context free.
func (tz *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if tz.pos >= len(tz.tokens) {
		return gscanner.EOF, "", uint64(len(tz.text)), 0
	}
	t := tz.tokens[tz.pos]
	tz.pos++
	if t.Type == EOI {
		return gscanner.EOF, "", uint64(len(tz.text)), 0
	}
	pos := Offset(tz.text, t.Line, t.Column)
	return int(t.Type), t.Value, uint64(pos), uint64(len([]rune(t.Value)))
}

// SetErrorHandler sets an error handler function. Scanning happened up front
// in NewTokenizer, so the handler will never be called; the method exists to
// satisfy the interface.
func (tz *Tokenizer) SetErrorHandler(h func(error)) {
	tz.errh = h
}
