/*
Package parse implements a recursive-descent parser for logic notation.

The surface grammar, lowest to highest precedence:

   Expr      := Iff
   Iff       := Imp ( "↔" Imp )*
   Imp       := Or ( "→" Or )*
   Or        := And ( "∨" And )*
   And       := Not ( "∧" Not )*
   Not       := "¬" Not | Atom
   Atom      := Quant | Relation | Predicate | "(" Expr ")"
   Quant     := ("∀"|"∃") Var ["∈" Domain] ( "(" Expr ")" | Atom )
   Relation  := Term RelOp Term
   Predicate := Name "(" Term ("," Term)* ")"

All binary connectives are left-associative: `A → B → C` parses as
`(A → B) → C`. ASCII aliases of the operators are accepted (see package
fol/scan).

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parse

import (
	"github.com/npillmayer/fol"
	"github.com/npillmayer/fol/scan"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to fol.parse .
func tracer() tracing.Trace {
	return tracing.Select("fol.parse")
}

// Parse tokenizes and parses a formula in logic notation. It returns the
// formula tree together with the token stream it was built from. Lexical
// errors surface as *scan.Error, syntax errors as *Error; in both cases the
// tree is nil — the parser never returns a partial tree.
func Parse(text string) (fol.Expr, []scan.Token, error) {
	tokens, err := scan.Scan(text)
	if err != nil {
		return nil, nil, err
	}
	p := &parser{text: text, tokens: tokens}
	expr, err := p.parseExpr()
	if err != nil {
		tracer().Errorf("syntax error: %v", err)
		return nil, nil, err
	}
	if p.current().Type != scan.EOI {
		return nil, nil, p.errorExpected(scan.EOI)
	}
	return expr, tokens, nil
}

type parser struct {
	text   string
	tokens []scan.Token
	pos    int
}

func (p *parser) current() scan.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() scan.Token {
	tok := p.tokens[p.pos]
	if tok.Type != scan.EOI {
		p.pos++
	}
	return tok
}

// at reports whether the current token has the given type, and for connective
// tokens, the given canonical value.
func (p *parser) at(tt scan.TokenType, value string) bool {
	tok := p.current()
	if tok.Type != tt {
		return false
	}
	return value == "" || tok.Value == value
}

// --- Connective levels -----------------------------------------------------

func (p *parser) parseExpr() (fol.Expr, error) {
	return p.parseBinary(0)
}

// binaryLevels orders the connectives from weakest to strongest binding.
// Each level accumulates iteratively, which keeps the operators
// left-associative without right recursion.
var binaryLevels = []struct {
	symbol string
	op     fol.BinOp
}{
	{"↔", fol.Iff},
	{"→", fol.Impl},
	{"∨", fol.Or},
	{"∧", fol.And},
}

func (p *parser) parseBinary(level int) (fol.Expr, error) {
	if level >= len(binaryLevels) {
		return p.parseNot()
	}
	left, err := p.parseBinary(level + 1)
	if err != nil {
		return nil, err
	}
	for p.at(scan.Connective, binaryLevels[level].symbol) {
		p.advance()
		right, err := p.parseBinary(level + 1)
		if err != nil {
			return nil, err
		}
		left = &fol.Binary{Op: binaryLevels[level].op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNot() (fol.Expr, error) {
	if p.at(scan.Connective, "¬") {
		p.advance()
		body, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &fol.Negation{Body: body}, nil
	}
	return p.parseAtom()
}

// --- Atoms -----------------------------------------------------------------

func (p *parser) parseAtom() (fol.Expr, error) {
	tok := p.current()
	switch tok.Type {
	case scan.Quantifier:
		return p.parseQuantifier()
	case scan.Variable, scan.Ident, scan.Number, scan.DomainSym:
		return p.parseRelationOrPredicate()
	case scan.LParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(scan.RParen, "") {
			return nil, p.errorExpected(scan.RParen)
		}
		p.advance()
		return expr, nil
	}
	return nil, p.errorExpected(scan.Quantifier, scan.Connective, scan.LParen,
		scan.Variable, scan.Ident, scan.Number, scan.DomainSym)
}

func (p *parser) parseQuantifier() (fol.Expr, error) {
	q := fol.Forall
	if p.advance().Value == "∃" {
		q = fol.Exists
	}
	if !p.at(scan.Variable, "") {
		return nil, p.errorExpected(scan.Variable)
	}
	name := p.advance().Value
	var domain *fol.DomainRef
	if p.at(scan.Membership, "∈") {
		p.advance()
		switch p.current().Type {
		case scan.DomainSym, scan.Ident, scan.Variable:
			domain = &fol.DomainRef{Name: p.advance().Value}
		default:
			return nil, p.errorExpected(scan.DomainSym, scan.Ident)
		}
	}
	var body fol.Expr
	var err error
	if p.at(scan.LParen, "") {
		p.advance()
		body, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(scan.RParen, "") {
			return nil, p.errorExpected(scan.RParen)
		}
		p.advance()
	} else {
		// a single atom may follow without parentheses, e.g. ∀x P(x)
		body, err = p.parseAtom()
		if err != nil {
			return nil, err
		}
	}
	return &fol.Quantifier{Q: q, Var: name, Domain: domain, Body: body}, nil
}

// parseRelationOrPredicate handles the rollback-free lookahead of atoms that
// begin with a term: after the left term, a relation operator decides for a
// relation; without one, the just-parsed term is reinterpreted as a predicate
// application (or errors).
func (p *parser) parseRelationOrPredicate() (fol.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	tok := p.current()
	if tok.Type == scan.Comparison || tok.Type == scan.Membership {
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &fol.Relation{Op: fol.RelOp(tok.Value), Left: left, Right: right}, nil
	}
	switch t := left.(type) {
	case *fol.FunctionApp:
		// Name(args) without a following operator is a predicate application.
		return &fol.Predicate{Name: t.Name, Args: t.Args}, nil
	case *fol.Var:
		// bare identifier: a unary predicate over itself
		return &fol.Predicate{Name: t.Name, Args: []fol.Term{&fol.Var{Name: t.Name}}}, nil
	case *fol.Const:
		return &fol.Predicate{Name: t.Name, Args: []fol.Term{&fol.Const{Name: t.Name}}}, nil
	}
	return nil, p.errorExpected(scan.Comparison, scan.Membership)
}

func (p *parser) parseTerm() (fol.Term, error) {
	tok := p.current()
	switch tok.Type {
	case scan.Variable, scan.Ident:
		p.advance()
		if p.at(scan.LParen, "") {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &fol.FunctionApp{Name: tok.Value, Args: args}, nil
		}
		if tok.Type == scan.Variable {
			return &fol.Var{Name: tok.Value}, nil
		}
		return &fol.Const{Name: tok.Value}, nil
	case scan.Number:
		p.advance()
		return &fol.NumberLiteral{Value: tok.Value}, nil
	case scan.DomainSym:
		p.advance()
		return &fol.Const{Name: tok.Value}, nil
	case scan.LParen:
		p.advance()
		inner, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if !p.at(scan.RParen, "") {
			return nil, p.errorExpected(scan.RParen)
		}
		p.advance()
		return &fol.Paren{Inner: inner}, nil
	}
	return nil, p.errorExpected(scan.Variable, scan.Ident, scan.Number,
		scan.DomainSym, scan.LParen)
}

func (p *parser) parseArgs() ([]fol.Term, error) {
	p.advance() // consume (
	var args []fol.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(scan.Comma, "") {
			p.advance()
			continue
		}
		break
	}
	if !p.at(scan.RParen, "") {
		return nil, p.errorExpected(scan.Comma, scan.RParen)
	}
	p.advance()
	return args, nil
}
