/*
Package render maps logic formulas back to English.

Four read-only views are provided: Sentence produces a single English
sentence, Alternates adds equivalent paraphrases for implications and
biconditionals, Outline prints the formula structure as an indented
tree, Steps explains the formula node by node, and Traps points out
patterns that commonly trip up readers (negated quantifiers, quantifier
order, implication direction).

All functions are total over structurally valid trees and never mutate
their input.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"strings"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to fol.render .
func tracer() tracing.Trace {
	return tracing.Select("fol.render")
}

// domainNouns maps domain symbols to their English noun phrases.
var domainNouns = map[string]string{
	"ℝ": "real numbers",
	"ℤ": "integers",
	"ℚ": "rational numbers",
	"ℕ": "natural numbers",
	"ℂ": "complex numbers",
}

// relationPhrases maps relation operators to their English wording.
var relationPhrases = map[fol.RelOp]string{
	fol.Less:      "is less than",
	fol.LessEq:    "is less than or equal to",
	fol.Greater:   "is greater than",
	fol.GreaterEq: "is greater than or equal to",
	fol.Equal:     "equals",
	fol.NotEqual:  "is not equal to",
	fol.In:        "is in",
	fol.NotIn:     "is not in",
}

// Sentence renders a formula as one English sentence, without a trailing
// period.
func Sentence(e fol.Expr) string {
	s := sentence(e)
	tracer().Debugf("rendered %q", s)
	return s
}

func sentence(e fol.Expr) string {
	switch n := e.(type) {
	case *fol.Quantifier:
		return quantifierSentence(n)
	case *fol.Predicate:
		return predicateSentence(n)
	case *fol.Relation:
		return relationSentence(n)
	case *fol.Negation:
		return "it is not the case that " + sentence(n.Body)
	case *fol.Binary:
		return binarySentence(n)
	}
	return ""
}

func quantifierSentence(q *fol.Quantifier) string {
	noun := ""
	if q.Domain != nil {
		noun = domainNouns[q.Domain.Name]
		if noun == "" {
			noun = "elements of " + q.Domain.Name
		}
	}
	if q.Q == fol.Forall {
		if noun != "" {
			return "for all " + noun + " " + q.Var + ", " + sentence(q.Body)
		}
		return "for all " + q.Var + ", " + sentence(q.Body)
	}
	if noun != "" {
		return "there exists " + singular(noun) + " " + q.Var + " such that " + sentence(q.Body)
	}
	return "there exists " + q.Var + " such that " + sentence(q.Body)
}

// singular turns a domain noun phrase into its indefinite singular form,
// "real numbers" becoming "a real number".
func singular(noun string) string {
	noun = strings.TrimSuffix(noun, "s")
	if strings.HasPrefix(noun, "a") || strings.HasPrefix(noun, "e") ||
		strings.HasPrefix(noun, "i") || strings.HasPrefix(noun, "o") ||
		strings.HasPrefix(noun, "u") {
		return "an " + noun
	}
	return "a " + noun
}

func predicateSentence(p *fol.Predicate) string {
	// a bare statement names itself
	if len(p.Args) == 1 {
		if v, ok := p.Args[0].(*fol.Var); ok && v.Name == p.Name {
			return p.Name
		}
	}
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = fol.PrintTerm(a)
	}
	switch len(args) {
	case 0:
		return p.Name + " holds"
	case 1:
		return args[0] + " is " + p.Name
	}
	return p.Name + " holds for " + strings.Join(args[:len(args)-1], ", ") +
		" and " + args[len(args)-1]
}

func relationSentence(r *fol.Relation) string {
	left := fol.PrintTerm(r.Left)
	if c, ok := r.Right.(*fol.Const); ok && domainNouns[c.Name] != "" {
		switch r.Op {
		case fol.In:
			return left + " is " + singular(domainNouns[c.Name])
		case fol.NotIn:
			return left + " is not " + singular(domainNouns[c.Name])
		}
	}
	return left + " " + relationPhrases[r.Op] + " " + fol.PrintTerm(r.Right)
}

func binarySentence(b *fol.Binary) string {
	left, right := operandSentence(b.Left), operandSentence(b.Right)
	switch b.Op {
	case fol.And:
		return left + " and " + right
	case fol.Or:
		return left + " or " + right
	case fol.Impl:
		return "if " + left + ", then " + right
	case fol.Iff:
		return left + " if and only if " + right
	}
	return ""
}

// operandSentence guards nested connectives with "both ... hold" style
// bracketing so the sentence stays unambiguous.
func operandSentence(e fol.Expr) string {
	if _, nested := e.(*fol.Binary); nested {
		return "(" + sentence(e) + ")"
	}
	return sentence(e)
}

// Alternates returns equivalent paraphrases for the top-level node, if any.
// An implication yields its sufficiency and necessity readings, a
// biconditional its "necessary and sufficient" reading. Other nodes have no
// alternates.
func Alternates(e fol.Expr) []string {
	b, ok := e.(*fol.Binary)
	if !ok {
		return nil
	}
	switch b.Op {
	case fol.Impl:
		left, right := operandSentence(b.Left), operandSentence(b.Right)
		return []string{
			left + " is sufficient for " + right,
			right + " is necessary for " + left,
		}
	case fol.Iff:
		left, right := operandSentence(b.Left), operandSentence(b.Right)
		return []string{
			left + " is necessary and sufficient for " + right,
		}
	}
	return nil
}
