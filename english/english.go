/*
Package english translates controlled English into logic formulas.

Translation runs in two stages. Normalization rewrites relation wording
("is greater than or equal to" → ≥) directly in the character stream,
tokenizes, and collapses multi-word structural phrases ("for all",
"such that", "only if") into single keyword tokens, longest phrase
first. The clause parser then reduces the token stream with a fixed
cascade of recognizers, from quantifier chains down to a predicate
fallback that reads any remaining phrase as a property of the implicit
subject.

Words that match no pattern are never dropped silently: they either end
up in a derived predicate name or in an error naming the fragment that
could not be understood.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package english

import (
	"fmt"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to fol.english .
func tracer() tracing.Trace {
	return tracing.Select("fol.english")
}

// defaultSubject is the variable name standing in for the implicit subject
// of predicate-only sentences ("being a tomato implies being a fruit").
const defaultSubject = "x"

// ToExpr translates a controlled English sentence into a formula. A nil
// vocab selects the built-in vocabulary. The result is not scope-checked;
// sentences like "x is at least 5" translate to formulas with free
// variables, and callers wanting a scope report run the validator
// themselves.
func ToExpr(text string, vocab *Vocabulary) (fol.Expr, error) {
	tokens := NormalizeTokens(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty sentence")
	}
	ctx := &Context{DefaultVar: defaultSubject, Vocab: vocab}
	expr, rest, err := parseClause(tokens, ctx)
	if err != nil {
		tracer().Errorf("translation of %q failed: %v", text, err)
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("cannot understand %q", textOf(rest))
	}
	return expr, nil
}

// Translate is a convenience wrapper returning the canonical notation of the
// translated sentence.
func Translate(text string, vocab *Vocabulary) (string, error) {
	expr, err := ToExpr(text, vocab)
	if err != nil {
		return "", err
	}
	return fol.Print(expr), nil
}
