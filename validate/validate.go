/*
Package validate checks variable scoping of formula trees.

A formula may parse and print while still dangling: `x < y` is
well-formed syntax, but neither x nor y is bound by a quantifier.
Validation walks the tree, tracking the set of names bound by enclosing
quantifiers, and reports every unbound variable occurrence. It is
advisory — parsing, printing and rendering work on unvalidated trees —
but interactive clients use it to block exporting dangling formulas.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package validate

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fol"
)

// Report is the outcome of validating a formula tree.
type Report struct {
	OK               bool
	Errors           []string // one entry per unbound occurrence, in tree order
	InScopeVariables []string // sorted names of all quantifier-bound variables
}

// Validate walks a formula tree and checks that every variable occurrence is
// bound by an enclosing quantifier. Each unbound occurrence is reported once
// per occurrence site, without deduplication. Constants and number literals
// are always valid.
func Validate(e fol.Expr) Report {
	c := &checker{
		scope: treeset.NewWithStringComparator(),
		bound: treeset.NewWithStringComparator(),
	}
	c.expr(e)
	vars := make([]string, 0, c.bound.Size())
	for _, v := range c.bound.Values() {
		vars = append(vars, v.(string))
	}
	return Report{
		OK:               len(c.errors) == 0,
		Errors:           c.errors,
		InScopeVariables: vars,
	}
}

type checker struct {
	scope  *treeset.Set // names currently bound
	bound  *treeset.Set // every name bound anywhere in the tree
	errors []string
}

func (c *checker) expr(e fol.Expr) {
	switch n := e.(type) {
	case *fol.Quantifier:
		shadowed := c.scope.Contains(n.Var)
		c.scope.Add(n.Var)
		c.bound.Add(n.Var)
		c.expr(n.Body)
		if !shadowed { // the binding ends with the body
			c.scope.Remove(n.Var)
		}
	case *fol.Predicate:
		for _, arg := range n.Args {
			c.term(arg)
		}
	case *fol.Relation:
		c.term(n.Left)
		c.term(n.Right)
	case *fol.Negation:
		c.expr(n.Body)
	case *fol.Binary:
		c.expr(n.Left)
		c.expr(n.Right)
	}
}

func (c *checker) term(t fol.Term) {
	switch n := t.(type) {
	case *fol.Var:
		if !c.scope.Contains(n.Name) {
			c.errors = append(c.errors, "Unbound variable "+n.Name)
		}
	case *fol.NumberLiteral, *fol.Const:
		// always valid
	case *fol.FunctionApp:
		for _, arg := range n.Args {
			c.term(arg)
		}
	case *fol.Paren:
		c.term(n.Inner)
	}
}
