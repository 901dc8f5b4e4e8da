/*
Package fol provides an abstract syntax for formulas of first-order
predicate logic, together with a canonical printer.

Content

Formulas are represented as immutable trees of Expr nodes. Expr is a
closed sum type: a node is either a quantifier, a predicate application,
a term relation, a negation or a binary connective, and nothing else.
Arguments of predicates and relations are Terms, again a closed sum type
(variables, number literals, constants, function applications and
parenthesized terms).

Trees are built by one of two front ends and never mutated afterwards:

▪︎ Package fol/parse reads formulas in logic notation, e.g.

   ∀x∈ℝ ( ∃y∈ℝ ( x < y ) )

▪︎ Package fol/english reads a controlled subset of English, e.g.

   for all real numbers x, there exists a real number y such that x < y

and reduces it to the same abstract syntax.

Downstream consumers only ever read the tree: fol/validate checks
variable scoping, fol/render produces English prose, structure outlines
and didactic hints, and the printer in this package serializes a tree
back to logic notation.

Canonical Form

The printer in this package defines the canonical written form of a
formula: quantifiers print their body in parentheses, nested binary
connectives are parenthesized, atoms are not. Parsing the printed form
of a tree yields a structurally identical tree. User-chosen variable
names are preserved verbatim; there is no alpha-renaming anywhere in
this module.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fol
