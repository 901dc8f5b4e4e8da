package fol

import "strings"

// Print serializes a formula tree to its canonical written form. Print is
// total: every structurally valid tree prints. The canonical form is what the
// parser in fol/parse accepts, and re-parsing it reproduces the tree.
//
// Spacing rules: a quantifier prints as `∀x∈ℝ ( body )`, a negation as
// `¬( body )`, a relation as `left op right`. Operands of a binary connective
// are parenthesized when they are themselves binary connectives; atoms print
// bare.
func Print(e Expr) string {
	var sb strings.Builder
	printExpr(&sb, e)
	return sb.String()
}

// PrintTerm serializes a single term.
func PrintTerm(t Term) string {
	var sb strings.Builder
	printTerm(&sb, t)
	return sb.String()
}

func printExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Quantifier:
		sb.WriteString(n.Q.Symbol())
		sb.WriteString(n.Var)
		if n.Domain != nil {
			sb.WriteString("∈")
			sb.WriteString(n.Domain.Name)
		}
		sb.WriteString(" ( ")
		printExpr(sb, n.Body)
		sb.WriteString(" )")
	case *Predicate:
		sb.WriteString(n.Name)
		sb.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printTerm(sb, arg)
		}
		sb.WriteString(")")
	case *Relation:
		printTerm(sb, n.Left)
		sb.WriteString(" ")
		sb.WriteString(string(n.Op))
		sb.WriteString(" ")
		printTerm(sb, n.Right)
	case *Negation:
		sb.WriteString("¬( ")
		printExpr(sb, n.Body)
		sb.WriteString(" )")
	case *Binary:
		printOperand(sb, n.Left)
		sb.WriteString(" ")
		sb.WriteString(n.Op.Symbol())
		sb.WriteString(" ")
		printOperand(sb, n.Right)
	}
}

// printOperand parenthesizes nested binary connectives, keeping the printed
// form unambiguous regardless of operator precedence.
func printOperand(sb *strings.Builder, e Expr) {
	if _, nested := e.(*Binary); nested {
		sb.WriteString("( ")
		printExpr(sb, e)
		sb.WriteString(" )")
		return
	}
	printExpr(sb, e)
}

func printTerm(sb *strings.Builder, t Term) {
	switch n := t.(type) {
	case *Var:
		sb.WriteString(n.Name)
	case *NumberLiteral:
		sb.WriteString(n.Value)
	case *Const:
		sb.WriteString(n.Name)
	case *FunctionApp:
		sb.WriteString(n.Name)
		sb.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			printTerm(sb, arg)
		}
		sb.WriteString(")")
	case *Paren:
		sb.WriteString("(")
		printTerm(sb, n.Inner)
		sb.WriteString(")")
	}
}
