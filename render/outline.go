package render

import (
	"strings"

	"github.com/npillmayer/fol"
)

// Outline prints the structure of a formula as an indented tree, one node
// per line. Terms are not expanded; relations and predicates print as
// single leaf lines in canonical notation.
func Outline(e fol.Expr) string {
	var sb strings.Builder
	outline(&sb, e, 0)
	return sb.String()
}

func outline(sb *strings.Builder, e fol.Expr, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := e.(type) {
	case *fol.Quantifier:
		sb.WriteString(indent)
		sb.WriteString(n.Q.Symbol())
		sb.WriteString(n.Var)
		if n.Domain != nil {
			sb.WriteString("∈")
			sb.WriteString(n.Domain.Name)
		}
		sb.WriteString("\n")
		outline(sb, n.Body, depth+1)
	case *fol.Negation:
		sb.WriteString(indent)
		sb.WriteString("¬\n")
		outline(sb, n.Body, depth+1)
	case *fol.Binary:
		sb.WriteString(indent)
		sb.WriteString(n.Op.Symbol())
		sb.WriteString("\n")
		outline(sb, n.Left, depth+1)
		outline(sb, n.Right, depth+1)
	default:
		sb.WriteString(indent)
		sb.WriteString(fol.Print(e))
		sb.WriteString("\n")
	}
}
