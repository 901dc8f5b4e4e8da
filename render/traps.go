package render

import "github.com/npillmayer/fol"

// Traps scans a formula for patterns that are commonly misread and returns
// one advisory note per finding. The notes are hints for readers, not
// errors; a formula without findings returns nil.
func Traps(e fol.Expr) []string {
	var notes []string
	traps(e, &notes)
	return notes
}

func traps(e fol.Expr, notes *[]string) {
	switch n := e.(type) {
	case *fol.Quantifier:
		if inner, ok := n.Body.(*fol.Quantifier); ok && inner.Q != n.Q {
			if n.Q == fol.Forall {
				*notes = append(*notes,
					"Quantifier order matters: here "+inner.Var+" may depend on "+
						n.Var+"; swapping ∀ and ∃ would claim a single "+
						inner.Var+" works for every "+n.Var+".")
			} else {
				*notes = append(*notes,
					"Quantifier order matters: here a single "+n.Var+
						" must work for every "+inner.Var+".")
			}
		}
		traps(n.Body, notes)
	case *fol.Negation:
		if q, ok := n.Body.(*fol.Quantifier); ok {
			flipped := "∃"
			if q.Q == fol.Exists {
				flipped = "∀"
			}
			*notes = append(*notes,
				"A negated quantifier flips when pushed inward: ¬"+q.Q.Symbol()+
					q.Var+" becomes "+flipped+q.Var+"¬.")
		}
		traps(n.Body, notes)
	case *fol.Binary:
		switch n.Op {
		case fol.Impl:
			*notes = append(*notes,
				"An implication is not its converse: the left side is sufficient "+
					"for the right, and the right side is necessary for the left.")
		case fol.Iff:
			*notes = append(*notes,
				"A biconditional claims both directions: each side is necessary "+
					"and sufficient for the other.")
		}
		traps(n.Left, notes)
		traps(n.Right, notes)
	}
}
