package render

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/fol"
)

// Steps explains a formula node by node, walking the tree depth-first and
// producing one prose sentence per node.
func Steps(e fol.Expr) []string {
	list := arraylist.New()
	step(list, e)
	steps := make([]string, 0, list.Size())
	for _, v := range list.Values() {
		steps = append(steps, v.(string))
	}
	return steps
}

func step(list *arraylist.List, e fol.Expr) {
	switch n := e.(type) {
	case *fol.Quantifier:
		noun := "values"
		if n.Domain != nil {
			if d := domainNouns[n.Domain.Name]; d != "" {
				noun = d
			} else {
				noun = "elements of " + n.Domain.Name
			}
		}
		if n.Q == fol.Forall {
			list.Add("The statement must hold for all " + noun + " " + n.Var + ".")
		} else {
			list.Add("At least one choice of " + n.Var + " among the " + noun +
				" must make the statement true.")
		}
		step(list, n.Body)
	case *fol.Predicate:
		list.Add("The statement '" + sentence(n) + "' is taken as given.")
	case *fol.Relation:
		list.Add("The comparison states that " + relationSentence(n) + ".")
	case *fol.Negation:
		list.Add("The enclosed statement is negated.")
		step(list, n.Body)
	case *fol.Binary:
		switch n.Op {
		case fol.And:
			list.Add("Both parts must hold.")
		case fol.Or:
			list.Add("At least one of the parts must hold.")
		case fol.Impl:
			list.Add("Whenever the first part holds, the second must hold too.")
		case fol.Iff:
			list.Add("The two parts are true in exactly the same cases.")
		}
		step(list, n.Left)
		step(list, n.Right)
	}
}
