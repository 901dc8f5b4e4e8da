package fol_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/schuko/testconfig"
)

func TestPrintQuantifier(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	e := &fol.Quantifier{
		Q:      fol.Forall,
		Var:    "x",
		Domain: &fol.DomainRef{Name: "ℝ"},
		Body: &fol.Quantifier{
			Q:      fol.Exists,
			Var:    "y",
			Domain: &fol.DomainRef{Name: "ℝ"},
			Body: &fol.Relation{
				Op:    fol.Less,
				Left:  &fol.Var{Name: "x"},
				Right: &fol.Var{Name: "y"},
			},
		},
	}
	if s := fol.Print(e); s != "∀x∈ℝ ( ∃y∈ℝ ( x < y ) )" {
		t.Errorf("printed %q", s)
	}
}

func TestPrintBinaryParens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := &fol.Predicate{Name: "P", Args: []fol.Term{&fol.Const{Name: "P"}}}
	q := &fol.Predicate{Name: "Q", Args: []fol.Term{&fol.Const{Name: "Q"}}}
	r := &fol.Predicate{Name: "R", Args: []fol.Term{&fol.Const{Name: "R"}}}
	e := &fol.Binary{
		Op:    fol.Or,
		Left:  &fol.Binary{Op: fol.And, Left: p, Right: q},
		Right: r,
	}
	if s := fol.Print(e); s != "( P(P) ∧ Q(Q) ) ∨ R(R)" {
		t.Errorf("printed %q", s)
	}
}

func TestPrintNegation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	e := &fol.Negation{
		Body: &fol.Relation{
			Op:    fol.Equal,
			Left:  &fol.Var{Name: "x"},
			Right: &fol.NumberLiteral{Value: "0"},
		},
	}
	if s := fol.Print(e); s != "¬( x = 0 )" {
		t.Errorf("printed %q", s)
	}
}

func TestPrintTermShapes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f := &fol.FunctionApp{
		Name: "f",
		Args: []fol.Term{
			&fol.Var{Name: "x"},
			&fol.NumberLiteral{Value: "2.5"},
		},
	}
	if s := fol.PrintTerm(f); s != "f(x, 2.5)" {
		t.Errorf("printed %q", s)
	}
	p := &fol.Paren{Inner: &fol.Var{Name: "y"}}
	if s := fol.PrintTerm(p); s != "(y)" {
		t.Errorf("printed %q", s)
	}
}

func TestEqualIgnoresNothingStructural(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	mk := func(op fol.RelOp) fol.Expr {
		return &fol.Relation{
			Op:    op,
			Left:  &fol.Var{Name: "x"},
			Right: &fol.NumberLiteral{Value: "5"},
		}
	}
	if !fol.EqualExpr(mk(fol.GreaterEq), mk(fol.GreaterEq)) {
		t.Error("identical trees compare unequal")
	}
	if fol.EqualExpr(mk(fol.GreaterEq), mk(fol.Greater)) {
		t.Error("different operators compare equal")
	}
	a := &fol.Quantifier{Q: fol.Forall, Var: "x", Body: mk(fol.Less)}
	b := &fol.Quantifier{Q: fol.Forall, Var: "y", Body: mk(fol.Less)}
	if fol.EqualExpr(a, b) {
		t.Error("different bound variables compare equal; no alpha-renaming wanted")
	}
}

func ExamplePrint() {
	e := &fol.Binary{
		Op: fol.Impl,
		Left: &fol.Predicate{
			Name: "Tomato",
			Args: []fol.Term{&fol.Var{Name: "x"}},
		},
		Right: &fol.Predicate{
			Name: "Fruit",
			Args: []fol.Term{&fol.Var{Name: "x"}},
		},
	}
	all := &fol.Quantifier{Q: fol.Forall, Var: "x", Body: e}
	fmt.Println(fol.Print(all))
	// Output: ∀x ( Tomato(x) → Fruit(x) )
}
