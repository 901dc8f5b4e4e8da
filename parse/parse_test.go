package parse_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/fol/parse"
	"github.com/npillmayer/fol/scan"
	"github.com/npillmayer/schuko/testconfig"
)

func TestParsePrecedence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr, _, err := parse.Parse("P ∧ Q ∨ R")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	or, ok := expr.(*fol.Binary)
	if !ok || or.Op != fol.Or {
		t.Fatalf("root is %T, want ∨", expr)
	}
	and, ok := or.Left.(*fol.Binary)
	if !ok || and.Op != fol.And {
		t.Errorf("∧ does not bind tighter than ∨: left is %T", or.Left)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr, _, err := parse.Parse("P → Q → R")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	outer, ok := expr.(*fol.Binary)
	if !ok || outer.Op != fol.Impl {
		t.Fatalf("root is %T, want →", expr)
	}
	if inner, ok := outer.Left.(*fol.Binary); !ok || inner.Op != fol.Impl {
		t.Errorf("A → B → C did not parse as (A → B) → C")
	}
}

func TestParseAsciiEquivalence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	unicode, _, err := parse.Parse("∀x∈ℝ ( ∃y∈ℝ ( x < y ) )")
	if err != nil {
		t.Fatalf("unicode parse failed: %v", err)
	}
	ascii, _, err := parse.Parse("forall x ∈ ℝ (exists y ∈ ℝ (x < y))")
	if err != nil {
		t.Fatalf("ascii parse failed: %v", err)
	}
	if !fol.EqualExpr(unicode, ascii) {
		t.Errorf("ascii aliases parse differently:\n  %s\n  %s",
			fol.Print(unicode), fol.Print(ascii))
	}
}

func TestParseRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"∀x∈ℝ ( ∃y∈ℝ ( x < y ) )",
		"x ≥ 5",
		"∀x ( Tomato(x) → Fruit(x) )",
		"( P(P) ∧ Q(Q) ) ∨ R(R)",
		"¬( x = 0 ) ↔ Positive(f(x, 1))",
		"n ∈ ℤ ∧ Even(n)",
	}
	for _, in := range inputs {
		expr, _, err := parse.Parse(in)
		if err != nil {
			t.Fatalf("parse of %q failed: %v", in, err)
		}
		printed := fol.Print(expr)
		again, _, err := parse.Parse(printed)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", printed, err)
		}
		if !fol.EqualExpr(expr, again) {
			t.Errorf("round trip of %q not the identity, printed %q", in, printed)
		}
	}
}

func TestParseQuantifierWithoutParens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr, _, err := parse.Parse("∀x P(x)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	q, ok := expr.(*fol.Quantifier)
	if !ok || q.Var != "x" {
		t.Fatalf("root is %T, want quantifier over x", expr)
	}
	if _, ok := q.Body.(*fol.Predicate); !ok {
		t.Errorf("body is %T, want predicate", q.Body)
	}
}

func TestParseBareIdentifier(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr, _, err := parse.Parse("p → q")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	impl := expr.(*fol.Binary)
	p, ok := impl.Left.(*fol.Predicate)
	if !ok || p.Name != "p" || len(p.Args) != 1 {
		t.Fatalf("bare identifier parsed as %v", impl.Left)
	}
	if v, ok := p.Args[0].(*fol.Var); !ok || v.Name != "p" {
		t.Errorf("bare identifier is not a predicate over itself: %v", p.Args[0])
	}
}

func TestParseSyntaxError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"∀ ( P(x) )",   // quantifier without variable
		"P(x",          // unclosed parenthesis
		"x <",          // relation without right side
		"P(x) ∧",       // dangling connective
		"∀x∈ ( P(x) )", // membership without domain
	}
	for _, in := range inputs {
		expr, _, err := parse.Parse(in)
		if err == nil {
			t.Errorf("parse of %q did not fail", in)
			continue
		}
		if expr != nil {
			t.Errorf("parse of %q returned a partial tree", in)
		}
		perr, ok := err.(*parse.Error)
		if !ok {
			t.Errorf("error for %q is %T, want *parse.Error", in, err)
			continue
		}
		if len(perr.Expected) == 0 {
			t.Errorf("error for %q lists no expected token types", in)
		}
		if scan.Offset(in, perr.Line, perr.Column) < 0 {
			t.Errorf("error position %d:%d of %q is not derivable", perr.Line, perr.Column, in)
		}
	}
}

func TestParseLexicalError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, _, err := parse.Parse("x < $")
	if _, ok := err.(*scan.Error); !ok {
		t.Errorf("error is %T, want *scan.Error", err)
	}
}

func ExampleParse() {
	expr, _, _ := parse.Parse("forall x (Tomato(x) -> Fruit(x))")
	fmt.Println(fol.Print(expr))
	// Output: ∀x ( Tomato(x) → Fruit(x) )
}
