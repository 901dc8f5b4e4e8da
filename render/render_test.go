package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/fol/parse"
	"github.com/npillmayer/fol/render"
	"github.com/npillmayer/schuko/testconfig"
)

func mustParse(t *testing.T, text string) fol.Expr {
	expr, _, err := parse.Parse(text)
	if err != nil {
		t.Fatalf("parse of %q failed: %v", text, err)
	}
	return expr
}

func TestSentenceQuantifiers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr := mustParse(t, "∀x∈ℝ ( ∃y∈ℝ ( x < y ) )")
	got := render.Sentence(expr)
	want := "for all real numbers x, there exists a real number y such that x is less than y"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestSentenceImplication(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr := mustParse(t, "∀x ( Tomato(x) → Fruit(x) )")
	got := render.Sentence(expr)
	want := "for all x, if x is Tomato, then x is Fruit"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestSentenceNegationAndMembership(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr := mustParse(t, "¬( n ∈ ℤ )")
	got := render.Sentence(expr)
	want := "it is not the case that n is an integer"
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestAlternates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	impl := mustParse(t, "p → q")
	alts := render.Alternates(impl)
	if len(alts) != 2 {
		t.Fatalf("implication has %d alternates, want 2: %v", len(alts), alts)
	}
	if !strings.Contains(alts[0], "sufficient") || !strings.Contains(alts[1], "necessary") {
		t.Errorf("alternates miss the sufficiency/necessity readings: %v", alts)
	}
	iff := mustParse(t, "p ↔ q")
	alts = render.Alternates(iff)
	if len(alts) != 1 || !strings.Contains(alts[0], "necessary and sufficient") {
		t.Errorf("biconditional alternates wrong: %v", alts)
	}
	if alts := render.Alternates(mustParse(t, "x < 1")); alts != nil {
		t.Errorf("relation has alternates: %v", alts)
	}
}

func TestOutline(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr := mustParse(t, "∀x ( Tomato(x) → Fruit(x) )")
	got := render.Outline(expr)
	want := "∀x\n  →\n    Tomato(x)\n    Fruit(x)\n"
	if got != want {
		t.Errorf("outlined\n%s\nwant\n%s", got, want)
	}
}

func TestSteps(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expr := mustParse(t, "∀x∈ℝ ( x ≥ 0 ∨ x < 0 )")
	steps := render.Steps(expr)
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4: %v", len(steps), steps)
	}
	if !strings.Contains(steps[0], "all real numbers x") {
		t.Errorf("first step misses the quantifier: %q", steps[0])
	}
	if !strings.Contains(steps[1], "At least one") {
		t.Errorf("second step misses the disjunction: %q", steps[1])
	}
}

func TestTraps(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		text string
		hint string
	}{
		{"∀x ( ∃y ( x < y ) )", "Quantifier order"},
		{"¬( ∃x ( P(x) ) )", "negated quantifier flips"},
		{"p → q", "not its converse"},
		{"p ↔ q", "both directions"},
	}
	for _, in := range inputs {
		notes := render.Traps(mustParse(t, in.text))
		found := false
		for _, note := range notes {
			if strings.Contains(note, in.hint) {
				found = true
			}
		}
		if !found {
			t.Errorf("traps of %q miss %q: %v", in.text, in.hint, notes)
		}
	}
	if notes := render.Traps(mustParse(t, "∀x ( P(x) )")); notes != nil {
		t.Errorf("harmless formula has traps: %v", notes)
	}
}

func ExampleSentence() {
	expr, _, _ := parse.Parse("∀x∈ℝ ( x ≥ 0 ∨ x < 0 )")
	fmt.Println(render.Sentence(expr))
	// Output: for all real numbers x, x is greater than or equal to 0 or x is less than 0
}
