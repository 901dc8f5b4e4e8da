package scan_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/fol/scan"
	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/testconfig"
)

func TestScanUnicode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens, err := scan.Scan("∀x∈ℝ ( x < y )")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []struct {
		typ   scan.TokenType
		value string
	}{
		{scan.Quantifier, "∀"},
		{scan.Variable, "x"},
		{scan.Membership, "∈"},
		{scan.DomainSym, "ℝ"},
		{scan.LParen, "("},
		{scan.Variable, "x"},
		{scan.Comparison, "<"},
		{scan.Variable, "y"},
		{scan.RParen, ")"},
		{scan.EOI, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Value != w.value {
			t.Errorf("token %d is %v %q, want %v %q", i,
				tokens[i].Type, tokens[i].Value, w.typ, w.value)
		}
	}
}

func TestScanAsciiAliases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []struct {
		text  string
		value string
		typ   scan.TokenType
	}{
		{"forall", "∀", scan.Quantifier},
		{"exists", "∃", scan.Quantifier},
		{"!", "¬", scan.Connective},
		{"~", "¬", scan.Connective},
		{"&", "∧", scan.Connective},
		{"|", "∨", scan.Connective},
		{"->", "→", scan.Connective},
		{"<->", "↔", scan.Connective},
		{"<=", "≤", scan.Comparison},
		{">=", "≥", scan.Comparison},
		{"!=", "≠", scan.Comparison},
	}
	for _, in := range inputs {
		tokens, err := scan.Scan(in.text)
		if err != nil {
			t.Fatalf("scan of %q failed: %v", in.text, err)
		}
		if tokens[0].Type != in.typ || tokens[0].Value != in.value {
			t.Errorf("%q scanned as %v %q, want %v %q", in.text,
				tokens[0].Type, tokens[0].Value, in.typ, in.value)
		}
	}
}

func TestScanLongestMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens, err := scan.Scan("P <-> Q")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if tokens[1].Value != "↔" {
		t.Errorf("'<->' scanned as %q, never split into '<' and '->'", tokens[1].Value)
	}
}

func TestScanVariableClassification(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens, err := scan.Scan("x x1 Prime f2a")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []scan.TokenType{scan.Variable, scan.Variable, scan.Ident, scan.Ident}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Errorf("%q classified as %v, want %v", tokens[i].Value, tokens[i].Type, typ)
		}
	}
}

func TestScanPositions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tokens, err := scan.Scan("P ∧\nQ")
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	q := tokens[2]
	if q.Line != 2 || q.Column != 1 {
		t.Errorf("Q at line %d column %d, want 2:1", q.Line, q.Column)
	}
	if off := scan.Offset("P ∧\nQ", q.Line, q.Column); off != 4 {
		t.Errorf("offset of 2:1 is %d, want 4", off)
	}
}

func TestScanError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := scan.Scan("x < $")
	if err == nil {
		t.Fatal("scan of 'x < $' did not fail")
	}
	serr, ok := err.(*scan.Error)
	if !ok {
		t.Fatalf("error is %T, want *scan.Error", err)
	}
	if serr.Line != 1 || serr.Column != 5 {
		t.Errorf("error at %d:%d, want 1:5", serr.Line, serr.Column)
	}
}

func TestGorgoTokenizer(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc, err := scan.NewTokenizer("x ≥ 5")
	if err != nil {
		t.Fatalf("tokenizer setup failed: %v", err)
	}
	var lexemes []string
	for {
		tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		lexemes = append(lexemes, token.(string))
		if len(lexemes) > 10 {
			t.Fatal("tokenizer does not terminate")
		}
	}
	if len(lexemes) != 3 || lexemes[1] != "≥" {
		t.Errorf("saw lexemes %v, want [x ≥ 5]", lexemes)
	}
}

func ExampleScan() {
	tokens, _ := scan.Scan("forall x (x >= 0)")
	for _, token := range tokens[:4] {
		fmt.Printf("%s %q\n", token.Type, token.Value)
	}
	// Output:
	// quantifier "∀"
	// variable "x"
	// opening parenthesis "("
	// variable "x"
}
