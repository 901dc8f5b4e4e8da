package fol

// Quant is the kind of a quantifier node.
type Quant int8

// Quantifier kinds.
const (
	Forall Quant = iota // universal quantification ∀
	Exists              // existential quantification ∃
)

// Symbol returns the logic symbol for a quantifier kind.
func (q Quant) Symbol() string {
	if q == Exists {
		return "∃"
	}
	return "∀"
}

// BinOp is the operator of a binary connective node.
type BinOp int8

// Binary connectives, from strongest to weakest binding.
const (
	And BinOp = iota // conjunction ∧
	Or               // disjunction ∨
	Impl             // implication →
	Iff              // biconditional ↔
)

// Symbol returns the logic symbol for a binary connective.
func (op BinOp) Symbol() string {
	switch op {
	case And:
		return "∧"
	case Or:
		return "∨"
	case Impl:
		return "→"
	case Iff:
		return "↔"
	}
	return "?"
}

// RelOp is a comparison or membership operator of a relation node.
// Values are the canonical Unicode spellings.
type RelOp string

// Relation operators.
const (
	Less      RelOp = "<"
	LessEq    RelOp = "≤"
	Greater   RelOp = ">"
	GreaterEq RelOp = "≥"
	Equal     RelOp = "="
	NotEqual  RelOp = "≠"
	In        RelOp = "∈"
	NotIn     RelOp = "∉"
)

// A DomainRef names the domain a quantified variable ranges over, e.g. ℝ or ℤ.
// It is advisory metadata for printing and rendering; no semantic checks are
// tied to it.
type DomainRef struct {
	Name string
}

// Expr is a node of a formula tree. It is a closed sum type: the only
// implementations are Quantifier, Predicate, Relation, Negation and Binary.
// Expr values are immutable once built; transformations create new nodes.
type Expr interface {
	exprNode()
}

// Quantifier binds Var for the whole of Body and for nothing else.
// Domain may be nil.
type Quantifier struct {
	Q      Quant
	Var    string
	Domain *DomainRef
	Body   Expr
}

// Predicate applies a named predicate to its arguments, e.g. Prime(n).
type Predicate struct {
	Name string
	Args []Term
}

// Relation compares two terms, e.g. x < y or n ∈ ℕ.
type Relation struct {
	Op    RelOp
	Left  Term
	Right Term
}

// Negation negates its body.
type Negation struct {
	Body Expr
}

// Binary joins two sub-formulas with a connective.
type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (e *Quantifier) exprNode() {}
func (e *Predicate) exprNode()  {}
func (e *Relation) exprNode()   {}
func (e *Negation) exprNode()   {}
func (e *Binary) exprNode()     {}

// Term is a leaf-side node of a formula: an argument of a predicate or an
// operand of a relation. It is a closed sum type: the only implementations
// are Var, NumberLiteral, Const, FunctionApp and Paren.
type Term interface {
	termNode()
}

// Var references a (possibly bound) variable by name.
type Var struct {
	Name string
}

// NumberLiteral is a numeric literal; the lexeme is kept verbatim.
type NumberLiteral struct {
	Value string
}

// Const names a constant symbol, e.g. ℝ or e.
type Const struct {
	Name string
}

// FunctionApp applies a named function to argument terms, e.g. f(x, 1).
type FunctionApp struct {
	Name string
	Args []Term
}

// Paren wraps a term that was explicitly parenthesized in the input.
type Paren struct {
	Inner Term
}

func (t *Var) termNode()           {}
func (t *NumberLiteral) termNode() {}
func (t *Const) termNode()         {}
func (t *FunctionApp) termNode()   {}
func (t *Paren) termNode()         {}

// EqualExpr compares two formula trees structurally. Source positions play no
// role (the trees carry none); variable names compare verbatim.
func EqualExpr(a, b Expr) bool {
	switch x := a.(type) {
	case *Quantifier:
		y, ok := b.(*Quantifier)
		if !ok || x.Q != y.Q || x.Var != y.Var {
			return false
		}
		if (x.Domain == nil) != (y.Domain == nil) {
			return false
		}
		if x.Domain != nil && x.Domain.Name != y.Domain.Name {
			return false
		}
		return EqualExpr(x.Body, y.Body)
	case *Predicate:
		y, ok := b.(*Predicate)
		if !ok || x.Name != y.Name {
			return false
		}
		return equalTerms(x.Args, y.Args)
	case *Relation:
		y, ok := b.(*Relation)
		if !ok || x.Op != y.Op {
			return false
		}
		return EqualTerm(x.Left, y.Left) && EqualTerm(x.Right, y.Right)
	case *Negation:
		y, ok := b.(*Negation)
		if !ok {
			return false
		}
		return EqualExpr(x.Body, y.Body)
	case *Binary:
		y, ok := b.(*Binary)
		if !ok || x.Op != y.Op {
			return false
		}
		return EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	}
	return a == nil && b == nil
}

// EqualTerm compares two terms structurally.
func EqualTerm(a, b Term) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *NumberLiteral:
		y, ok := b.(*NumberLiteral)
		return ok && x.Value == y.Value
	case *Const:
		y, ok := b.(*Const)
		return ok && x.Name == y.Name
	case *FunctionApp:
		y, ok := b.(*FunctionApp)
		if !ok || x.Name != y.Name {
			return false
		}
		return equalTerms(x.Args, y.Args)
	case *Paren:
		y, ok := b.(*Paren)
		if !ok {
			return false
		}
		return EqualTerm(x.Inner, y.Inner)
	}
	return a == nil && b == nil
}

func equalTerms(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualTerm(a[i], b[i]) {
			return false
		}
	}
	return true
}
