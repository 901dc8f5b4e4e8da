package english

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fol"
	"github.com/npillmayer/fol/scan"
)

// Context carries the surrounding state of a clause reduction. DefaultVar is
// the implicit subject for predicate-only fragments, set by the nearest
// enclosing quantifier ("x" at the top level).
type Context struct {
	DefaultVar string
	Vocab      *Vocabulary
}

func (ctx *Context) vocabulary() *Vocabulary {
	if ctx == nil || ctx.Vocab == nil {
		return defaultVocabulary
	}
	return ctx.Vocab
}

// matchStatus is the tri-state outcome of a recognizer: it either matched
// the span, was not applicable, or found the span malformed beyond repair.
// Only the last one aborts the whole reduction; "not applicable" simply
// passes the span on to the next recognizer in the cascade.
type matchStatus int8

const (
	noMatch matchStatus = iota
	matchedOK
	malformed
)

// matcher holds one clause span during reduction. Matchers are short-lived
// and pooled (see pool.go).
type matcher struct {
	tokens []Token
	ctx    *Context
}

// cascade is the fixed priority order of clause recognizers. Reduction tries
// them top to bottom; the first match wins.
var cascade []struct {
	name string
	try  func(*matcher) (fol.Expr, matchStatus, error)
}

func init() {
	cascade = []struct {
		name string
		try  func(*matcher) (fol.Expr, matchStatus, error)
	}{
		{"quantifier chain", (*matcher).quantifierChain},
		{"quantifier", (*matcher).singleQuantifier},
		{"relation", (*matcher).relation},
		{"condition", (*matcher).condition},
		{"conditional", (*matcher).conditional},
		{"connective", (*matcher).connective},
		{"negation", (*matcher).negation},
		{"predicate", (*matcher).predicate},
	}
}

// parseClause reduces a span of normalized tokens to a formula node,
// recursing into sub-spans. The second return value lists tokens the
// reduction could not consume; callers must treat a non-empty rest as an
// error (the top-level entry point does).
func parseClause(tokens []Token, ctx *Context) (fol.Expr, []Token, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("empty clause")
	}
	m := newPooledMatcher(tokens, ctx)
	defer m.release()
	for _, rec := range cascade {
		expr, status, err := rec.try(m)
		switch status {
		case malformed:
			tracer().Infof("%s recognizer rejects %q: %v", rec.name, textOf(tokens), err)
			return nil, nil, err
		case matchedOK:
			tracer().Debugf("%s recognizer matched %q", rec.name, textOf(tokens))
			return expr, nil, nil
		}
	}
	return nil, tokens, fmt.Errorf("cannot understand %q", textOf(tokens))
}

// sub parses a sub-span under the same context, folding the leftover check
// into the error.
func (m *matcher) sub(tokens []Token) (fol.Expr, error) {
	expr, rest, err := parseClause(tokens, m.ctx)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("cannot understand %q", textOf(rest))
	}
	return expr, nil
}

// --- Quantifiers -----------------------------------------------------------

type quantHeader struct {
	q      fol.Quant
	domain *fol.DomainRef
	name   string
}

// parseHeader parses one quantifier header starting at index i: the
// quantifier keyword, an optional domain phrase (already collapsed to a
// domain keyword by the canonicalizer, with articles and noun filler
// around it), the variable, and an optional "in <domain>" tail.
func (m *matcher) parseHeader(i int) (quantHeader, int, error) {
	h := quantHeader{q: fol.Forall}
	if m.tokens[i].Value == kwExists {
		h.q = fol.Exists
	}
	i++
	filler := 0
	for i < len(m.tokens) && filler < 3 {
		t := m.tokens[i]
		if t.Kind == ID && isArticle(t.Value) {
			i++
			continue
		}
		if t.isDomain() {
			h.domain = &fol.DomainRef{Name: t.Value}
			i++
			continue
		}
		if t.Kind == ID && scan.IsVariableName(t.Value) {
			h.name = t.Value
			i++
			break
		}
		if t.Kind == ID { // domain noun without a known symbol, e.g. "numbers"
			i++
			filler++
			continue
		}
		break
	}
	if h.name == "" {
		return h, i, fmt.Errorf("malformed quantifier header in %q", textOf(m.tokens))
	}
	if i+1 < len(m.tokens) && m.tokens[i].Kind == OP && m.tokens[i].Value == "∈" {
		t := m.tokens[i+1]
		if t.isDomain() || t.Kind == ID {
			h.domain = &fol.DomainRef{Name: t.Value}
			i += 2
		} else {
			return h, i, fmt.Errorf("malformed domain in quantifier header in %q", textOf(m.tokens))
		}
	}
	return h, i, nil
}

// quantifierChain reduces a run of quantifier headers separated by commas
// and terminated by a scope marker (or the last comma), wrapping a single
// recursively parsed body in right-nested quantifiers. A lone plain header
// without scope marker is left to the single-quantifier recognizer.
func (m *matcher) quantifierChain() (fol.Expr, matchStatus, error) {
	if !m.tokens[0].isQuantifier() {
		return nil, noMatch, nil
	}
	var headers []quantHeader
	i := 0
	sawMarker := false
	for i < len(m.tokens) && m.tokens[i].isQuantifier() {
		h, next, err := m.parseHeader(i)
		if err != nil {
			return nil, malformed, err
		}
		headers = append(headers, h)
		i = next
		if i < len(m.tokens) && m.tokens[i].isKW(kwComma) {
			if i+1 < len(m.tokens) && m.tokens[i+1].isQuantifier() {
				i++ // comma between headers
				continue
			}
			i++ // the last comma ends the chain
			break
		}
		if i < len(m.tokens) && m.tokens[i].isKW(kwSuchThat) {
			i++
			sawMarker = true
			break
		}
		break
	}
	if len(headers) < 2 && !sawMarker {
		return nil, noMatch, nil
	}
	return m.wrapQuantifiers(headers, m.tokens[i:])
}

// singleQuantifier reduces a lone quantifier header that is not part of a
// multi-header chain.
func (m *matcher) singleQuantifier() (fol.Expr, matchStatus, error) {
	if !m.tokens[0].isQuantifier() {
		return nil, noMatch, nil
	}
	h, i, err := m.parseHeader(0)
	if err != nil {
		return nil, malformed, err
	}
	if i < len(m.tokens) && (m.tokens[i].isKW(kwComma) || m.tokens[i].isKW(kwSuchThat)) {
		i++
	}
	return m.wrapQuantifiers([]quantHeader{h}, m.tokens[i:])
}

func (m *matcher) wrapQuantifiers(headers []quantHeader, body []Token) (fol.Expr, matchStatus, error) {
	if len(body) == 0 {
		return nil, malformed, fmt.Errorf("quantifier without a body in %q", textOf(m.tokens))
	}
	inner := headers[len(headers)-1]
	ctx := &Context{DefaultVar: inner.name, Vocab: m.ctx.Vocab}
	expr, rest, err := parseClause(body, ctx)
	if err != nil {
		return nil, malformed, err
	}
	if len(rest) > 0 {
		return nil, malformed, fmt.Errorf("cannot understand %q", textOf(rest))
	}
	for j := len(headers) - 1; j >= 0; j-- {
		h := headers[j]
		expr = &fol.Quantifier{Q: h.q, Var: h.name, Domain: h.domain, Body: expr}
	}
	return expr, matchedOK, nil
}

// --- Relations -------------------------------------------------------------

// relation reduces a pure term-operator-term span. The canonical scan order
// is left to right, first operator token wins. Spans containing structural
// keywords are not relations — the keyword recognizers further down split
// them first and recurse back here.
func (m *matcher) relation() (fol.Expr, matchStatus, error) {
	op := -1
	for i, t := range m.tokens {
		if t.isStructural() || t.isKW(kwComma) {
			return nil, noMatch, nil
		}
		if t.Kind == OP && op < 0 {
			op = i
		}
	}
	if op < 0 {
		return m.domainMembership()
	}
	left, ok := termFromSpan(m.tokens[:op])
	if !ok {
		return nil, malformed, fmt.Errorf("cannot read the left side of the comparison in %q", textOf(m.tokens))
	}
	right, ok := termFromSpan(m.tokens[op+1:])
	if !ok {
		return nil, malformed, fmt.Errorf("cannot read the right side of the comparison in %q", textOf(m.tokens))
	}
	return &fol.Relation{Op: fol.RelOp(m.tokens[op].Value), Left: left, Right: right}, matchedOK, nil
}

// domainMembership recognizes the noun form of membership, "x is a real
// number", which the pre-pass cannot rewrite because no operator phrase
// occurs: a term span ending in a domain keyword becomes t ∈ D.
func (m *matcher) domainMembership() (fol.Expr, matchStatus, error) {
	last := len(m.tokens) - 1
	if last < 1 || !m.tokens[last].isDomain() {
		return nil, noMatch, nil
	}
	span := m.tokens[:last]
	if len(span) > 1 && span[len(span)-1].Kind == ID && strings.EqualFold(span[len(span)-1].Value, "is") {
		span = span[:len(span)-1]
	}
	left, ok := termFromSpan(span)
	if !ok {
		return nil, noMatch, nil
	}
	return &fol.Relation{
		Op:    fol.In,
		Left:  left,
		Right: &fol.Const{Name: m.tokens[last].Value},
	}, matchedOK, nil
}

// termFromSpan reads a one-token term, tolerating article filler around it.
func termFromSpan(span []Token) (fol.Term, bool) {
	var core []Token
	for _, t := range span {
		if t.Kind == ID && (isArticle(t.Value) || strings.EqualFold(t.Value, "is")) {
			continue
		}
		core = append(core, t)
	}
	if len(core) != 1 {
		return nil, false
	}
	t := core[0]
	switch {
	case t.Kind == NUM:
		return &fol.NumberLiteral{Value: t.Value}, true
	case t.isDomain():
		return &fol.Const{Name: t.Value}, true
	case t.Kind == ID && scan.IsVariableName(t.Value):
		return &fol.Var{Name: t.Value}, true
	case t.Kind == ID:
		return &fol.Const{Name: t.Value}, true
	}
	return nil, false
}

// --- Necessity and sufficiency ---------------------------------------------

// condition reduces "A is sufficient for B" style spans. Sufficiency is
// A → B, necessity reverses to B → A, "necessary and sufficient" is A ↔ B.
// When a side talks about the implicit subject, the implication is
// universally quantified over it; two bare named statements stay a plain
// implication.
func (m *matcher) condition() (fol.Expr, matchStatus, error) {
	idx, kw := -1, ""
	for i, t := range m.tokens {
		if t.isKW(kwNecSuff) || t.isKW(kwSufficient) || t.isKW(kwNecessary) {
			idx, kw = i, t.Value
			break
		}
	}
	if idx < 0 {
		return nil, noMatch, nil
	}
	if idx == 0 || idx == len(m.tokens)-1 {
		return nil, malformed, fmt.Errorf("incomplete condition in %q", textOf(m.tokens))
	}
	aExpr, err := m.sub(m.tokens[:idx])
	if err != nil {
		return nil, malformed, err
	}
	bExpr, err := m.sub(m.tokens[idx+1:])
	if err != nil {
		return nil, malformed, err
	}
	var impl fol.Expr
	switch kw {
	case kwSufficient:
		impl = &fol.Binary{Op: fol.Impl, Left: aExpr, Right: bExpr}
	case kwNecessary:
		impl = &fol.Binary{Op: fol.Impl, Left: bExpr, Right: aExpr}
	default: // NECSUFF
		impl = &fol.Binary{Op: fol.Iff, Left: aExpr, Right: bExpr}
	}
	dv := m.ctx.DefaultVar
	if mentionsVar(aExpr, dv) || mentionsVar(bExpr, dv) {
		return &fol.Quantifier{Q: fol.Forall, Var: dv, Body: impl}, matchedOK, nil
	}
	return impl, matchedOK, nil
}

// --- Conditionals ----------------------------------------------------------

func (m *matcher) conditional() (fol.Expr, matchStatus, error) {
	if idx := m.indexOfKW(kwIff); idx >= 0 {
		return m.splitBinary(idx, fol.Iff, false)
	}
	if idx := m.indexOfKW(kwOnlyIf); idx >= 0 {
		return m.splitBinary(idx, fol.Impl, false)
	}
	if m.tokens[0].isKW(kwIf) {
		// "if A then B"; a comma may stand in for "then"
		sep := m.indexOfKW(kwThen)
		if sep < 0 {
			sep = m.indexOfKW(kwComma)
		}
		if sep < 0 {
			return nil, malformed, fmt.Errorf("'if' without 'then' in %q", textOf(m.tokens))
		}
		ante, err := m.sub(m.tokens[1:sep])
		if err != nil {
			return nil, malformed, err
		}
		cons, err := m.sub(m.tokens[sep+1:])
		if err != nil {
			return nil, malformed, err
		}
		return &fol.Binary{Op: fol.Impl, Left: ante, Right: cons}, matchedOK, nil
	}
	if idx := m.indexOfKW(kwIf); idx >= 0 {
		// "A if B" means B implies A
		return m.splitBinary(idx, fol.Impl, true)
	}
	if idx := m.indexOfKW(kwUnless); idx >= 0 {
		// "A unless B" means ¬B implies A
		a, err := m.sub(m.tokens[:idx])
		if err != nil {
			return nil, malformed, err
		}
		b, err := m.sub(m.tokens[idx+1:])
		if err != nil {
			return nil, malformed, err
		}
		return &fol.Binary{Op: fol.Impl, Left: &fol.Negation{Body: b}, Right: a}, matchedOK, nil
	}
	return nil, noMatch, nil
}

func (m *matcher) indexOfKW(value string) int {
	for i, t := range m.tokens {
		if t.isKW(value) {
			return i
		}
	}
	return -1
}

func (m *matcher) splitBinary(idx int, op fol.BinOp, reversed bool) (fol.Expr, matchStatus, error) {
	if idx == 0 || idx == len(m.tokens)-1 {
		return nil, malformed, fmt.Errorf("incomplete connective in %q", textOf(m.tokens))
	}
	left, err := m.sub(m.tokens[:idx])
	if err != nil {
		return nil, malformed, err
	}
	right, err := m.sub(m.tokens[idx+1:])
	if err != nil {
		return nil, malformed, err
	}
	if reversed {
		left, right = right, left
	}
	return &fol.Binary{Op: op, Left: left, Right: right}, matchedOK, nil
}

// --- Binary connectives ----------------------------------------------------

// connective splits on OR before AND (weakest binding first), left-biased on
// the first occurrence. A span-initial OR token is the "either" opener, not
// a split point.
func (m *matcher) connective() (fol.Expr, matchStatus, error) {
	for _, kw := range []string{kwOr, kwAnd} {
		start := 0
		if kw == kwOr && m.tokens[0].isKW(kwOr) {
			start = 1 // "either A or B"
		}
		for i := start + 1; i < len(m.tokens)-1; i++ {
			if !m.tokens[i].isKW(kw) {
				continue
			}
			op := fol.Or
			if kw == kwAnd {
				op = fol.And
			}
			left, err := m.sub(m.tokens[start:i])
			if err != nil {
				return nil, malformed, err
			}
			right, err := m.sub(m.tokens[i+1:])
			if err != nil {
				return nil, malformed, err
			}
			return &fol.Binary{Op: op, Left: left, Right: right}, matchedOK, nil
		}
	}
	return nil, noMatch, nil
}

// --- Negation --------------------------------------------------------------

func (m *matcher) negation() (fol.Expr, matchStatus, error) {
	if !m.tokens[0].isKW(kwNot) {
		return nil, noMatch, nil
	}
	if len(m.tokens) == 1 {
		return nil, malformed, fmt.Errorf("dangling negation in %q", textOf(m.tokens))
	}
	body, err := m.sub(m.tokens[1:])
	if err != nil {
		return nil, malformed, err
	}
	return &fol.Negation{Body: body}, matchedOK, nil
}

// --- Predicate fallback ----------------------------------------------------

// predicate is the last recognizer: the span is read as a property of the
// implicit subject. "is <phrase>" and "has <phrase>" name the predicate from
// the phrase; a lone variable-shaped identifier becomes a bare statement
// over itself. Spans still containing structural keywords or operators can
// not be coerced into a predicate and are reported as not understood.
func (m *matcher) predicate() (fol.Expr, matchStatus, error) {
	for _, t := range m.tokens {
		if t.isStructural() || t.isDomain() || t.Kind == OP || t.isKW(kwComma) {
			return nil, malformed, fmt.Errorf("cannot understand %q", textOf(m.tokens))
		}
	}
	vocab := m.ctx.vocabulary()
	dv := m.ctx.DefaultVar
	toks := m.tokens
	// an explicit subject, "n is even", takes over from the implicit one
	if len(toks) > 2 && toks[0].Kind == ID && scan.IsVariableName(toks[0].Value) &&
		toks[1].Kind == ID &&
		(strings.EqualFold(toks[1].Value, "is") || strings.EqualFold(toks[1].Value, "has")) {
		dv = toks[0].Value
		toks = toks[1:]
	}
	if len(toks) > 1 && toks[0].Kind == ID && strings.EqualFold(toks[0].Value, "is") {
		name := vocab.PredicateName(wordsOf(toks[1:]))
		return m.predicateOf(name, dv)
	}
	if len(toks) > 1 && toks[0].Kind == ID && strings.EqualFold(toks[0].Value, "has") {
		name := "Has" + vocab.PredicateName(wordsOf(toks[1:]))
		return m.predicateOf(name, dv)
	}
	if len(toks) == 1 && toks[0].Kind == ID && scan.IsVariableName(toks[0].Value) {
		n := toks[0].Value
		return &fol.Predicate{Name: n, Args: []fol.Term{&fol.Var{Name: n}}}, matchedOK, nil
	}
	if len(toks) == 1 && toks[0].Kind == NUM {
		return nil, malformed, fmt.Errorf("a number alone is not a statement: %q", toks[0].Value)
	}
	name := vocab.PredicateName(wordsOf(toks))
	if name == "" {
		return nil, malformed, fmt.Errorf("cannot understand %q", textOf(m.tokens))
	}
	return m.predicateOf(name, dv)
}

func (m *matcher) predicateOf(name, subject string) (fol.Expr, matchStatus, error) {
	if name == "" {
		return nil, malformed, fmt.Errorf("cannot understand %q", textOf(m.tokens))
	}
	return &fol.Predicate{Name: name, Args: []fol.Term{&fol.Var{Name: subject}}}, matchedOK, nil
}

func wordsOf(tokens []Token) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == ID || t.Kind == NUM {
			words = append(words, t.Value)
		}
	}
	return words
}

// mentionsVar reports whether a formula tree references a variable by name.
func mentionsVar(e fol.Expr, name string) bool {
	switch n := e.(type) {
	case *fol.Quantifier:
		return mentionsVar(n.Body, name)
	case *fol.Predicate:
		for _, arg := range n.Args {
			if termMentions(arg, name) {
				return true
			}
		}
	case *fol.Relation:
		return termMentions(n.Left, name) || termMentions(n.Right, name)
	case *fol.Negation:
		return mentionsVar(n.Body, name)
	case *fol.Binary:
		return mentionsVar(n.Left, name) || mentionsVar(n.Right, name)
	}
	return false
}

func termMentions(t fol.Term, name string) bool {
	switch n := t.(type) {
	case *fol.Var:
		return n.Name == name
	case *fol.FunctionApp:
		for _, arg := range n.Args {
			if termMentions(arg, name) {
				return true
			}
		}
	case *fol.Paren:
		return termMentions(n.Inner, name)
	}
	return false
}
