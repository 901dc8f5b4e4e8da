package english

import (
	"strings"
	"unicode"
)

// TokenKind classifies a normalized English token.
type TokenKind int8

// The closed set of normalized token kinds.
const (
	KW  TokenKind = iota // reserved canonical keyword, e.g. FORALL, SUCHTHAT, ℝ
	ID                   // a surviving identifier, case preserved
	NUM                  // numeric literal
	OP                   // comparison or membership operator, canonical spelling
)

// Token is a normalized English token. The canonicalizer guarantees that no
// ID token is ever silently dropped: every surviving identifier either
// becomes part of a matched structural pattern or reaches the predicate
// fallback.
type Token struct {
	Kind  TokenKind
	Value string
}

// Reserved keyword values produced by the canonicalizer.
const (
	kwForall     = "FORALL"
	kwExists     = "EXISTS"
	kwSuchThat   = "SUCHTHAT"
	kwAnd        = "AND"
	kwOr         = "OR"
	kwUnless     = "UNLESS"
	kwIff        = "IFF"
	kwOnlyIf     = "ONLYIF"
	kwIf         = "IF"
	kwThen       = "THEN"
	kwNecSuff    = "NECSUFF"
	kwSufficient = "SUFFICIENT"
	kwNecessary  = "NECESSARY"
	kwNot        = "NOT"
	kwComma      = ","
)

// domainKeywords maps the well-known domain symbols; a KW token carrying one
// of these is a domain reference, not a structural keyword.
var domainKeywords = map[string]bool{"ℝ": true, "ℤ": true, "ℚ": true, "ℕ": true, "ℂ": true}

func (t Token) isKW(value string) bool {
	return t.Kind == KW && t.Value == value
}

func (t Token) isQuantifier() bool {
	return t.Kind == KW && (t.Value == kwForall || t.Value == kwExists)
}

func (t Token) isDomain() bool {
	return t.Kind == KW && domainKeywords[t.Value]
}

// isStructural reports whether a token is a reserved structural keyword
// (everything KW except domain references and commas).
func (t Token) isStructural() bool {
	return t.Kind == KW && !t.isDomain() && t.Value != kwComma
}

// lexWords is the low-level tokenizer: it splits a (comparison-normalized)
// character stream into word, number and operator tokens. Words keep their
// original case; sentence punctuation is discarded, identifiers never are.
func lexWords(text string) []Token {
	var tokens []Token
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == ',':
			tokens = append(tokens, Token{Kind: KW, Value: kwComma})
			i++
		case r == '<' || r == '>' || r == '=' || r == '≤' || r == '≥' || r == '≠' ||
			r == '∈' || r == '∉':
			tokens = append(tokens, Token{Kind: OP, Value: string(r)})
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			value := strings.TrimRight(string(runes[start:i]), ".")
			tokens = append(tokens, Token{Kind: NUM, Value: value})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) &&
				(unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '\'') {
				i++
			}
			tokens = append(tokens, Token{Kind: ID, Value: string(runes[start:i])})
		default:
			i++ // sentence punctuation and stray symbols carry no meaning
		}
	}
	return tokens
}

// textOf reassembles a token span for error messages.
func textOf(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Value
	}
	return strings.Join(parts, " ")
}
