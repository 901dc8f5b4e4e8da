package english

import (
	"sort"
	"strings"

	"github.com/npillmayer/fol/scan"
)

// comparisonPhrases rewrite multi-word comparison and membership wording
// directly in the character stream, before tokenization. This pass must run
// first: some trigger phrases contain the word "or" ("greater than or equal
// to"), which the later keyword pass would misread as a disjunction. Ordered
// longest-first; matching is case-insensitive on word boundaries.
var comparisonPhrases = []struct {
	phrase string
	symbol string
}{
	{"is greater than or equal to", "≥"},
	{"is less than or equal to", "≤"},
	{"greater than or equal to", "≥"},
	{"less than or equal to", "≤"},
	{"is not an element of", "∉"},
	{"is not a member of", "∉"},
	{"does not belong to", "∉"},
	{"is an element of", "∈"},
	{"is a member of", "∈"},
	{"is different from", "≠"},
	{"is not equal to", "≠"},
	{"does not equal", "≠"},
	{"is greater than", ">"},
	{"is less than", "<"},
	{"not equal to", "≠"},
	{"greater than", ">"},
	{"is at least", "≥"},
	{"is at most", "≤"},
	{"is equal to", "="},
	{"belongs to", "∈"},
	{"less than", "<"},
	{"equal to", "="},
	{"is not in", "∉"},
	{"equals", "="},
	{"is in", "∈"},
}

// normalizeComparisons substitutes Unicode relation symbols for relation
// phrases in place, leaving all other characters untouched.
func normalizeComparisons(text string) string {
	var sb strings.Builder
	i := 0
	for i < len(text) {
		if wordBoundaryBefore(text, i) {
			if phrase, symbol := matchComparison(text, i); phrase != "" {
				sb.WriteString(" ")
				sb.WriteString(symbol)
				sb.WriteString(" ")
				i += len(phrase)
				continue
			}
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}

func matchComparison(text string, i int) (string, string) {
	for _, cp := range comparisonPhrases {
		end := i + len(cp.phrase)
		if end <= len(text) && strings.EqualFold(text[i:end], cp.phrase) &&
			wordBoundaryAfter(text, end) {
			return cp.phrase, cp.symbol
		}
	}
	return "", ""
}

func wordBoundaryBefore(text string, i int) bool {
	return i == 0 || !isWordByte(text[i-1])
}

func wordBoundaryAfter(text string, i int) bool {
	return i >= len(text) || !isWordByte(text[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// phraseRules rewrite multi-token English phrases into single reserved
// keyword tokens. Sorted longest-phrase-first at init, so that "only if"
// always wins over "if", "every time" over "every", "real number" over
// "real", and so on. Identifiers not covered by any rule survive untouched
// and in original case.
var phraseRules = []struct {
	words []string
	out   Token
}{
	// universal quantifier openers
	{[]string{"for", "all"}, Token{KW, kwForall}},
	{[]string{"for", "every"}, Token{KW, kwForall}},
	{[]string{"for", "each"}, Token{KW, kwForall}},
	{[]string{"for", "any"}, Token{KW, kwForall}},
	{[]string{"given", "any"}, Token{KW, kwForall}},
	{[]string{"all"}, Token{KW, kwForall}},
	{[]string{"every"}, Token{KW, kwForall}},
	{[]string{"any"}, Token{KW, kwForall}},
	{[]string{"each"}, Token{KW, kwForall}},
	// existential openers
	{[]string{"there", "exists"}, Token{KW, kwExists}},
	{[]string{"there", "exist"}, Token{KW, kwExists}},
	{[]string{"there", "is"}, Token{KW, kwExists}},
	{[]string{"there", "are"}, Token{KW, kwExists}},
	{[]string{"we", "can", "find"}, Token{KW, kwExists}},
	{[]string{"for", "some"}, Token{KW, kwExists}},
	{[]string{"some"}, Token{KW, kwExists}},
	// scope markers
	{[]string{"such", "that"}, Token{KW, kwSuchThat}},
	{[]string{"so", "that"}, Token{KW, kwSuchThat}},
	{[]string{"where"}, Token{KW, kwSuchThat}},
	{[]string{"with", "the", "property", "that"}, Token{KW, kwSuchThat}},
	// connectives
	{[]string{"and"}, Token{KW, kwAnd}},
	{[]string{"plus"}, Token{KW, kwAnd}},
	{[]string{"also"}, Token{KW, kwAnd}},
	{[]string{"but"}, Token{KW, kwAnd}},
	{[]string{"or", "else"}, Token{KW, kwOr}},
	{[]string{"or"}, Token{KW, kwOr}},
	{[]string{"either"}, Token{KW, kwOr}},
	{[]string{"unless"}, Token{KW, kwUnless}},
	// conditionals
	{[]string{"if", "and", "only", "if"}, Token{KW, kwIff}},
	{[]string{"iff"}, Token{KW, kwIff}},
	{[]string{"only", "if"}, Token{KW, kwOnlyIf}},
	{[]string{"whenever"}, Token{KW, kwIf}},
	{[]string{"every", "time"}, Token{KW, kwIf}},
	{[]string{"if"}, Token{KW, kwIf}},
	{[]string{"then"}, Token{KW, kwThen}},
	// necessity and sufficiency
	{[]string{"is", "a", "necessary", "and", "sufficient", "condition", "for"}, Token{KW, kwNecSuff}},
	{[]string{"is", "necessary", "and", "sufficient", "for"}, Token{KW, kwNecSuff}},
	{[]string{"necessary", "and", "sufficient", "for"}, Token{KW, kwNecSuff}},
	{[]string{"necessary", "and", "sufficient"}, Token{KW, kwNecSuff}},
	{[]string{"is", "a", "sufficient", "condition", "for"}, Token{KW, kwSufficient}},
	{[]string{"a", "sufficient", "condition", "for"}, Token{KW, kwSufficient}},
	{[]string{"sufficient", "condition", "for"}, Token{KW, kwSufficient}},
	{[]string{"is", "sufficient", "for"}, Token{KW, kwSufficient}},
	{[]string{"sufficient", "for"}, Token{KW, kwSufficient}},
	{[]string{"sufficient"}, Token{KW, kwSufficient}},
	{[]string{"is", "a", "necessary", "condition", "for"}, Token{KW, kwNecessary}},
	{[]string{"a", "necessary", "condition", "for"}, Token{KW, kwNecessary}},
	{[]string{"necessary", "condition", "for"}, Token{KW, kwNecessary}},
	{[]string{"is", "necessary", "for"}, Token{KW, kwNecessary}},
	{[]string{"necessary", "for"}, Token{KW, kwNecessary}},
	{[]string{"is", "required", "for"}, Token{KW, kwNecessary}},
	{[]string{"required", "for"}, Token{KW, kwNecessary}},
	{[]string{"necessary"}, Token{KW, kwNecessary}},
	{[]string{"requires"}, Token{KW, kwNecessary}},
	{[]string{"required"}, Token{KW, kwNecessary}},
	{[]string{"depends", "on"}, Token{KW, kwNecessary}},
	{[]string{"depends"}, Token{KW, kwNecessary}},
	// negation
	{[]string{"it", "is", "not", "the", "case", "that"}, Token{KW, kwNot}},
	{[]string{"not"}, Token{KW, kwNot}},
	// membership preposition, e.g. "x in ℝ"
	{[]string{"in"}, Token{OP, "∈"}},
	// domain noun phrases
	{[]string{"real", "numbers"}, Token{KW, "ℝ"}},
	{[]string{"real", "number"}, Token{KW, "ℝ"}},
	{[]string{"reals"}, Token{KW, "ℝ"}},
	{[]string{"real"}, Token{KW, "ℝ"}},
	{[]string{"whole", "numbers"}, Token{KW, "ℤ"}},
	{[]string{"whole", "number"}, Token{KW, "ℤ"}},
	{[]string{"integers"}, Token{KW, "ℤ"}},
	{[]string{"integer"}, Token{KW, "ℤ"}},
	{[]string{"rational", "numbers"}, Token{KW, "ℚ"}},
	{[]string{"rational", "number"}, Token{KW, "ℚ"}},
	{[]string{"rationals"}, Token{KW, "ℚ"}},
	{[]string{"rational"}, Token{KW, "ℚ"}},
	{[]string{"natural", "numbers"}, Token{KW, "ℕ"}},
	{[]string{"natural", "number"}, Token{KW, "ℕ"}},
	{[]string{"naturals"}, Token{KW, "ℕ"}},
	{[]string{"natural"}, Token{KW, "ℕ"}},
	{[]string{"complex", "numbers"}, Token{KW, "ℂ"}},
	{[]string{"complex", "number"}, Token{KW, "ℂ"}},
	{[]string{"complex"}, Token{KW, "ℂ"}},
}

func init() {
	sort.SliceStable(phraseRules, func(i, j int) bool {
		return len(phraseRules[i].words) > len(phraseRules[j].words)
	})
}

// NormalizeTokens normalizes free-form controlled English into canonical
// tokens: the comparison pre-pass rewrites relation wording in the character
// stream, the low-level tokenizer splits it into words, numbers and
// operators, and the phrase pass collapses multi-word structural phrases
// into single keyword tokens.
func NormalizeTokens(text string) []Token {
	text = normalizeComparisons(scan.NormalizeInput(text))
	words := lexWords(text)
	tokens := canonicalize(words)
	tracer().Debugf("normalized into %d tokens: %v", len(tokens), tokens)
	return tokens
}

func canonicalize(words []Token) []Token {
	var tokens []Token
	i := 0
	for i < len(words) {
		if words[i].Kind != ID {
			tokens = append(tokens, words[i])
			i++
			continue
		}
		if out, n := matchPhrase(words, i); n > 0 {
			tokens = append(tokens, out)
			i += n
			continue
		}
		tokens = append(tokens, words[i])
		i++
	}
	return tokens
}

// matchPhrase tries all phrase rules at position i, longest first.
func matchPhrase(words []Token, i int) (Token, int) {
	for _, rule := range phraseRules {
		if i+len(rule.words) > len(words) {
			continue
		}
		hit := true
		for j, w := range rule.words {
			if words[i+j].Kind != ID || !strings.EqualFold(words[i+j].Value, w) {
				hit = false
				break
			}
		}
		if hit {
			return rule.out, len(rule.words)
		}
	}
	return Token{}, 0
}
