package english

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vocabulary bundles the word tables the English pipeline consults: domain
// noun phrases, relation phrases and the phrase→predicate-name dictionary.
// A Vocabulary is immutable after construction; clients wanting additional
// phrase mappings construct a new value with WithPhrase options. Translation
// functions take the Vocabulary as an explicit argument, so they stay pure.
type Vocabulary struct {
	phrases map[string]string // lowercase phrase → predicate name; always wins over derivation
}

// Option configures a Vocabulary.
type Option func(v *Vocabulary)

// WithPhrase maps an English phrase to a predicate name, overriding the
// default derivation. Phrases match case-insensitively.
func WithPhrase(phrase, name string) Option {
	return func(v *Vocabulary) {
		v.phrases[strings.ToLower(strings.TrimSpace(phrase))] = name
	}
}

// NewVocabulary creates a Vocabulary from the built-in tables plus any
// user-supplied phrase mappings.
func NewVocabulary(opts ...Option) *Vocabulary {
	v := &Vocabulary{phrases: make(map[string]string, len(defaultPhrases)+8)}
	for p, n := range defaultPhrases {
		v.phrases[p] = n
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// defaultVocabulary backs translations that pass a nil Vocabulary.
var defaultVocabulary = NewVocabulary()

// defaultPhrases are irregular phrase→name mappings where plain derivation
// would produce a clumsy identifier.
var defaultPhrases = map[string]string{
	"even number":     "Even",
	"odd number":      "Odd",
	"prime number":    "Prime",
	"positive number": "Positive",
	"negative number": "Negative",
}

// PredicateName looks up or derives a predicate name for a noun phrase.
// The dictionary is consulted first and always wins. Derivation drops leading
// articles and "being"/"is a" style prefixes, then PascalCases the remaining
// words.
func (v *Vocabulary) PredicateName(words []string) string {
	phrase := strings.ToLower(strings.Join(words, " "))
	if name, ok := v.phrases[phrase]; ok {
		return name
	}
	words = stripPhrasePrefix(words)
	if name, ok := v.phrases[strings.ToLower(strings.Join(words, " "))]; ok {
		return name
	}
	title := cases.Title(language.English)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(title.String(strings.ToLower(w)))
	}
	return sb.String()
}

// stripPhrasePrefix removes leading articles and copula filler ("being",
// "is", "a", "an", "the") from a noun phrase.
func stripPhrasePrefix(words []string) []string {
	for len(words) > 1 {
		switch strings.ToLower(words[0]) {
		case "a", "an", "the", "being", "is", "are", "one":
			words = words[1:]
		default:
			return words
		}
	}
	return words
}

// isArticle reports filler words skipped inside quantifier headers and term
// spans.
func isArticle(word string) bool {
	switch strings.ToLower(word) {
	case "a", "an", "the":
		return true
	}
	return false
}
