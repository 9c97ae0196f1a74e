// Package lexicon holds the scoring tables used by the sentiment engine.
// A Lexicon is built once, validated at construction, and read-only after
// that, so it is safe to share across workers without locking.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"
)

type Lexicon struct {
	scores    map[string]int
	negations map[string]struct{}
	refund    []*regexp.Regexp
}

// Option overrides one of the default tables before validation.
type Option func(*builder)

type builder struct {
	scores         map[string]int
	negations      []string
	refundPatterns []string
}

func WithScores(scores map[string]int) Option {
	return func(b *builder) { b.scores = scores }
}

func WithNegations(words ...string) Option {
	return func(b *builder) { b.negations = words }
}

func WithRefundPatterns(patterns ...string) Option {
	return func(b *builder) { b.refundPatterns = patterns }
}

func defaultScores() map[string]int {
	return map[string]int{
		"good": 1, "great": 2, "excellent": 3, "happy": 1,
		"satisfied": 2, "amazing": 2, "fantastic": 3,
		"love": 2, "best": 3,
		"bad": -1, "poor": -2, "sad": -1,
		"terrible": -3, "worst": -3,
		"refund": -2, "return": -1,
		"damaged": -2, "broken": -2,
		"disappointed": -2, "unhappy": -2,
		"useless": -3,
	}
}

var defaultNegations = []string{"not", "never", "no", "hardly"}

// Refund patterns run against cleaned text, which keeps its whitespace, so
// multi-word phrases like "money back" still match.
var defaultRefundPatterns = []string{
	`\brefund\b`,
	`\breplaced\b`,
	`\breturn\b`,
	`\bmoney back\b`,
	`\breplacement\b`,
}

// New builds a Lexicon from the stock tables, applying any overrides.
func New(opts ...Option) (*Lexicon, error) {
	b := &builder{
		scores:         defaultScores(),
		negations:      defaultNegations,
		refundPatterns: defaultRefundPatterns,
	}
	for _, opt := range opts {
		opt(b)
	}

	lex := &Lexicon{
		scores:    make(map[string]int, len(b.scores)),
		negations: make(map[string]struct{}, len(b.negations)),
		refund:    make([]*regexp.Regexp, 0, len(b.refundPatterns)),
	}

	for word, weight := range b.scores {
		if word == "" || word != strings.ToLower(word) {
			return nil, fmt.Errorf("lexicon word %q must be non-empty lowercase", word)
		}
		if weight == 0 {
			return nil, fmt.Errorf("lexicon word %q has zero weight", word)
		}
		lex.scores[word] = weight
	}

	for _, word := range b.negations {
		if word == "" || word != strings.ToLower(word) {
			return nil, fmt.Errorf("negation word %q must be non-empty lowercase", word)
		}
		lex.negations[word] = struct{}{}
	}

	for _, pattern := range b.refundPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile refund pattern %q: %w", pattern, err)
		}
		lex.refund = append(lex.refund, re)
	}

	return lex, nil
}

// Default returns the stock lexicon. It never fails; the built-in tables
// are covered by tests.
func Default() *Lexicon {
	lex, err := New()
	if err != nil {
		panic(err)
	}
	return lex
}

// Weight returns the signed weight for a word and whether it is known.
func (l *Lexicon) Weight(word string) (int, bool) {
	w, ok := l.scores[word]
	return w, ok
}

func (l *Lexicon) IsNegation(word string) bool {
	_, ok := l.negations[word]
	return ok
}

// MatchesRefund reports whether any refund pattern matches the cleaned text.
func (l *Lexicon) MatchesRefund(cleaned string) bool {
	for _, re := range l.refund {
		if re.MatchString(cleaned) {
			return true
		}
	}
	return false
}

func (l *Lexicon) Size() int {
	return len(l.scores)
}
