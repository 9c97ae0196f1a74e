// Package sentiment implements the rule-based review scorer: text
// normalization, the lexicon scan with single-token negation, refund-intent
// detection, and the rating-based ground-truth mapping.
package sentiment

import (
	"fmt"
	"strings"

	"github.com/spacesedan/reviewpulse/internal/lexicon"
	"github.com/spacesedan/reviewpulse/internal/models"
)

// Engine scores one review at a time against an injected lexicon. It holds
// no mutable state, so a single Engine is shared by all pipeline workers.
type Engine struct {
	lex *lexicon.Lexicon
}

func NewEngine(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex}
}

// Analyze cleans the review, scores it with a single left-to-right scan,
// and tests the cleaned text for refund intent. A negation word consumes
// the lexicon word right after it and flips its sign; negation never
// reaches further than one token and never composes. Any panic during the
// scan is returned as an error so one bad review cannot take down a batch.
func (e *Engine) Analyze(raw string) (result models.ScoreResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analyze review: %v", r)
		}
	}()

	cleaned := Clean(raw)
	words := strings.Fields(cleaned)

	score := 0
	for i := 0; i < len(words); {
		word := words[i]

		if e.lex.IsNegation(word) && i+1 < len(words) {
			if weight, ok := e.lex.Weight(words[i+1]); ok {
				score -= weight
				i += 2
				continue
			}
		}

		if weight, ok := e.lex.Weight(word); ok {
			score += weight
		}
		i++
	}

	return models.ScoreResult{
		Text:       raw,
		Score:      score,
		Predicted:  LabelForScore(score),
		RefundFlag: e.lex.MatchesRefund(cleaned),
	}, nil
}
