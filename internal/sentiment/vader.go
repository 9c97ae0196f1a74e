package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/spacesedan/reviewpulse/internal/models"
)

// Baseline classifies reviews with VADER so a run can report how often the
// lexicon engine agrees with an off-the-shelf analyzer. Informational only;
// persisted labels always come from the engine.
type Baseline struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewBaseline() *Baseline {
	return &Baseline{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Label maps VADER's compound score onto the engine's label set.
func (b *Baseline) Label(text string) models.Label {
	compound := b.analyzer.PolarityScores(text).Compound

	switch {
	case compound >= 0.20:
		return models.LabelPositive
	case compound <= -0.20:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// Agreement returns the fraction of results whose predicted label matches
// the VADER label, in [0, 1]. Zero results yields 0.
func (b *Baseline) Agreement(results []models.ScoreResult) float64 {
	if len(results) == 0 {
		return 0
	}

	agree := 0
	for _, r := range results {
		if b.Label(r.Text) == r.Predicted {
			agree++
		}
	}
	return float64(agree) / float64(len(results))
}
