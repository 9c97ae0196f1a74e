package sentiment

import "github.com/spacesedan/reviewpulse/internal/models"

// LabelForScore maps a signed score to its sentiment class. Total over all
// integers: positive score means Positive, negative means Negative, zero
// means Neutral.
func LabelForScore(score int) models.Label {
	switch {
	case score > 0:
		return models.LabelPositive
	case score < 0:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// RatingToLabel derives the ground-truth label from a reviewer's numeric
// rating: 4 and up is Positive, 2 and below is Negative, everything in
// between is Neutral. Used only for accuracy measurement, never for
// prediction.
func RatingToLabel(rating float64) models.Label {
	switch {
	case rating >= 4:
		return models.LabelPositive
	case rating <= 2:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}
