package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/reviewpulse/internal/models"
)

func TestLabelForScore(t *testing.T) {
	assert.Equal(t, models.LabelPositive, LabelForScore(1))
	assert.Equal(t, models.LabelPositive, LabelForScore(42))
	assert.Equal(t, models.LabelNegative, LabelForScore(-1))
	assert.Equal(t, models.LabelNegative, LabelForScore(-42))
	assert.Equal(t, models.LabelNeutral, LabelForScore(0))
}

func TestRatingToLabel(t *testing.T) {
	tests := []struct {
		rating float64
		want   models.Label
	}{
		{5, models.LabelPositive},
		{4, models.LabelPositive},
		{4.5, models.LabelPositive},
		{3, models.LabelNeutral},
		{3.5, models.LabelNeutral},
		{2.1, models.LabelNeutral},
		{2, models.LabelNegative},
		{1, models.LabelNegative},
		{0, models.LabelNegative},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingToLabel(tt.rating), "rating %v", tt.rating)
	}
}
