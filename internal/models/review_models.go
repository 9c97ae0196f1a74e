package models

import "time"

// Label is a sentiment class. Predicted labels come from the score sign,
// ground-truth labels from the reviewer's numeric rating.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

type ReviewInput struct {
	Text   string   `json:"reviewText"`
	Rating *float64 `json:"overall,omitempty"`
}

type ScoreResult struct {
	Text       string `json:"text"`
	Score      int    `json:"score"`
	Predicted  Label  `json:"predicted_label"`
	RefundFlag bool   `json:"refund_flag"`
	// Actual is empty when the input carried no rating.
	Actual Label `json:"actual_label,omitempty"`
}

// ReviewRecord is a persisted row read back from storage.
type ReviewRecord struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Score      int       `json:"score"`
	Predicted  Label     `json:"predicted_label"`
	Actual     Label     `json:"actual_label,omitempty"`
	RefundFlag bool      `json:"refund_flag"`
	CreatedAt  time.Time `json:"created_at"`
}
