// Package report assembles and emits the end-of-run summary.
package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spacesedan/reviewpulse/internal/models"
)

type Summary struct {
	Processed int
	Failed    int
	Skipped   int
	Inserted  int

	Accuracy    float64
	HasAccuracy bool

	Distribution  map[models.Label]int
	RefundFlagged int

	// Agreement with the VADER baseline, as a percentage.
	Agreement    float64
	HasAgreement bool
}

// Log emits the summary through slog.
func (s Summary) Log() {
	slog.Info("[Report] Run completed",
		slog.Int("processed", s.Processed),
		slog.Int("failed", s.Failed),
		slog.Int("skipped_input_lines", s.Skipped),
		slog.Int("inserted", s.Inserted))

	if s.Distribution != nil {
		slog.Info("[Report] Sentiment distribution",
			slog.Int("positive", s.Distribution[models.LabelPositive]),
			slog.Int("negative", s.Distribution[models.LabelNegative]),
			slog.Int("neutral", s.Distribution[models.LabelNeutral]),
			slog.Int("refund_flagged", s.RefundFlagged))
	}

	if s.HasAccuracy {
		slog.Info("[Report] Accuracy vs. rating-derived labels",
			slog.String("accuracy", FormatPercent(s.Accuracy)))
	}

	if s.HasAgreement {
		slog.Info("[Report] Agreement with VADER baseline",
			slog.String("agreement", FormatPercent(s.Agreement)))
	}
}

// FormatPercent renders a percentage with two-decimal precision.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// WriteCSV exports scored results to a CSV file.
func WriteCSV(path string, results []models.ScoreResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"review", "score", "predicted", "actual", "refund_flag"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.Text,
			strconv.Itoa(r.Score),
			string(r.Predicted),
			string(r.Actual),
			strconv.FormatBool(r.RefundFlag),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
