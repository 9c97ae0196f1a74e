package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/reviewpulse/config"
	"github.com/spacesedan/reviewpulse/internal/ingest"
	"github.com/spacesedan/reviewpulse/internal/lexicon"
	"github.com/spacesedan/reviewpulse/internal/logging"
	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/pipeline"
	"github.com/spacesedan/reviewpulse/internal/report"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
	"github.com/spacesedan/reviewpulse/internal/store"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		inputPath = flag.String("input", "", "line-delimited review file (JSON records or plain text); empty runs the built-in sample set")
		dbPath    = flag.String("db", envOr("REVIEWPULSE_DB", "review_analysis.db"), "sqlite database path")
		workers   = flag.Int("workers", 0, "worker count, 0 means one per CPU")
		batchSize = flag.Int("batch-size", 50, "rows per insert transaction")
		baseline  = flag.Bool("baseline", false, "report agreement with the VADER analyzer")
		csvOut    = flag.String("csv", "", "optional CSV export of scored results")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *inputPath, *dbPath, *csvOut, *workers, *batchSize, *baseline); err != nil {
		slog.Error("[Main] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, inputPath, dbPath, csvOut string, workers, batchSize int, baseline bool) error {
	lex, err := lexicon.New()
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	if workers != 0 {
		opts = append(opts, pipeline.WithWorkers(workers))
	}
	pipe, err := pipeline.New(sentiment.NewEngine(lex), opts...)
	if err != nil {
		return err
	}

	inputs, skipped, err := loadReviews(inputPath)
	if err != nil {
		return err
	}
	slog.Info("[Main] Reviews loaded",
		slog.Int("count", len(inputs)),
		slog.Int("skipped_lines", skipped))

	results, failed, err := pipe.Run(ctx, inputs)
	if err != nil {
		return err
	}

	sum := report.Summary{
		Processed: len(results),
		Failed:    failed,
		Skipped:   skipped,
	}

	if baseline {
		sum.Agreement = sentiment.NewBaseline().Agreement(results) * 100
		sum.HasAgreement = true
	}

	if csvOut != "" {
		if err := report.WriteCSV(csvOut, results); err != nil {
			slog.Warn("[Main] CSV export failed", slog.String("error", err.Error()))
		}
	}

	persist(ctx, dbPath, batchSize, results, &sum)
	sum.Log()
	return nil
}

// persist writes results and fills in the storage-side aggregates. Storage
// failures are reported, never fatal: scoring already completed and the
// in-memory summary still gets logged.
func persist(ctx context.Context, dbPath string, batchSize int, results []models.ScoreResult, sum *report.Summary) {
	st, err := store.Open(dbPath)
	if err != nil {
		slog.Error("[Store] Unable to open database, results not persisted",
			slog.String("path", dbPath),
			slog.String("error", err.Error()))
		return
	}
	defer st.Close()

	inserted, err := st.InsertBatch(ctx, results, batchSize)
	sum.Inserted = inserted
	if err != nil {
		// Earlier chunks stay committed; partial persistence is accepted.
		slog.Error("[Store] Batch insert failed",
			slog.Int("inserted", inserted),
			slog.String("error", err.Error()))
	}

	if acc, labeled, err := st.Accuracy(ctx); err != nil {
		slog.Warn("[Store] Accuracy query failed", slog.String("error", err.Error()))
	} else if labeled > 0 {
		sum.Accuracy = acc
		sum.HasAccuracy = true
	}

	if dist, err := st.Distribution(ctx); err != nil {
		slog.Warn("[Store] Distribution query failed", slog.String("error", err.Error()))
	} else {
		sum.Distribution = dist
	}

	if refunds, err := st.CountRefundFlagged(ctx); err != nil {
		slog.Warn("[Store] Refund count query failed", slog.String("error", err.Error()))
	} else {
		sum.RefundFlagged = refunds
	}
}

func loadReviews(path string) ([]models.ReviewInput, int, error) {
	if path == "" {
		inputs := make([]models.ReviewInput, 0, len(sampleReviews))
		for _, text := range sampleReviews {
			inputs = append(inputs, models.ReviewInput{Text: text})
		}
		return inputs, 0, nil
	}
	return ingest.ReadFile(path)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// sampleReviews exercises the pipeline without an input file.
var sampleReviews = []string{
	"The product is excellent and I am very happy",
	"Amazing quality and great customer service",
	"Super satisfied with the purchase",
	"Fantastic experience and very good support",
	"Loved it, works perfectly",
	"Great value for money",
	"Very happy with fast delivery",
	"Excellent packaging and quality",
	"Highly recommend this product",
	"Best purchase I have made this year",

	"Worst quality, I want refund immediately",
	"Very bad experience and terrible service",
	"Not good at all",
	"The item was damaged and broken",
	"Extremely poor build quality",
	"I need money back for this poor product",
	"Product stopped working after one day",
	"Very disappointed and unhappy",
	"Completely useless and worst purchase",
	"Return this item immediately",
}
