// Package pipeline fans review scoring out across a fixed-size worker pool
// and collects the results back in input order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/sentiment"
)

// Scorer scores a single review. The production implementation is
// *sentiment.Engine; tests substitute their own.
type Scorer interface {
	Analyze(text string) (models.ScoreResult, error)
}

type Pipeline struct {
	scorer  Scorer
	workers int
}

type Option func(*Pipeline)

func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// New validates configuration before any work can be dispatched. Worker
// count defaults to one per logical CPU.
func New(scorer Scorer, opts ...Option) (*Pipeline, error) {
	if scorer == nil {
		return nil, errors.New("pipeline: scorer is required")
	}

	p := &Pipeline{
		scorer:  scorer,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.workers <= 0 {
		return nil, fmt.Errorf("pipeline: worker count must be positive, got %d", p.workers)
	}
	return p, nil
}

// Run scores every review concurrently and returns the successful results
// in input order plus the count of reviews dropped by scoring failures.
// Workers share only the read-only scorer; each result lands in its own
// slot, so no locking is needed on the result slice. Cancelling the context
// stops dispatch and discards the partial run.
func (p *Pipeline) Run(ctx context.Context, reviews []models.ReviewInput) ([]models.ScoreResult, int, error) {
	type slot struct {
		result models.ScoreResult
		ok     bool
	}
	slots := make([]slot, len(reviews))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result, err := p.scorer.Analyze(reviews[i].Text)
				if err != nil {
					slog.Warn("[Pipeline] Review skipped",
						slog.Int("index", i),
						slog.String("error", err.Error()))
					continue
				}
				if rating := reviews[i].Rating; rating != nil {
					result.Actual = sentiment.RatingToLabel(*rating)
				}
				slots[i] = slot{result: result, ok: true}
			}
		}()
	}

	canceled := false
dispatch:
	for i := range reviews {
		select {
		case <-ctx.Done():
			canceled = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		return nil, 0, ctx.Err()
	}

	results := make([]models.ScoreResult, 0, len(reviews))
	failed := 0
	for _, s := range slots {
		if !s.ok {
			failed++
			continue
		}
		results = append(results, s.result)
	}
	return results, failed, nil
}
