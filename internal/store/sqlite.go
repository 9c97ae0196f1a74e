// Package store persists scored reviews to SQLite and answers the
// aggregate queries used for run reporting.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/spacesedan/reviewpulse/internal/models"
	"github.com/spacesedan/reviewpulse/internal/utils"
)

type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at path and creates the schema if
// needed. ":memory:" opens a shared-cache in-memory database for tests.
func Open(path string) (*Store, error) {
	connStr := path
	if path == ":memory:" {
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// Shared-cache in-memory databases need a single connection so
		// every statement sees the same database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		review TEXT NOT NULL,
		score INTEGER NOT NULL,
		predicted TEXT NOT NULL,
		actual TEXT,
		refund_flag INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reviews_predicted ON reviews(predicted);
	CREATE INDEX IF NOT EXISTS idx_reviews_created ON reviews(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// InsertBatch writes results in chunks of at most batchSize rows, one
// transaction per chunk. Rows in a chunk share one created_at timestamp,
// taken at insert time. Chunks commit sequentially; when a chunk fails,
// earlier chunks stay committed and the count of rows inserted so far is
// returned with the error. There is no retry.
func (s *Store) InsertBatch(ctx context.Context, results []models.ScoreResult, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	inserted := 0
	for _, batch := range utils.Chunk(results, batchSize) {
		if err := s.insertChunk(ctx, batch); err != nil {
			return inserted, fmt.Errorf("insert batch after %d rows: %w", inserted, err)
		}
		inserted += len(batch)
	}
	return inserted, nil
}

func (s *Store) insertChunk(ctx context.Context, batch []models.ScoreResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reviews (review, score, predicted, actual, refund_flag, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	createdAt := time.Now().UTC()
	for _, r := range batch {
		actual := sql.NullString{String: string(r.Actual), Valid: r.Actual != ""}
		if _, err := stmt.ExecContext(ctx, r.Text, r.Score, string(r.Predicted), actual, r.RefundFlag, createdAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Accuracy returns the percentage of rows whose predicted label matches the
// ground-truth label, rounded to two decimals, over the labeled rows only.
// The second return is the number of labeled rows; zero means no accuracy
// can be reported.
func (s *Store) Accuracy(ctx context.Context) (float64, int, error) {
	var total, correct int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN predicted = actual THEN 1 ELSE 0 END), 0)
		FROM reviews
		WHERE actual IS NOT NULL
	`).Scan(&total, &correct)
	if err != nil {
		return 0, 0, fmt.Errorf("accuracy query: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	percent := math.Round(float64(correct)/float64(total)*10000) / 100
	return percent, total, nil
}

// Distribution returns row counts grouped by predicted label.
func (s *Store) Distribution(ctx context.Context) (map[models.Label]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT predicted, COUNT(*) FROM reviews GROUP BY predicted`)
	if err != nil {
		return nil, fmt.Errorf("distribution query: %w", err)
	}
	defer rows.Close()

	dist := make(map[models.Label]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("scan distribution row: %w", err)
		}
		dist[models.Label(label)] = count
	}
	return dist, rows.Err()
}

// CountRefundFlagged returns the number of persisted reviews flagged for
// refund or return intent.
func (s *Store) CountRefundFlagged(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE refund_flag = 1`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("refund count query: %w", err)
	}
	return count, nil
}

// Count returns the total number of persisted reviews.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return count, nil
}

// Recent returns the newest persisted reviews, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]models.ReviewRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, review, score, predicted, actual, refund_flag, created_at
		FROM reviews
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent query: %w", err)
	}
	defer rows.Close()

	var records []models.ReviewRecord
	for rows.Next() {
		var rec models.ReviewRecord
		var actual sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Text, &rec.Score, &rec.Predicted, &actual, &rec.RefundFlag, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		if actual.Valid {
			rec.Actual = models.Label(actual.String)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
