// Package store handles SQLite persistence of check outcomes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/pwscore/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for check history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS checks (
			id INTEGER PRIMARY KEY,
			checked_at TEXT NOT NULL,
			length INTEGER NOT NULL,
			score INTEGER NOT NULL,
			rating TEXT NOT NULL,
			feedback_count INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_checks_checked_at ON checks(checked_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertCheck stores the outcome of one analysis.
func (s *Store) InsertCheck(ctx context.Context, rec model.CheckRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO checks (checked_at, length, score, rating, feedback_count)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.CheckedAt.UTC().Format(time.RFC3339Nano),
		rec.Length,
		rec.Score,
		rec.Rating,
		rec.FeedbackCount,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListChecks returns check records filtered by stats config, oldest first.
func (s *Store) ListChecks(ctx context.Context, cfg model.StatsConfig) ([]model.CheckRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "checked_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, checked_at, length, score, rating, feedback_count
		FROM checks
		WHERE %s
		ORDER BY checked_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.CheckRecord
	for rows.Next() {
		var rec model.CheckRecord
		var checkedAt string
		if err := rows.Scan(&rec.ID, &checkedAt, &rec.Length, &rec.Score, &rec.Rating, &rec.FeedbackCount); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, checkedAt)
		if err != nil {
			return nil, err
		}
		rec.CheckedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

// RatingCounts aggregates the given checks by rating.
func (s *Store) RatingCounts(ctx context.Context, ids []int64) ([]model.RatingAggregate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT rating, COUNT(*) AS count, SUM(score) AS score_sum
		FROM checks
		WHERE id IN (%s)
		GROUP BY rating`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.RatingAggregate
	for rows.Next() {
		var agg model.RatingAggregate
		if err := rows.Scan(&agg.Rating, &agg.Count, &agg.ScoreSum); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
