package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/barristerapp/barrister/internal/spacedrep"
)

// GetReviewRecord returns the scheduling state for a card, or
// ErrNotFound when the card has never been reviewed.
func (s *Store) GetReviewRecord(ctx context.Context, q dbtx, cardID string) (*spacedrep.ReviewRecord, error) {
	row := q.QueryRowContext(ctx, `
		SELECT card_id, repetitions, interval_days, ease_factor,
		       due_date, last_reviewed_at, lapse_count
		FROM review_records WHERE card_id = ?`, cardID)
	rec, err := scanReviewRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// UpsertReviewRecord writes a card's scheduling state. Called only by
// the review transaction.
func (s *Store) UpsertReviewRecord(ctx context.Context, q dbtx, rec *spacedrep.ReviewRecord) error {
	_, err := q.ExecContext(ctx, `
		INSERT OR REPLACE INTO review_records
		(card_id, repetitions, interval_days, ease_factor, due_date, last_reviewed_at, lapse_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.CardID, rec.Repetitions, rec.IntervalDays, rec.EaseFactor,
		formatTime(rec.DueDate), formatTime(rec.LastReviewedAt), rec.LapseCount,
	)
	if err != nil {
		return fmt.Errorf("upsert review record %s: %w", rec.CardID, err)
	}
	return nil
}

// ListReviewRecords returns every review record keyed by card ID.
func (s *Store) ListReviewRecords(ctx context.Context) (map[string]*spacedrep.ReviewRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT card_id, repetitions, interval_days, ease_factor,
		       due_date, last_reviewed_at, lapse_count
		FROM review_records`)
	if err != nil {
		return nil, fmt.Errorf("list review records: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*spacedrep.ReviewRecord)
	for rows.Next() {
		rec, err := scanReviewRecord(rows)
		if err != nil {
			return nil, err
		}
		out[rec.CardID] = rec
	}
	return out, rows.Err()
}

func scanReviewRecord(sc scanner) (*spacedrep.ReviewRecord, error) {
	var rec spacedrep.ReviewRecord
	var due, last string
	err := sc.Scan(&rec.CardID, &rec.Repetitions, &rec.IntervalDays,
		&rec.EaseFactor, &due, &last, &rec.LapseCount)
	if err != nil {
		return nil, err
	}
	if rec.DueDate, err = parseTime(due); err != nil {
		return nil, err
	}
	if rec.LastReviewedAt, err = parseTime(last); err != nil {
		return nil, err
	}
	return &rec, nil
}

// formatTime encodes a timestamp as RFC3339; the zero time encodes as
// the empty string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
