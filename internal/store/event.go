package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/barristerapp/barrister/internal/analytics"
	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/spacedrep"
)

// ReviewEventData is the write shape for one append to the review log.
type ReviewEventData struct {
	CardID    string
	ConceptID string
	Subject   conceptgraph.Subject
	Topic     string
	Quality   spacedrep.Quality
	Timestamp time.Time
}

// AppendReviewEvent writes one event to the append-only log. Events are
// never mutated or deleted.
func (s *Store) AppendReviewEvent(ctx context.Context, q dbtx, data ReviewEventData) error {
	seq, err := s.seq.Next(ctx, q)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO review_events
		(id, sequence, card_id, concept_id, subject, topic, quality, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), seq, data.CardID, data.ConceptID,
		string(data.Subject), data.Topic, int(data.Quality),
		formatTime(data.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

// ListReviewEvents returns the full event log in append order.
func (s *Store) ListReviewEvents(ctx context.Context) ([]analytics.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT card_id, concept_id, subject, topic, quality, timestamp
		FROM review_events ORDER BY sequence`)
	if err != nil {
		return nil, fmt.Errorf("list review events: %w", err)
	}
	defer rows.Close()

	var out []analytics.Event
	for rows.Next() {
		var e analytics.Event
		var subject, ts string
		var quality int
		if err := rows.Scan(&e.CardID, &e.ConceptID, &subject, &e.Topic, &quality, &ts); err != nil {
			return nil, err
		}
		e.Subject = conceptgraph.Subject(subject)
		e.Quality = spacedrep.Quality(quality)
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListReviewEventsByConcept returns one concept's events in append
// order, for mastery replay.
func (s *Store) ListReviewEventsByConcept(ctx context.Context, conceptID string) ([]analytics.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT card_id, concept_id, subject, topic, quality, timestamp
		FROM review_events WHERE concept_id = ? ORDER BY sequence`, conceptID)
	if err != nil {
		return nil, fmt.Errorf("list review events for %s: %w", conceptID, err)
	}
	defer rows.Close()

	var out []analytics.Event
	for rows.Next() {
		var e analytics.Event
		var subject, ts string
		var quality int
		if err := rows.Scan(&e.CardID, &e.ConceptID, &subject, &e.Topic, &quality, &ts); err != nil {
			return nil, err
		}
		e.Subject = conceptgraph.Subject(subject)
		e.Quality = spacedrep.Quality(quality)
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountReviewEvents returns the total number of logged reviews.
func (s *Store) CountReviewEvents(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count review events: %w", err)
	}
	return n, nil
}
