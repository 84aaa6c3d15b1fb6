package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/barristerapp/barrister/internal/mastery"
)

// GetMasteryState returns a concept's derived mastery state, or
// ErrNotFound when the concept has no recorded evidence.
func (s *Store) GetMasteryState(ctx context.Context, q dbtx, conceptID string) (*mastery.State, error) {
	row := q.QueryRowContext(ctx, `
		SELECT concept_id, mastery, sample_count, last_updated
		FROM mastery_states WHERE concept_id = ?`, conceptID)
	st, err := scanMasteryState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return st, err
}

// UpsertMasteryState writes a concept's derived mastery state. Called
// only by the review transaction and the replay path.
func (s *Store) UpsertMasteryState(ctx context.Context, q dbtx, st *mastery.State) error {
	_, err := q.ExecContext(ctx, `
		INSERT OR REPLACE INTO mastery_states
		(concept_id, mastery, sample_count, last_updated)
		VALUES (?, ?, ?, ?)`,
		st.ConceptID, st.Mastery, st.SampleCount, formatTime(st.LastUpdated),
	)
	if err != nil {
		return fmt.Errorf("upsert mastery state %s: %w", st.ConceptID, err)
	}
	return nil
}

// ListMasteryStates returns all mastery states keyed by concept ID.
func (s *Store) ListMasteryStates(ctx context.Context) (map[string]*mastery.State, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT concept_id, mastery, sample_count, last_updated
		FROM mastery_states`)
	if err != nil {
		return nil, fmt.Errorf("list mastery states: %w", err)
	}
	defer rows.Close()

	out := make(map[string]*mastery.State)
	for rows.Next() {
		st, err := scanMasteryState(rows)
		if err != nil {
			return nil, err
		}
		out[st.ConceptID] = st
	}
	return out, rows.Err()
}

func scanMasteryState(sc scanner) (*mastery.State, error) {
	var st mastery.State
	var updated string
	err := sc.Scan(&st.ConceptID, &st.Mastery, &st.SampleCount, &updated)
	if err != nil {
		return nil, err
	}
	if st.LastUpdated, err = parseTime(updated); err != nil {
		return nil, err
	}
	return &st, nil
}
