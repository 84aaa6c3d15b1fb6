package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/mastery"
	"github.com/barristerapp/barrister/internal/store"
)

// Mastery is a concept's mastery estimate for external consumers.
// Known is false when no review evidence exists; an untested concept is
// unknown, not weak.
type Mastery struct {
	Value float64
	Known bool
}

// MasteryOf returns the current mastery estimate for a concept.
// Returns ErrUnknownConcept for IDs that were never imported.
func (e *Engine) MasteryOf(ctx context.Context, conceptID string) (Mastery, error) {
	if _, err := e.store.GetConcept(ctx, conceptID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Mastery{}, fmt.Errorf("%w: %s", ErrUnknownConcept, conceptID)
		}
		return Mastery{}, err
	}

	st, err := e.store.GetMasteryState(ctx, e.store.DB(), conceptID)
	if errors.Is(err, store.ErrNotFound) {
		return Mastery{}, nil
	}
	if err != nil {
		return Mastery{}, err
	}
	return Mastery{Value: st.Mastery, Known: st.Known()}, nil
}

// RebuildMastery recomputes every concept's mastery state by replaying
// the review-event log. Mastery is a pure fold over the log, so the
// result is identical to what incremental updates produced; this exists
// to recover from manual edits or estimator-parameter changes.
func (e *Engine) RebuildMastery(ctx context.Context) error {
	concepts, err := e.store.ListConcepts(ctx, conceptgraph.SubjectUnknown)
	if err != nil {
		return err
	}
	seeds := make(map[string]int, len(concepts))
	for _, c := range concepts {
		seeds[c.ID] = c.DifficultySeed
	}

	events, err := e.store.ListReviewEvents(ctx)
	if err != nil {
		return err
	}

	obs := make(map[string][]mastery.Observation)
	for _, ev := range events {
		obs[ev.ConceptID] = append(obs[ev.ConceptID], mastery.Observation{
			Success:        ev.Success(),
			DifficultySeed: seeds[ev.ConceptID],
			At:             ev.Timestamp,
		})
	}

	return e.store.WithTx(ctx, func(tx *sql.Tx) error {
		for conceptID, conceptObs := range obs {
			st := mastery.Rebuild(conceptID, conceptObs)
			if err := e.store.UpsertMasteryState(ctx, tx, st); err != nil {
				return err
			}
		}
		return nil
	})
}
