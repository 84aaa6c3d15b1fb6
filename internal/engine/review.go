package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/barristerapp/barrister/internal/mastery"
	"github.com/barristerapp/barrister/internal/spacedrep"
	"github.com/barristerapp/barrister/internal/store"
)

// Review submits one review outcome for a card. The event append, the
// scheduler update and the mastery update commit as a single
// transaction: both derived tables stay consistent with the log they
// replay from, or nothing is written at all.
//
// Returns ErrInvalidQuality (wrapped) for ratings outside 1-5 and
// ErrUnknownCard for nonexistent cards; both leave state unchanged.
func (e *Engine) Review(ctx context.Context, cardID string, quality spacedrep.Quality, at time.Time) (*spacedrep.ReviewRecord, error) {
	if err := quality.Validate(); err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = time.Now()
	}

	card, err := e.store.GetCard(ctx, cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, cardID)
		}
		return nil, err
	}

	concept, err := e.store.GetConcept(ctx, card.ConceptID)
	if err != nil {
		return nil, fmt.Errorf("load concept %s: %w", card.ConceptID, err)
	}

	var updated *spacedrep.ReviewRecord
	err = e.store.WithTx(ctx, func(tx *sql.Tx) error {
		// 1. Append to the event log.
		if err := e.store.AppendReviewEvent(ctx, tx, store.ReviewEventData{
			CardID:    card.ID,
			ConceptID: card.ConceptID,
			Subject:   card.Subject,
			Topic:     card.Topic,
			Quality:   quality,
			Timestamp: at,
		}); err != nil {
			return err
		}

		// 2. Advance the SM-2 schedule. A card with no record is new.
		rec, err := e.store.GetReviewRecord(ctx, tx, card.ID)
		if errors.Is(err, store.ErrNotFound) {
			rec = spacedrep.NewRecord(card.ID)
		} else if err != nil {
			return err
		}
		updated, err = spacedrep.Schedule(rec, quality, at)
		if err != nil {
			return err
		}
		if err := e.store.UpsertReviewRecord(ctx, tx, updated); err != nil {
			return err
		}

		// 3. Fold the outcome into the concept's mastery estimate.
		st, err := e.store.GetMasteryState(ctx, tx, card.ConceptID)
		if errors.Is(err, store.ErrNotFound) {
			st = mastery.NewState(card.ConceptID)
		} else if err != nil {
			return err
		}
		st = mastery.Update(st, quality.Success(), concept.DifficultySeed, at)
		return e.store.UpsertMasteryState(ctx, tx, st)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
