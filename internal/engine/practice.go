package engine

import (
	"context"
	"time"

	"github.com/barristerapp/barrister/internal/cards"
	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/practice"
)

// SelectPracticeSet builds an interleaved practice set of n unique
// concepts for the subject scope (SubjectUnknown = mixed). When the
// pool holds fewer than n concepts the result reports the shortfall
// rather than padding with duplicates.
func (e *Engine) SelectPracticeSet(ctx context.Context, subject conceptgraph.Subject, n int, now time.Time) (*practice.Result, error) {
	if now.IsZero() {
		now = time.Now()
	}

	concepts, err := e.store.ListConcepts(ctx, subject)
	if err != nil {
		return nil, err
	}
	allCards, err := e.store.ListCards(ctx, subject)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListReviewRecords(ctx)
	if err != nil {
		return nil, err
	}
	states, err := e.store.ListMasteryStates(ctx)
	if err != nil {
		return nil, err
	}

	// Per-concept due status and most recent review across its cards.
	type conceptAgg struct {
		due          bool
		lastReviewed time.Time
	}
	aggs := make(map[string]*conceptAgg, len(concepts))
	for _, c := range concepts {
		aggs[c.ID] = &conceptAgg{}
	}
	for _, card := range allCards {
		agg := aggs[card.ConceptID]
		if agg == nil {
			continue
		}
		rec, ok := records[card.ID]
		if !ok {
			// New card: the concept has something due.
			agg.due = true
			continue
		}
		if rec.IsDue(now) {
			agg.due = true
		}
		if rec.LastReviewedAt.After(agg.lastReviewed) {
			agg.lastReviewed = rec.LastReviewedAt
		}
	}

	candidates := make([]practice.Candidate, 0, len(concepts))
	for _, c := range concepts {
		agg := aggs[c.ID]
		cand := practice.Candidate{
			ConceptID:      c.ID,
			Difficulty:     cards.DifficultyFromSeed(c.DifficultySeed),
			Due:            agg.due,
			LastReviewedAt: agg.lastReviewed,
		}
		if st, ok := states[c.ID]; ok && st.Known() {
			cand.Mastery = st.Mastery
			cand.MasteryKnown = true
		}
		candidates = append(candidates, cand)
	}

	return practice.Select(candidates, n, now, e.rng)
}
