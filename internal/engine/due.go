package engine

import (
	"context"
	"sort"
	"time"

	"github.com/barristerapp/barrister/internal/cards"
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// GetDueCards returns the cards due for review at now: new cards (never
// reviewed) and cards whose due date has arrived. Results are ordered
// most-overdue first, new cards after, with prerequisite (topological)
// order breaking ties so foundations surface before dependents. A limit
// of 0 means no limit.
func (e *Engine) GetDueCards(ctx context.Context, subject conceptgraph.Subject, limit int, now time.Time) ([]cards.Card, error) {
	if now.IsZero() {
		now = time.Now()
	}

	all, err := e.store.ListCards(ctx, subject)
	if err != nil {
		return nil, err
	}
	records, err := e.store.ListReviewRecords(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := e.graph(ctx)
	if err != nil {
		return nil, err
	}

	type dueCard struct {
		card    cards.Card
		overdue float64
		isNew   bool
	}
	var due []dueCard
	for _, c := range all {
		rec, ok := records[c.ID]
		if !ok {
			due = append(due, dueCard{card: c, isNew: true})
			continue
		}
		if rec.IsDue(now) {
			due = append(due, dueCard{card: c, overdue: rec.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].isNew != due[j].isNew {
			return !due[i].isNew
		}
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		ti, tj := graph.TopoIndex(due[i].card.ConceptID), graph.TopoIndex(due[j].card.ConceptID)
		if ti != tj {
			return ti < tj
		}
		return due[i].card.ID < due[j].card.ID
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	out := make([]cards.Card, len(due))
	for i, d := range due {
		out[i] = d.card
	}
	return out, nil
}

// DueCount returns how many cards are due at now in the subject scope.
func (e *Engine) DueCount(ctx context.Context, subject conceptgraph.Subject, now time.Time) (int, error) {
	due, err := e.GetDueCards(ctx, subject, 0, now)
	if err != nil {
		return 0, err
	}
	return len(due), nil
}
