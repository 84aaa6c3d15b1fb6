package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/barristerapp/barrister/internal/cards"
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// SkippedConcept records one concept dropped from a bulk import, with
// the reason. Skips are diagnostics, not errors: a bad record must not
// abort the batch.
type SkippedConcept struct {
	ConceptID string
	Reason    string
}

// ImportResult summarizes a bulk import. Created counts newly created
// cards; re-importing the same bank yields Created == 0.
type ImportResult struct {
	ConceptsImported int
	Created          int
	Skipped          []SkippedConcept
}

// ImportConcepts upserts a batch of authored concepts and generates
// their cards. Card IDs are deterministic, so the whole operation is an
// idempotent upsert: existing cards (and their review state) are never
// touched. Concepts whose subject doesn't resolve are skipped with a
// reason and the batch continues.
func (e *Engine) ImportConcepts(ctx context.Context, raws []conceptgraph.RawConcept) (*ImportResult, error) {
	result := &ImportResult{}

	var accepted []conceptgraph.Concept
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		c := raw.Concept
		if !c.Subject.Valid() {
			result.Skipped = append(result.Skipped, SkippedConcept{
				ConceptID: c.ID,
				Reason:    fmt.Sprintf("unknown subject %q", raw.RawSubject),
			})
			continue
		}
		if seen[c.ID] {
			result.Skipped = append(result.Skipped, SkippedConcept{
				ConceptID: c.ID,
				Reason:    "duplicate concept id in batch",
			})
			continue
		}
		seen[c.ID] = true
		accepted = append(accepted, c)
	}

	// Prerequisite cycles would poison display ordering for every later
	// read, so cycle members are skipped here with a reason. The check
	// runs against the batch merged with already-stored concepts: a
	// cycle can close across imports.
	accepted, skippedCycles, err := e.rejectCycles(ctx, accepted)
	if err != nil {
		return nil, err
	}
	result.Skipped = append(result.Skipped, skippedCycles...)

	err = e.store.WithTx(ctx, func(tx *sql.Tx) error {
		for i := range accepted {
			c := &accepted[i]
			c.Topic = conceptgraph.ResolveTopic(c, e.classify)

			if err := e.store.UpsertConcept(ctx, tx, c); err != nil {
				return err
			}
			result.ConceptsImported++

			for _, card := range cards.Generate(c, e.classify) {
				created, err := e.store.InsertCard(ctx, tx, &card)
				if err != nil {
					return err
				}
				if created {
					result.Created++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// rejectCycles drops accepted concepts that would participate in a
// prerequisite cycle once merged with the stored set. An accepted
// concept replaces a stored one with the same ID for the check, the
// same way the upsert will.
func (e *Engine) rejectCycles(ctx context.Context, accepted []conceptgraph.Concept) ([]conceptgraph.Concept, []SkippedConcept, error) {
	existing, err := e.store.ListConcepts(ctx, conceptgraph.SubjectUnknown)
	if err != nil {
		return nil, nil, err
	}

	incoming := make(map[string]bool, len(accepted))
	for _, c := range accepted {
		incoming[c.ID] = true
	}
	combined := make([]conceptgraph.Concept, 0, len(existing)+len(accepted))
	for _, c := range existing {
		if !incoming[c.ID] {
			combined = append(combined, c)
		}
	}
	combined = append(combined, accepted...)

	cycle := conceptgraph.CycleMembers(combined)
	if len(cycle) == 0 {
		return accepted, nil, nil
	}

	inCycle := make(map[string]bool, len(cycle))
	for _, id := range cycle {
		inCycle[id] = true
	}
	reason := fmt.Sprintf("prerequisite cycle involving %s", strings.Join(cycle, ", "))

	var kept []conceptgraph.Concept
	var skipped []SkippedConcept
	for _, c := range accepted {
		if inCycle[c.ID] {
			skipped = append(skipped, SkippedConcept{ConceptID: c.ID, Reason: reason})
			continue
		}
		kept = append(kept, c)
	}
	return kept, skipped, nil
}

// graph builds the concept DAG from stored concepts, for display
// ordering. Prerequisite references to concepts not (yet) imported are
// pruned first: the graph orders what exists, it doesn't gate imports.
func (e *Engine) graph(ctx context.Context) (*conceptgraph.Graph, error) {
	concepts, err := e.store.ListConcepts(ctx, conceptgraph.SubjectUnknown)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		known[c.ID] = true
	}
	for i := range concepts {
		var kept []string
		for _, p := range concepts[i].Prerequisites {
			if known[p] {
				kept = append(kept, p)
			}
		}
		concepts[i].Prerequisites = kept
	}

	// Imports reject cycles, but a store written by an older build (or
	// by hand) may still hold one. Ordering is cosmetic, so break the
	// cycle by dropping its members' prerequisite edges rather than
	// failing every read.
	if cycle := conceptgraph.CycleMembers(concepts); len(cycle) > 0 {
		inCycle := make(map[string]bool, len(cycle))
		for _, id := range cycle {
			inCycle[id] = true
		}
		for i := range concepts {
			if inCycle[concepts[i].ID] {
				concepts[i].Prerequisites = nil
			}
		}
	}

	return conceptgraph.NewGraph(concepts)
}
