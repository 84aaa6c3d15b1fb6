// Package practice builds interleaved practice sets: unique concepts
// drawn across difficulty strata, weighted toward low-mastery and due
// concepts.
package practice

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/barristerapp/barrister/internal/cards"
)

// Selection weight tuning.
const (
	// DueBonus multiplies the weight of concepts with at least one due
	// card, so they win ties without drowning out low-mastery concepts.
	DueBonus = 2.0

	// NeutralMastery is the prior used for untested concepts: a neutral
	// 0.5, never 0, so unknown is not treated as evidence of weakness.
	NeutralMastery = 0.5

	// RecencyWindow downweights concepts reviewed this recently, to
	// avoid immediate repetition within back-to-back sessions.
	RecencyWindow = 8 * time.Hour

	// RecencyPenalty is the weight multiplier inside the window.
	RecencyPenalty = 0.5
)

// ErrInvalidCount rejects practice-set requests for n <= 0.
var ErrInvalidCount = errors.New("practice: set size must be positive")

// Candidate is one concept eligible for selection.
type Candidate struct {
	ConceptID      string
	Difficulty     cards.Difficulty
	Mastery        float64 // meaningful only when MasteryKnown
	MasteryKnown   bool
	Due            bool // at least one card due
	LastReviewedAt time.Time
}

// Result is a selected practice set. Shortfall is nonzero when the pool
// held fewer than the requested number of concepts; the set is never
// padded with duplicates.
type Result struct {
	ConceptIDs []string
	Shortfall  int
}

// Select draws n unique concepts from the candidate pool. Candidates
// are partitioned into difficulty strata and drawn round-robin across
// strata (interleaving across difficulty, not just within one band),
// each draw a weighted sample without replacement. A selected-ID set
// enforces the deduplication guarantee independently of the sampler.
func Select(candidates []Candidate, n int, now time.Time, rng *rand.Rand) (*Result, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Partition into strata, preserving candidate order within each.
	strata := make(map[cards.Difficulty][]weighted)
	for _, c := range candidates {
		strata[c.Difficulty] = append(strata[c.Difficulty], weighted{
			id:     c.ConceptID,
			weight: weightOf(c, now),
		})
	}

	order := cards.AllDifficulties()
	selected := make(map[string]bool, n)
	var picked []string

	// Round-robin across strata until n uniques are collected or every
	// stratum is exhausted.
	for len(picked) < n {
		progress := false
		for _, d := range order {
			if len(picked) >= n {
				break
			}
			pool := strata[d]
			id, rest, ok := drawOne(pool, selected, rng)
			strata[d] = rest
			if !ok {
				continue
			}
			selected[id] = true
			picked = append(picked, id)
			progress = true
		}
		if !progress {
			break
		}
	}

	return &Result{
		ConceptIDs: picked,
		Shortfall:  max(0, n-len(picked)),
	}, nil
}

type weighted struct {
	id     string
	weight float64
}

// weightOf computes the selection weight:
// due_bonus * (1 - mastery_or_default) * recency_penalty.
func weightOf(c Candidate, now time.Time) float64 {
	m := NeutralMastery
	if c.MasteryKnown {
		m = c.Mastery
	}

	w := 1 - m
	// Keep fully mastered concepts drawable at a floor weight rather
	// than excluding them outright.
	if w < 0.05 {
		w = 0.05
	}

	if c.Due {
		w *= DueBonus
	}
	if !c.LastReviewedAt.IsZero() && now.Sub(c.LastReviewedAt) < RecencyWindow {
		w *= RecencyPenalty
	}
	return w
}

// drawOne removes and returns one weighted sample from the pool,
// skipping IDs already selected. Returns ok=false when the pool has no
// drawable entry left.
func drawOne(pool []weighted, selected map[string]bool, rng *rand.Rand) (string, []weighted, bool) {
	// Drop already-selected entries first; the dedup guarantee must hold
	// even if the same ID appears in multiple strata.
	eligible := pool[:0]
	for _, w := range pool {
		if !selected[w.id] {
			eligible = append(eligible, w)
		}
	}
	if len(eligible) == 0 {
		return "", nil, false
	}

	total := 0.0
	for _, w := range eligible {
		total += w.weight
	}

	idx := len(eligible) - 1
	if total > 0 {
		r := rng.Float64() * total
		for i, w := range eligible {
			r -= w.weight
			if r <= 0 {
				idx = i
				break
			}
		}
	} else {
		idx = rng.IntN(len(eligible))
	}

	id := eligible[idx].id
	rest := append(append([]weighted(nil), eligible[:idx]...), eligible[idx+1:]...)
	return id, rest, true
}
