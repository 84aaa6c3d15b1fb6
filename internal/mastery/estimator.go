// Package mastery maintains a per-concept estimate of recall
// probability. The estimate is an exponentially weighted fold over
// review outcomes: each observation nudges the belief toward the
// observed result, recent evidence counting more than old. It is pure
// state derived from the review-event log, never a source of truth.
package mastery

import (
	"math"
	"time"
)

const (
	// Alpha is the base learning rate for the exponentially weighted
	// update.
	Alpha = 0.25

	// DifficultyStep scales the effective alpha per point of difficulty
	// seed away from the midpoint (3).
	DifficultyStep = 0.1

	// MinAlpha and MaxAlpha bound the effective learning rate after
	// difficulty adjustment.
	MinAlpha = 0.10
	MaxAlpha = 0.50

	// NeutralPrior is the starting belief before any evidence. Consumers
	// must still treat a zero-sample state as unknown, not as 0.5 known.
	NeutralPrior = 0.5
)

// State is the derived mastery estimate for one concept.
type State struct {
	ConceptID   string
	Mastery     float64 // in [0, 1], meaningful only when SampleCount > 0
	SampleCount int
	LastUpdated time.Time
}

// NewState returns the pre-evidence state for a concept.
func NewState(conceptID string) *State {
	return &State{ConceptID: conceptID, Mastery: NeutralPrior}
}

// Known reports whether the estimate is backed by any evidence. An
// untested concept is unknown, not weak; downstream consumers (weak
// topic detection, selection weights) rely on this distinction.
func (s *State) Known() bool {
	return s.SampleCount > 0
}

// Update folds one review outcome into the state and returns the new
// state. The input is not mutated. success is quality >= 3;
// difficultySeed is the concept's author-assigned difficulty (1-5).
func Update(s *State, success bool, difficultySeed int, now time.Time) *State {
	out := *s

	target := 0.0
	if success {
		target = 1.0
	}

	out.Mastery = clamp01(out.Mastery + effectiveAlpha(success, difficultySeed)*(target-out.Mastery))
	out.SampleCount++
	out.LastUpdated = now
	return &out
}

// effectiveAlpha scales the base learning rate by difficulty: a correct
// answer on a hard concept moves the estimate more than one on an easy
// concept, and a miss on an easy concept moves it more than a miss on a
// hard one.
func effectiveAlpha(success bool, difficultySeed int) float64 {
	offset := DifficultyStep * float64(difficultySeed-3)
	var a float64
	if success {
		a = Alpha * (1 + offset)
	} else {
		a = Alpha * (1 - offset)
	}
	return math.Min(MaxAlpha, math.Max(MinAlpha, a))
}

// Observation is one replayable review outcome for a concept's card.
type Observation struct {
	Success        bool
	DifficultySeed int
	At             time.Time
}

// Rebuild replays a concept's observations in order and returns the
// resulting state. Equivalent to folding Update over the event log;
// used to reconstruct mastery after a desync or schema migration.
func Rebuild(conceptID string, obs []Observation) *State {
	s := NewState(conceptID)
	for _, o := range obs {
		s = Update(s, o.Success, o.DifficultySeed, o.At)
	}
	return s
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
