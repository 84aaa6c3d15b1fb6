// Package engine is the public face of the study engine: a single
// Engine value owning the durable store and exposing the operations the
// presentation layer consumes. One Engine serves one learner; all
// mutations for a review submission happen in one transaction.
package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/store"
)

// Engine wires the scheduler, mastery estimator, selector and analytics
// over one learner's durable store. Construct with Open, release with
// Close; never a singleton.
type Engine struct {
	store    *store.Store
	classify conceptgraph.TopicClassifier
	rng      *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier swaps the topic-classification heuristic.
func WithClassifier(c conceptgraph.TopicClassifier) Option {
	return func(e *Engine) { e.classify = c }
}

// WithRand fixes the selector's random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// Open opens (creating if needed) the learner database at dsn.
func Open(dsn string, opts ...Option) (*Engine, error) {
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e := &Engine{
		store:    st,
		classify: conceptgraph.DefaultClassifier,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close releases the durable store.
func (e *Engine) Close() error {
	return e.store.Close()
}

// Store exposes the underlying store, for the CLI's reset path and the
// generation-event recorder.
func (e *Engine) Store() *store.Store {
	return e.store
}

// ParseScope resolves a subject scope string: "mixed" or "" mean all
// subjects (returned as SubjectUnknown), anything else must be a known
// subject.
func ParseScope(s string) (conceptgraph.Subject, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == "mixed" {
		return conceptgraph.SubjectUnknown, nil
	}
	subj, ok := conceptgraph.ParseSubject(trimmed)
	if !ok {
		return conceptgraph.SubjectUnknown, fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
	return subj, nil
}
