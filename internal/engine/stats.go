package engine

import (
	"context"
	"time"

	"github.com/barristerapp/barrister/internal/analytics"
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// Statistics summarizes the learner's state over a window (0 = all
// history).
type Statistics struct {
	Accuracy          float64 // windowed, 0 when no events in window
	AccuracyKnown     bool
	TotalReviews      int // windowed, same scope as Accuracy
	DueCount          int
	TestedConcepts    int
	TotalConcepts     int
	MasteryPercentage float64 // mean mastery across tested concepts, 0-100
	ActivityByDay     map[string]int
}

// Statistics computes the dashboard numbers for a subject scope
// (SubjectUnknown = all subjects). Pure read; safe to run concurrently
// with reviews.
func (e *Engine) Statistics(ctx context.Context, subject conceptgraph.Subject, window time.Duration, now time.Time) (*Statistics, error) {
	if window < 0 {
		return nil, analytics.ErrInvalidWindow
	}
	if now.IsZero() {
		now = time.Now()
	}

	events, err := e.store.ListReviewEvents(ctx)
	if err != nil {
		return nil, err
	}

	accuracy, known, err := analytics.Accuracy(events, subject, window, now)
	if err != nil {
		return nil, err
	}
	activity, err := analytics.ActivityByDay(events, window, now)
	if err != nil {
		return nil, err
	}

	dueCount, err := e.DueCount(ctx, subject, now)
	if err != nil {
		return nil, err
	}

	concepts, err := e.store.ListConcepts(ctx, subject)
	if err != nil {
		return nil, err
	}
	states, err := e.store.ListMasteryStates(ctx)
	if err != nil {
		return nil, err
	}

	tested := 0
	var masterySum float64
	for _, c := range concepts {
		if st, ok := states[c.ID]; ok && st.Known() {
			tested++
			masterySum += st.Mastery
		}
	}
	masteryPct := 0.0
	if tested > 0 {
		masteryPct = masterySum / float64(tested) * 100
	}

	total, err := analytics.EventCount(events, subject, window, now)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		Accuracy:          accuracy,
		AccuracyKnown:     known,
		TotalReviews:      total,
		DueCount:          dueCount,
		TestedConcepts:    tested,
		TotalConcepts:     len(concepts),
		MasteryPercentage: masteryPct,
		ActivityByDay:     activity,
	}, nil
}

// WeakTopics returns the topics in scope whose windowed accuracy falls
// below threshold and which have at least minSamples reviews.
func (e *Engine) WeakTopics(ctx context.Context, subject conceptgraph.Subject, threshold float64, minSamples int, window time.Duration, now time.Time) ([]analytics.TopicAccuracy, error) {
	if now.IsZero() {
		now = time.Now()
	}
	events, err := e.store.ListReviewEvents(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.WeakTopics(events, subject, threshold, minSamples, window, now)
}
