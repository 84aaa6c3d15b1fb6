// Package analytics computes read-only projections over the review
// event log: accuracy, weak topics, session quality, and activity
// series. Nothing here mutates the log; every operation is a
// deterministic function of the events plus "now".
package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/spacedrep"
)

// ErrInvalidWindow rejects negative analysis windows.
var ErrInvalidWindow = errors.New("analytics: window must not be negative")

// Event is one immutable review outcome. Subject and topic are
// denormalized onto the event so projections never need the concept
// store.
type Event struct {
	CardID    string
	ConceptID string
	Subject   conceptgraph.Subject
	Topic     string
	Quality   spacedrep.Quality
	Timestamp time.Time
}

// Success reports whether the event counts as a correct recall.
func (e Event) Success() bool {
	return e.Quality.Success()
}

// Accuracy returns the fraction of events with quality >= 3 for the
// subject within the window ending at now. A zero window means all
// history. SubjectUnknown matches every subject. Returns 0 with ok=false
// when no events fall in scope.
func Accuracy(events []Event, subject conceptgraph.Subject, window time.Duration, now time.Time) (float64, bool, error) {
	if window < 0 {
		return 0, false, ErrInvalidWindow
	}

	total, correct := 0, 0
	for _, e := range events {
		if !inScope(e, subject, window, now) {
			continue
		}
		total++
		if e.Success() {
			correct++
		}
	}
	if total == 0 {
		return 0, false, nil
	}
	return float64(correct) / float64(total), true, nil
}

// EventCount returns the number of events in scope for the subject and
// window, under the same filtering rules as Accuracy.
func EventCount(events []Event, subject conceptgraph.Subject, window time.Duration, now time.Time) (int, error) {
	if window < 0 {
		return 0, ErrInvalidWindow
	}

	total := 0
	for _, e := range events {
		if inScope(e, subject, window, now) {
			total++
		}
	}
	return total, nil
}

// TopicAccuracy is the windowed accuracy of a single topic.
type TopicAccuracy struct {
	Topic    string
	Accuracy float64
	Samples  int
}

// WeakTopics returns topics whose windowed accuracy falls below the
// threshold, excluding topics with fewer than minSamples events: one
// unlucky review is not evidence of weakness. Results are sorted from
// weakest up.
func WeakTopics(events []Event, subject conceptgraph.Subject, threshold float64, minSamples int, window time.Duration, now time.Time) ([]TopicAccuracy, error) {
	if window < 0 {
		return nil, ErrInvalidWindow
	}
	if minSamples < 1 {
		minSamples = 1
	}

	type tally struct{ total, correct int }
	byTopic := make(map[string]*tally)
	for _, e := range events {
		if !inScope(e, subject, window, now) {
			continue
		}
		t := byTopic[e.Topic]
		if t == nil {
			t = &tally{}
			byTopic[e.Topic] = t
		}
		t.total++
		if e.Success() {
			t.correct++
		}
	}

	var weak []TopicAccuracy
	for topic, t := range byTopic {
		if t.total < minSamples {
			continue
		}
		acc := float64(t.correct) / float64(t.total)
		if acc < threshold {
			weak = append(weak, TopicAccuracy{Topic: topic, Accuracy: acc, Samples: t.total})
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Accuracy != weak[j].Accuracy {
			return weak[i].Accuracy < weak[j].Accuracy
		}
		return weak[i].Topic < weak[j].Topic
	})
	return weak, nil
}

// ActivityByDay counts events per calendar day (local to the supplied
// timestamps) within the window ending at now, keyed "2006-01-02". Used
// for streak and heatmap displays.
func ActivityByDay(events []Event, window time.Duration, now time.Time) (map[string]int, error) {
	if window < 0 {
		return nil, ErrInvalidWindow
	}

	counts := make(map[string]int)
	for _, e := range events {
		if !inScope(e, conceptgraph.SubjectUnknown, window, now) {
			continue
		}
		counts[e.Timestamp.Format("2006-01-02")]++
	}
	return counts, nil
}

// inScope filters by subject (SubjectUnknown = all) and window (0 = all
// history).
func inScope(e Event, subject conceptgraph.Subject, window time.Duration, now time.Time) bool {
	if subject != conceptgraph.SubjectUnknown && e.Subject != subject {
		return false
	}
	if e.Timestamp.After(now) {
		return false
	}
	if window > 0 && e.Timestamp.Before(now.Add(-window)) {
		return false
	}
	return true
}
