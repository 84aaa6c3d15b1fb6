package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/spacedrep"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ev(subject conceptgraph.Subject, topic string, q spacedrep.Quality, age time.Duration) Event {
	return Event{
		CardID:    "card",
		ConceptID: "concept",
		Subject:   subject,
		Topic:     topic,
		Quality:   q,
		Timestamp: now.Add(-age),
	}
}

func TestAccuracy(t *testing.T) {
	events := []Event{
		ev(conceptgraph.SubjectTorts, "negligence", 5, time.Hour),
		ev(conceptgraph.SubjectTorts, "negligence", 3, 2*time.Hour),
		ev(conceptgraph.SubjectTorts, "battery", 1, 3*time.Hour),
		ev(conceptgraph.SubjectContracts, "offer", 2, time.Hour),
	}

	acc, ok, err := Accuracy(events, conceptgraph.SubjectTorts, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected ok for torts events")
	}
	if want := 2.0 / 3.0; math.Abs(acc-want) > 1e-9 {
		t.Errorf("torts accuracy = %f, want %f", acc, want)
	}

	// SubjectUnknown covers everything.
	acc, ok, err = Accuracy(events, conceptgraph.SubjectUnknown, 0, now)
	if err != nil || !ok {
		t.Fatalf("all-subject accuracy failed: ok=%v err=%v", ok, err)
	}
	if want := 0.5; acc != want {
		t.Errorf("overall accuracy = %f, want %f", acc, want)
	}
}

func TestAccuracy_NoEventsInScope(t *testing.T) {
	events := []Event{ev(conceptgraph.SubjectTorts, "negligence", 5, time.Hour)}

	_, ok, err := Accuracy(events, conceptgraph.SubjectEvidence, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected ok=false when no events match the subject")
	}
}

func TestAccuracy_Window(t *testing.T) {
	events := []Event{
		ev(conceptgraph.SubjectTorts, "negligence", 5, time.Hour),
		ev(conceptgraph.SubjectTorts, "negligence", 1, 48*time.Hour),
	}

	acc, ok, err := Accuracy(events, conceptgraph.SubjectTorts, 24*time.Hour, now)
	if err != nil || !ok {
		t.Fatalf("windowed accuracy failed: ok=%v err=%v", ok, err)
	}
	if acc != 1.0 {
		t.Errorf("windowed accuracy = %f, want 1.0 (old lapse excluded)", acc)
	}
}

func TestAccuracy_NegativeWindow(t *testing.T) {
	_, _, err := Accuracy(nil, conceptgraph.SubjectUnknown, -time.Hour, now)
	if err != ErrInvalidWindow {
		t.Errorf("got %v, want ErrInvalidWindow", err)
	}
}

func TestEventCount(t *testing.T) {
	events := []Event{
		ev(conceptgraph.SubjectTorts, "negligence", 5, time.Hour),
		ev(conceptgraph.SubjectTorts, "negligence", 1, 48*time.Hour),
		ev(conceptgraph.SubjectContracts, "offer", 3, time.Hour),
	}

	n, err := EventCount(events, conceptgraph.SubjectUnknown, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("all-history count = %d, want 3", n)
	}

	n, err = EventCount(events, conceptgraph.SubjectTorts, 24*time.Hour, now)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("windowed torts count = %d, want 1", n)
	}

	if _, err := EventCount(nil, conceptgraph.SubjectUnknown, -time.Hour, now); err != ErrInvalidWindow {
		t.Errorf("got %v, want ErrInvalidWindow", err)
	}
}

func TestWeakTopics(t *testing.T) {
	events := []Event{
		// hearsay: 1/4 correct — weak.
		ev(conceptgraph.SubjectEvidence, "hearsay", 1, time.Hour),
		ev(conceptgraph.SubjectEvidence, "hearsay", 2, 2*time.Hour),
		ev(conceptgraph.SubjectEvidence, "hearsay", 1, 3*time.Hour),
		ev(conceptgraph.SubjectEvidence, "hearsay", 5, 4*time.Hour),
		// relevance: 3/3 correct — strong.
		ev(conceptgraph.SubjectEvidence, "relevance", 5, time.Hour),
		ev(conceptgraph.SubjectEvidence, "relevance", 4, 2*time.Hour),
		ev(conceptgraph.SubjectEvidence, "relevance", 3, 3*time.Hour),
		// privilege: 0/2 but under min samples — excluded.
		ev(conceptgraph.SubjectEvidence, "privilege", 1, time.Hour),
		ev(conceptgraph.SubjectEvidence, "privilege", 1, 2*time.Hour),
	}

	weak, err := WeakTopics(events, conceptgraph.SubjectEvidence, 0.7, 3, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(weak) != 1 {
		t.Fatalf("got %d weak topics, want 1: %+v", len(weak), weak)
	}
	if weak[0].Topic != "hearsay" {
		t.Errorf("weak topic = %s, want hearsay", weak[0].Topic)
	}
	if weak[0].Samples != 4 {
		t.Errorf("samples = %d, want 4", weak[0].Samples)
	}
	if want := 0.25; weak[0].Accuracy != want {
		t.Errorf("accuracy = %f, want %f", weak[0].Accuracy, want)
	}
}

func TestWeakTopics_SortedWeakestFirst(t *testing.T) {
	events := []Event{
		ev(conceptgraph.SubjectTorts, "duty", 1, time.Hour),
		ev(conceptgraph.SubjectTorts, "duty", 5, 2*time.Hour),
		ev(conceptgraph.SubjectTorts, "causation", 1, time.Hour),
		ev(conceptgraph.SubjectTorts, "causation", 1, 2*time.Hour),
	}

	weak, err := WeakTopics(events, conceptgraph.SubjectTorts, 0.9, 1, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(weak) != 2 {
		t.Fatalf("got %d weak topics, want 2", len(weak))
	}
	if weak[0].Topic != "causation" || weak[1].Topic != "duty" {
		t.Errorf("order = [%s, %s], want weakest first", weak[0].Topic, weak[1].Topic)
	}
}

func TestActivityByDay(t *testing.T) {
	events := []Event{
		ev(conceptgraph.SubjectTorts, "duty", 5, time.Hour),
		ev(conceptgraph.SubjectTorts, "duty", 3, 2*time.Hour),
		ev(conceptgraph.SubjectContracts, "offer", 1, 26*time.Hour),
	}

	counts, err := ActivityByDay(events, 0, now)
	if err != nil {
		t.Fatal(err)
	}
	if counts["2026-03-01"] != 2 {
		t.Errorf("2026-03-01 = %d, want 2", counts["2026-03-01"])
	}
	if counts["2026-02-28"] != 1 {
		t.Errorf("2026-02-28 = %d, want 1", counts["2026-02-28"])
	}
}

func TestSessionQuality_AllDimensions(t *testing.T) {
	events := []SessionEvent{
		{Correct: true, ResponseTimeMs: 10_000, Confidence: 1.0},
		{Correct: true, ResponseTimeMs: 15_000, Confidence: 0.8},
		{Correct: false, ResponseTimeMs: 20_000, Confidence: 0.2},
	}

	// accuracy 2/3; efficiency 1.0 (15s avg under 20s target);
	// calibration (1 + 0.8 + 0.8) / 3.
	want := 0.5*(2.0/3.0) + 0.3*1.0 + 0.2*(2.6/3.0)
	got := SessionQuality(events)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("session quality = %f, want %f", got, want)
	}
}

func TestSessionQuality_MissingDimensionsRenormalize(t *testing.T) {
	// Accuracy only: a perfect untimed, unrated session scores 1.0, not
	// 0.5 — missing dimensions are excluded, not zeroed.
	events := []SessionEvent{{Correct: true}, {Correct: true}}
	if got := SessionQuality(events); got != 1.0 {
		t.Errorf("accuracy-only quality = %f, want 1.0", got)
	}

	// Accuracy + timing, no confidence.
	events = []SessionEvent{
		{Correct: true, ResponseTimeMs: 5_000},
		{Correct: false, ResponseTimeMs: 5_000},
	}
	want := (0.5*0.5 + 0.3*1.0) / 0.8
	if got := SessionQuality(events); math.Abs(got-want) > 1e-9 {
		t.Errorf("quality = %f, want %f", got, want)
	}
}

func TestSessionQuality_Empty(t *testing.T) {
	if got := SessionQuality(nil); got != 0 {
		t.Errorf("empty session quality = %f, want 0", got)
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		secs float64
		want float64
	}{
		{10, 1.0},
		{20, 1.0},
		{50, 0.5},
		{80, 0.0},
		{200, 0.0},
	}
	for _, tt := range tests {
		if got := efficiency(tt.secs); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("efficiency(%f) = %f, want %f", tt.secs, got, tt.want)
		}
	}
}
