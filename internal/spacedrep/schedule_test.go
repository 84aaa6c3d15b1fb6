package spacedrep

import (
	"math"
	"testing"
	"time"
)

var reviewTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestSchedule_LearningRamp(t *testing.T) {
	rec := NewRecord("contracts-offer:rule")

	rec, err := Schedule(rec, QualityGood, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Repetitions != 1 || rec.IntervalDays != 1 {
		t.Errorf("first success: reps=%d interval=%d, want 1/1", rec.Repetitions, rec.IntervalDays)
	}

	rec, err = Schedule(rec, QualityGood, reviewTime.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Repetitions != 2 || rec.IntervalDays != 6 {
		t.Errorf("second success: reps=%d interval=%d, want 2/6", rec.Repetitions, rec.IntervalDays)
	}

	// Third success: interval = round(prev * ease).
	prevEase := rec.EaseFactor
	rec, err = Schedule(rec, QualityGood, reviewTime.AddDate(0, 0, 7))
	if err != nil {
		t.Fatal(err)
	}
	want := int(math.Round(6 * prevEase))
	if rec.IntervalDays != want {
		t.Errorf("third success: interval=%d, want %d", rec.IntervalDays, want)
	}
}

func TestSchedule_IntervalNonDecreasingOnEasy(t *testing.T) {
	rec := NewRecord("contracts-parol:rule")

	prev := 0
	when := reviewTime
	for i := 0; i < 10; i++ {
		var err error
		rec, err = Schedule(rec, QualityEasy, when)
		if err != nil {
			t.Fatal(err)
		}
		if rec.IntervalDays < prev {
			t.Fatalf("interval shrank from %d to %d on review %d", prev, rec.IntervalDays, i)
		}
		prev = rec.IntervalDays
		when = when.AddDate(0, 0, rec.IntervalDays)
	}
}

func TestSchedule_LapseResetsRamp(t *testing.T) {
	rec := &ReviewRecord{
		CardID:       "torts-negligence:elements",
		Repetitions:  5,
		IntervalDays: 30,
		EaseFactor:   2.5,
	}

	out, err := Schedule(rec, QualityAgain, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if out.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", out.Repetitions)
	}
	if out.IntervalDays != LapseInterval {
		t.Errorf("interval = %d, want %d", out.IntervalDays, LapseInterval)
	}
	if out.LapseCount != 1 {
		t.Errorf("lapse count = %d, want 1", out.LapseCount)
	}
	if out.EaseFactor >= rec.EaseFactor {
		t.Errorf("ease %f should drop after a lapse", out.EaseFactor)
	}

	// Input record must not be mutated.
	if rec.Repetitions != 5 || rec.IntervalDays != 30 {
		t.Error("input record was mutated")
	}
}

func TestSchedule_EaseFloor(t *testing.T) {
	rec := NewRecord("evidence-hearsay:rule")

	// Repeated failures converge on the floor, never below.
	for i := 0; i < 20; i++ {
		var err error
		rec, err = Schedule(rec, QualityAgain, reviewTime.AddDate(0, 0, i))
		if err != nil {
			t.Fatal(err)
		}
		if rec.EaseFactor < MinEase {
			t.Fatalf("ease %f fell below floor %f at review %d", rec.EaseFactor, MinEase, i)
		}
	}
	if rec.EaseFactor != MinEase {
		t.Errorf("ease = %f, want floor %f", rec.EaseFactor, MinEase)
	}
}

func TestSchedule_EaseByQuality(t *testing.T) {
	tests := []struct {
		name string
		q    Quality
		want float64
	}{
		{"easy raises", QualityEasy, 2.6},
		{"four slightly lowers", Quality(4), 2.5},
		{"good slightly lowers", QualityGood, 2.36},
		{"hard drops", QualityHard, 2.18},
		{"again drops most", QualityAgain, 1.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextEase(2.5, tt.q)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("nextEase(2.5, %d) = %f, want %f", tt.q, got, tt.want)
			}
		})
	}
}

func TestSchedule_InvalidQuality(t *testing.T) {
	rec := NewRecord("card")
	for _, q := range []Quality{0, 6, -1} {
		if _, err := Schedule(rec, q, reviewTime); err == nil {
			t.Errorf("quality %d: expected error", q)
		}
	}
}

func TestSchedule_DueDate(t *testing.T) {
	rec := NewRecord("card")
	out, err := Schedule(rec, QualityEasy, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if want := reviewTime.AddDate(0, 0, 1); !out.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", out.DueDate, want)
	}
	if !out.LastReviewedAt.Equal(reviewTime) {
		t.Errorf("last reviewed = %v, want %v", out.LastReviewedAt, reviewTime)
	}
}

func TestReviewRecord_IsDue(t *testing.T) {
	now := reviewTime

	fresh := NewRecord("card")
	if !fresh.IsDue(now) {
		t.Error("never-reviewed record should be due")
	}

	future := &ReviewRecord{LastReviewedAt: now, DueDate: now.AddDate(0, 0, 3)}
	if future.IsDue(now) {
		t.Error("record due in 3 days should not be due now")
	}
	if !future.IsDue(now.AddDate(0, 0, 3)) {
		t.Error("record should be due exactly at its due date")
	}
}

func TestReviewRecord_State(t *testing.T) {
	rec := NewRecord("card")
	if rec.State() != StateNew {
		t.Errorf("state = %s, want new", rec.State())
	}

	rec, _ = Schedule(rec, QualityGood, reviewTime)
	if rec.State() != StateLearning {
		t.Errorf("state = %s, want learning", rec.State())
	}

	rec, _ = Schedule(rec, QualityGood, reviewTime.AddDate(0, 0, 1))
	rec, _ = Schedule(rec, QualityGood, reviewTime.AddDate(0, 0, 7))
	if rec.State() != StateReview {
		t.Errorf("state = %s, want review", rec.State())
	}

	rec, _ = Schedule(rec, QualityAgain, reviewTime.AddDate(0, 0, 20))
	if rec.State() != StateLearning {
		t.Errorf("state after lapse = %s, want learning", rec.State())
	}
}
