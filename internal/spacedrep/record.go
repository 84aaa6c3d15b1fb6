package spacedrep

import "time"

// ReviewRecord holds the SM-2 scheduling state for a single card.
// A card with no record is implicitly new (never reviewed).
type ReviewRecord struct {
	CardID         string    `json:"card_id"`
	Repetitions    int       `json:"repetitions"`     // successful reviews since last lapse
	IntervalDays   int       `json:"interval_days"`   // current spacing
	EaseFactor     float64   `json:"ease_factor"`     // never below MinEase
	DueDate        time.Time `json:"due_date"`
	LastReviewedAt time.Time `json:"last_reviewed_at"`
	LapseCount     int       `json:"lapse_count"`
}

// NewRecord returns the initial scheduling state for a card's first
// review. The zero due date marks it immediately due.
func NewRecord(cardID string) *ReviewRecord {
	return &ReviewRecord{
		CardID:     cardID,
		EaseFactor: InitialEase,
	}
}

// IsDue reports whether the card is due at the given time. A record that
// has never been reviewed is always due.
func (r *ReviewRecord) IsDue(now time.Time) bool {
	if r.LastReviewedAt.IsZero() {
		return true
	}
	return !now.Before(r.DueDate)
}

// OverdueDays returns how many days past due the card is, or 0 if not
// yet due.
func (r *ReviewRecord) OverdueDays(now time.Time) float64 {
	if now.Before(r.DueDate) {
		return 0
	}
	return now.Sub(r.DueDate).Hours() / 24.0
}

// State describes where a card sits in the New → Learning → Review
// cycle, for display.
type State string

const (
	StateNew      State = "new"      // never reviewed
	StateLearning State = "learning" // interval still in the fixed ramp
	StateReview   State = "review"   // interval grows by ease factor
)

// State classifies the record. A lapse returns the card to Learning
// because repetitions reset to zero.
func (r *ReviewRecord) State() State {
	switch {
	case r.LastReviewedAt.IsZero():
		return StateNew
	case r.Repetitions <= 2:
		return StateLearning
	default:
		return StateReview
	}
}
