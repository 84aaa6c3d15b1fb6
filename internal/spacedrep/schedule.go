package spacedrep

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// SM-2 constants.
const (
	// InitialEase is the ease factor for a card's first review.
	InitialEase = 2.5
	// MinEase floors the ease factor; no quality sequence drives it lower.
	MinEase = 1.3

	// FirstInterval and SecondInterval are the fixed learning-ramp
	// intervals in days. From the third successful repetition on, the
	// interval grows by the ease factor.
	FirstInterval  = 1
	SecondInterval = 6

	// LapseInterval is the reset interval after a failed recall.
	LapseInterval = 1
)

// Quality is a self-reported recall rating, 1-5. The four-button UI
// emits {1, 2, 3, 5}; 4 stays valid for programmatic submission.
type Quality int

const (
	QualityAgain Quality = 1
	QualityHard  Quality = 2
	QualityGood  Quality = 3
	QualityEasy  Quality = 5
)

// ErrInvalidQuality rejects ratings outside 1-5.
var ErrInvalidQuality = errors.New("spacedrep: quality must be between 1 and 5")

// Validate checks the quality is in range.
func (q Quality) Validate() error {
	if q < 1 || q > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuality, q)
	}
	return nil
}

// Success reports whether the rating counts as a successful recall.
func (q Quality) Success() bool {
	return q >= QualityGood
}

// Schedule applies one SM-2 review to a record and returns the updated
// record. The input is not mutated. Invalid quality returns an error
// with the record unchanged; the function has no other failure mode.
func Schedule(rec *ReviewRecord, q Quality, now time.Time) (*ReviewRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("spacedrep: nil review record")
	}

	out := *rec

	if q.Success() {
		out.Repetitions++
		switch {
		case out.Repetitions == 1:
			out.IntervalDays = FirstInterval
		case out.Repetitions == 2:
			out.IntervalDays = SecondInterval
		default:
			out.IntervalDays = int(math.Round(float64(rec.IntervalDays) * rec.EaseFactor))
		}
	} else {
		// Lapse: the repetition streak and interval reset, the card
		// returns to the learning ramp.
		out.Repetitions = 0
		out.IntervalDays = LapseInterval
		out.LapseCount++
	}

	out.EaseFactor = nextEase(rec.EaseFactor, q)
	out.LastReviewedAt = now
	out.DueDate = now.AddDate(0, 0, out.IntervalDays)

	return &out, nil
}

// nextEase applies the standard SM-2 quality-to-ease mapping: quality 5
// raises ease, 3 leaves it roughly flat, 1-2 pull it toward the floor.
func nextEase(ease float64, q Quality) float64 {
	d := float64(5 - q)
	next := ease + (0.1 - d*(0.08+d*0.02))
	return math.Max(MinEase, next)
}
