package analytics

import "math"

// Session quality weights. Missing dimensions are excluded from the
// weighted average, and the remaining weights renormalized, rather than
// defaulting a missing dimension to zero.
const (
	accuracyWeight    = 0.5
	efficiencyWeight  = 0.3
	calibrationWeight = 0.2

	// targetSecondsPerItem anchors the efficiency score: sessions
	// averaging this pace or faster score 1.0.
	targetSecondsPerItem = 20.0
)

// SessionEvent is one answered item within a practice session. Timing
// and confidence are optional; zero values mean "not supplied".
type SessionEvent struct {
	Correct        bool
	ResponseTimeMs int     // 0 = no timing data
	Confidence     float64 // learner's self-rated confidence in (0, 1]; 0 = not supplied
}

// SessionQuality scores a completed session in [0, 1] from accuracy,
// time-per-item efficiency, and confidence calibration. Only the
// dimensions actually present in the events contribute.
func SessionQuality(events []SessionEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	correct := 0
	timedCount := 0
	var totalMs int64
	confCount := 0
	var calibrationSum float64

	for _, e := range events {
		if e.Correct {
			correct++
		}
		if e.ResponseTimeMs > 0 {
			timedCount++
			totalMs += int64(e.ResponseTimeMs)
		}
		if e.Confidence > 0 {
			confCount++
			calibrationSum += calibration(e)
		}
	}

	score := 0.0
	weight := 0.0

	accuracy := float64(correct) / float64(len(events))
	score += accuracyWeight * accuracy
	weight += accuracyWeight

	if timedCount > 0 {
		avgSecs := float64(totalMs) / float64(timedCount) / 1000.0
		score += efficiencyWeight * efficiency(avgSecs)
		weight += efficiencyWeight
	}

	if confCount > 0 {
		score += calibrationWeight * (calibrationSum / float64(confCount))
		weight += calibrationWeight
	}

	return clamp01(score / weight)
}

// efficiency maps average seconds-per-item to [0, 1]: at or under the
// target pace scores 1, degrading linearly to 0 at 4x the target.
func efficiency(avgSecs float64) float64 {
	if avgSecs <= targetSecondsPerItem {
		return 1
	}
	return clamp01(1 - (avgSecs-targetSecondsPerItem)/(3*targetSecondsPerItem))
}

// calibration rewards confidence that matches the outcome: confident and
// correct, or unconfident and wrong.
func calibration(e SessionEvent) float64 {
	outcome := 0.0
	if e.Correct {
		outcome = 1.0
	}
	return 1 - math.Abs(e.Confidence-outcome)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
