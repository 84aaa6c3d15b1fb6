package cards

import (
	"fmt"
	"strings"

	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// Generate derives the reviewable cards for a concept: one card per
// non-empty authored field. Card IDs are deterministic, so re-running
// generation for the same concept yields the same IDs and an upsert
// keyed by ID stays a no-op.
func Generate(c *conceptgraph.Concept, classify conceptgraph.TopicClassifier) []Card {
	topic := conceptgraph.ResolveTopic(c, classify)
	base := DifficultyFromSeed(c.DifficultySeed)

	var out []Card
	for _, t := range AllTypes() {
		question, answer, ok := content(c, t)
		if !ok {
			continue
		}

		diff := base
		// Trap-avoidance is a harder skill than rule recall: traps cards
		// are pinned to Advanced minimum regardless of the seed.
		if t == TypeTraps && diff < Advanced {
			diff = Advanced
		}

		out = append(out, Card{
			ID:         CardID(c.ID, t),
			ConceptID:  c.ID,
			Type:       t,
			Subject:    c.Subject,
			Topic:      topic,
			Question:   question,
			Answer:     answer,
			Difficulty: diff,
			Tags:       []string{string(c.Subject), topic, string(t)},
		})
	}
	return out
}

// content builds the question/answer pair for a card type. Returns
// ok=false when the concept has no authored content of that type.
func content(c *conceptgraph.Concept, t CardType) (question, answer string, ok bool) {
	switch t {
	case TypeRule:
		if c.RuleStatement == "" {
			return "", "", false
		}
		return fmt.Sprintf("State the rule: %s", c.Name), c.RuleStatement, true
	case TypeElements:
		if len(c.Elements) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("List the elements of %s", c.Name), numbered(c.Elements), true
	case TypeTraps:
		if len(c.CommonTraps) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("What are the common exam traps for %s?", c.Name), numbered(c.CommonTraps), true
	case TypeExceptions:
		if len(c.Exceptions) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("What are the exceptions to %s?", c.Name), numbered(c.Exceptions), true
	case TypePolicy:
		if len(c.PolicyRationales) == 0 {
			return "", "", false
		}
		return fmt.Sprintf("What policy rationales support %s?", c.Name), numbered(c.PolicyRationales), true
	default:
		return "", "", false
	}
}

// numbered formats an ordered list as "1. ...\n2. ...".
func numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return strings.TrimRight(b.String(), "\n")
}
