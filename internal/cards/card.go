package cards

import (
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

// CardType identifies which authored field of a concept a card drills.
type CardType string

const (
	TypeRule       CardType = "rule"
	TypeElements   CardType = "elements"
	TypeTraps      CardType = "traps"
	TypeExceptions CardType = "exceptions"
	TypePolicy     CardType = "policy"
)

// AllTypes returns the card types in generation order.
func AllTypes() []CardType {
	return []CardType{TypeRule, TypeElements, TypeTraps, TypeExceptions, TypePolicy}
}

// Difficulty is a card's difficulty tier.
type Difficulty int

const (
	Foundational Difficulty = iota + 1
	Intermediate
	Advanced
	BarExamLevel
)

// String returns the tier's display label.
func (d Difficulty) String() string {
	switch d {
	case Foundational:
		return "foundational"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case BarExamLevel:
		return "bar-exam-level"
	default:
		return "unknown"
	}
}

// DifficultyFromSeed maps an author-assigned seed (1-5) to a tier.
func DifficultyFromSeed(seed int) Difficulty {
	switch {
	case seed <= 1:
		return Foundational
	case seed <= 3:
		return Intermediate
	case seed == 4:
		return Advanced
	default:
		return BarExamLevel
	}
}

// AllDifficulties returns the tiers from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Foundational, Intermediate, Advanced, BarExamLevel}
}

// Card is a single reviewable prompt derived from a concept. The ID is
// deterministic (concept ID + type tag) so regenerating from the same
// concept never creates a duplicate.
type Card struct {
	ID         string
	ConceptID  string
	Type       CardType
	Subject    conceptgraph.Subject
	Topic      string
	Question   string
	Answer     string
	Difficulty Difficulty
	Tags       []string
}

// CardID derives the deterministic card ID for a concept and card type.
func CardID(conceptID string, t CardType) string {
	return conceptID + ":" + string(t)
}
