package conceptgraph

// Concept is a single discrete testable unit of legal knowledge: a rule,
// an element breakdown, an exception, or a policy rationale cluster.
// Concepts are authored once and immutable during normal operation.
type Concept struct {
	ID      string  `json:"id"`
	Subject Subject `json:"subject"`
	Topic   string  `json:"topic,omitempty"`
	Name    string  `json:"name"`

	// Authored content. Each non-empty field drives generation of one
	// reviewable card of the matching type.
	RuleStatement    string   `json:"rule_statement,omitempty"`
	Elements         []string `json:"elements,omitempty"`
	CommonTraps      []string `json:"common_traps,omitempty"`
	Exceptions       []string `json:"exceptions,omitempty"`
	PolicyRationales []string `json:"policy_rationales,omitempty"`

	// DifficultySeed is the author-assigned initial difficulty (1-5).
	DifficultySeed int `json:"difficulty_seed"`

	// Prerequisites lists concept IDs that should be studied first.
	// Used for display ordering only, never enforced as a gate.
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// MinSeed and MaxSeed bound the author-assigned difficulty seed.
const (
	MinSeed = 1
	MaxSeed = 5
)

// ClampSeed forces a difficulty seed into the valid range. Authored
// content with a missing seed defaults to the middle of the scale.
func ClampSeed(seed int) int {
	if seed < MinSeed {
		if seed == 0 {
			return 3
		}
		return MinSeed
	}
	if seed > MaxSeed {
		return MaxSeed
	}
	return seed
}
