package cards

import (
	"testing"

	"github.com/barristerapp/barrister/internal/conceptgraph"
)

func fullConcept() *conceptgraph.Concept {
	return &conceptgraph.Concept{
		ID:             "torts-negligence",
		Subject:        conceptgraph.SubjectTorts,
		Name:           "Negligence",
		RuleStatement:  "A defendant is liable for negligence when they breach a duty of care, causing damages.",
		Elements:       []string{"duty", "breach", "causation", "damages"},
		CommonTraps:    []string{"confusing actual and proximate cause"},
		Exceptions:     []string{"no duty to rescue absent a special relationship"},
		DifficultySeed: 2,
	}
}

func TestGenerate_OneCardPerNonEmptyField(t *testing.T) {
	got := Generate(fullConcept(), conceptgraph.DefaultClassifier)

	// Rule, elements, traps, exceptions — no policy rationales authored.
	if len(got) != 4 {
		t.Fatalf("got %d cards, want 4", len(got))
	}

	types := make(map[CardType]bool)
	for _, c := range got {
		types[c.Type] = true
	}
	for _, want := range []CardType{TypeRule, TypeElements, TypeTraps, TypeExceptions} {
		if !types[want] {
			t.Errorf("missing %s card", want)
		}
	}
	if types[TypePolicy] {
		t.Error("policy card generated with no policy rationales")
	}
}

func TestGenerate_DeterministicIDs(t *testing.T) {
	first := Generate(fullConcept(), conceptgraph.DefaultClassifier)
	second := Generate(fullConcept(), conceptgraph.DefaultClassifier)

	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("card %d: ID %q != %q across runs", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID != "torts-negligence:rule" {
		t.Errorf("rule card ID = %q, want torts-negligence:rule", first[0].ID)
	}
}

func TestGenerate_TrapsPinnedToAdvanced(t *testing.T) {
	c := fullConcept()
	c.DifficultySeed = 1 // foundational concept

	for _, card := range Generate(c, conceptgraph.DefaultClassifier) {
		switch card.Type {
		case TypeTraps:
			if card.Difficulty != Advanced {
				t.Errorf("traps card difficulty = %s, want advanced", card.Difficulty)
			}
		default:
			if card.Difficulty != Foundational {
				t.Errorf("%s card difficulty = %s, want foundational", card.Type, card.Difficulty)
			}
		}
	}
}

func TestGenerate_TrapsKeepHigherSeed(t *testing.T) {
	c := fullConcept()
	c.DifficultySeed = 5

	for _, card := range Generate(c, conceptgraph.DefaultClassifier) {
		if card.Type == TypeTraps && card.Difficulty != BarExamLevel {
			t.Errorf("traps card difficulty = %s, want bar-exam-level", card.Difficulty)
		}
	}
}

func TestGenerate_TopicOnCards(t *testing.T) {
	got := Generate(fullConcept(), conceptgraph.DefaultClassifier)
	for _, card := range got {
		if card.Topic != "negligence" {
			t.Errorf("%s card topic = %q, want negligence", card.Type, card.Topic)
		}
	}
}

func TestGenerate_EmptyConcept(t *testing.T) {
	c := &conceptgraph.Concept{
		ID:      "bare",
		Subject: conceptgraph.SubjectContracts,
		Name:    "Bare Concept",
	}
	if got := Generate(c, conceptgraph.DefaultClassifier); len(got) != 0 {
		t.Errorf("got %d cards for a concept with no content, want 0", len(got))
	}
}

func TestDifficultyFromSeed(t *testing.T) {
	tests := []struct {
		seed int
		want Difficulty
	}{
		{0, Foundational},
		{1, Foundational},
		{2, Intermediate},
		{3, Intermediate},
		{4, Advanced},
		{5, BarExamLevel},
	}
	for _, tt := range tests {
		if got := DifficultyFromSeed(tt.seed); got != tt.want {
			t.Errorf("DifficultyFromSeed(%d) = %s, want %s", tt.seed, got, tt.want)
		}
	}
}

func TestNumbered(t *testing.T) {
	got := numbered([]string{"duty", "breach"})
	want := "1. duty\n2. breach"
	if got != want {
		t.Errorf("numbered = %q, want %q", got, want)
	}
}
