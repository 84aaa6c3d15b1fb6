package conceptgraph

import (
	"strings"
	"testing"
)

func concept(id string, subject Subject, prereqs ...string) Concept {
	return Concept{
		ID:            id,
		Subject:       subject,
		Name:          id,
		Prerequisites: prereqs,
	}
}

func TestNewGraph_TopologicalOrder(t *testing.T) {
	g, err := NewGraph([]Concept{
		concept("contracts-remedies", SubjectContracts, "contracts-formation"),
		concept("contracts-formation", SubjectContracts),
		concept("contracts-consideration", SubjectContracts, "contracts-formation"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if g.TopoIndex("contracts-formation") >= g.TopoIndex("contracts-remedies") {
		t.Error("prerequisite should sort before its dependent")
	}
	if g.TopoIndex("contracts-formation") >= g.TopoIndex("contracts-consideration") {
		t.Error("prerequisite should sort before its dependent")
	}

	ordered := g.BySubject(SubjectContracts)
	if len(ordered) != 3 {
		t.Fatalf("got %d contracts concepts, want 3", len(ordered))
	}
	if ordered[0].ID != "contracts-formation" {
		t.Errorf("first concept = %s, want contracts-formation", ordered[0].ID)
	}
}

func TestNewGraph_Deterministic(t *testing.T) {
	concepts := []Concept{
		concept("b", SubjectTorts),
		concept("a", SubjectTorts),
		concept("c", SubjectTorts, "a", "b"),
	}

	g1, err := NewGraph(concepts)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := NewGraph(concepts)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"a", "b", "c"} {
		if g1.TopoIndex(id) != g2.TopoIndex(id) {
			t.Errorf("topo index for %s differs across builds", id)
		}
	}
	// Zero-indegree ties break alphabetically.
	if g1.TopoIndex("a") >= g1.TopoIndex("b") {
		t.Error("ties should resolve in ID order")
	}
}

func TestNewGraph_RejectsCycle(t *testing.T) {
	_, err := NewGraph([]Concept{
		concept("a", SubjectTorts, "b"),
		concept("b", SubjectTorts, "a"),
	})
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error %q should mention the cycle", err)
	}
}

func TestNewGraph_RejectsDuplicatesAndDangling(t *testing.T) {
	_, err := NewGraph([]Concept{
		concept("a", SubjectTorts),
		concept("a", SubjectTorts),
		concept("b", SubjectTorts, "missing"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	// Both problems reported in one combined error.
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error %q should report the duplicate ID", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error %q should report the dangling prerequisite", err)
	}
}

func TestCycleMembers(t *testing.T) {
	members := CycleMembers([]Concept{
		concept("a", SubjectTorts, "b"),
		concept("b", SubjectTorts, "c"),
		concept("c", SubjectTorts, "a"),
		concept("d", SubjectTorts, "a"),
	})
	if got, want := strings.Join(members, ","), "a,b,c,d"; got != want {
		t.Errorf("cycle members = %s, want %s", got, want)
	}

	if members := CycleMembers([]Concept{
		concept("a", SubjectTorts),
		concept("b", SubjectTorts, "a"),
	}); members != nil {
		t.Errorf("acyclic set reported members %v", members)
	}

	// A dangling prerequisite is not cycle evidence.
	if members := CycleMembers([]Concept{
		concept("a", SubjectTorts, "missing"),
	}); members != nil {
		t.Errorf("dangling prerequisite reported members %v", members)
	}
}

func TestGraph_ByID(t *testing.T) {
	g, err := NewGraph([]Concept{concept("a", SubjectEvidence)})
	if err != nil {
		t.Fatal(err)
	}
	if g.ByID("a") == nil {
		t.Error("expected concept a")
	}
	if g.ByID("nope") != nil {
		t.Error("unknown ID should return nil")
	}
	if g.TopoIndex("nope") != g.Len() {
		t.Error("unknown ID should sort last")
	}
}
