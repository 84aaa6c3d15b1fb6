package conceptgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Graph holds the concept DAG with precomputed indices. It is built once
// from the imported concept set and read-only afterwards.
type Graph struct {
	concepts  []Concept
	byID      map[string]*Concept
	bySubject map[Subject][]Concept
	topoIndex map[string]int
}

// NewGraph constructs a Graph from a slice of concepts, validating
// structure and computing a topological order over prerequisite edges
// (Kahn's algorithm). The order is used only for display: due lists and
// practice sets present prerequisite concepts before their dependents.
func NewGraph(concepts []Concept) (*Graph, error) {
	if err := validateConcepts(concepts); err != nil {
		return nil, err
	}

	g := &Graph{
		concepts:  concepts,
		byID:      make(map[string]*Concept, len(concepts)),
		bySubject: make(map[Subject][]Concept),
		topoIndex: make(map[string]int, len(concepts)),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(concepts))
	dependents := make(map[string][]string)
	for i := range concepts {
		inDegree[concepts[i].ID] = len(concepts[i].Prerequisites)
		for _, prereqID := range concepts[i].Prerequisites {
			dependents[prereqID] = append(dependents[prereqID], concepts[i].ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort the initial queue for deterministic ordering.
	sort.Strings(queue)

	order := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoIndex[id] = order
		order++

		deps := append([]string(nil), dependents[id]...)
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	// Group by subject, ordered topo-first then by ID.
	for i := range g.concepts {
		c := g.concepts[i]
		g.bySubject[c.Subject] = append(g.bySubject[c.Subject], c)
	}
	for subj, group := range g.bySubject {
		sorted := append([]Concept(nil), group...)
		sort.Slice(sorted, func(i, j int) bool {
			if g.topoIndex[sorted[i].ID] != g.topoIndex[sorted[j].ID] {
				return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
			}
			return sorted[i].ID < sorted[j].ID
		})
		g.bySubject[subj] = sorted
	}

	return g, nil
}

// ByID returns the concept with the given ID, or nil.
func (g *Graph) ByID(id string) *Concept {
	return g.byID[id]
}

// BySubject returns the concepts for a subject in prerequisite order.
func (g *Graph) BySubject(s Subject) []Concept {
	return g.bySubject[s]
}

// All returns every concept in prerequisite order across subjects.
func (g *Graph) All() []Concept {
	all := append([]Concept(nil), g.concepts...)
	sort.Slice(all, func(i, j int) bool {
		if g.topoIndex[all[i].ID] != g.topoIndex[all[j].ID] {
			return g.topoIndex[all[i].ID] < g.topoIndex[all[j].ID]
		}
		return all[i].ID < all[j].ID
	})
	return all
}

// Len returns the number of concepts in the graph.
func (g *Graph) Len() int {
	return len(g.concepts)
}

// TopoIndex returns the concept's position in the prerequisite order.
// Unknown IDs sort last.
func (g *Graph) TopoIndex(id string) int {
	if idx, ok := g.topoIndex[id]; ok {
		return idx
	}
	return len(g.concepts)
}

// CycleMembers returns the sorted IDs of concepts that cannot be
// topologically ordered because of a prerequisite cycle: the cycle
// itself plus anything downstream of it. Nil when the set is acyclic.
// Only edges to concepts present in the set count; dangling
// prerequisites are a separate problem and never flagged as cycle
// evidence.
func CycleMembers(concepts []Concept) []string {
	known := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		known[c.ID] = true
	}

	inDegree := make(map[string]int, len(concepts))
	dependents := make(map[string][]string)
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !known[prereqID] {
				continue
			}
			inDegree[c.ID]++
			dependents[prereqID] = append(dependents[prereqID], c.ID)
		}
	}

	var queue []string
	for _, c := range concepts {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, depID := range dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	var members []string
	for _, c := range concepts {
		if inDegree[c.ID] > 0 {
			members = append(members, c.ID)
		}
	}
	sort.Strings(members)
	return members
}

// validateConcepts performs structural checks on the concept set.
// Returns a combined error describing all problems found, or nil.
func validateConcepts(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("concept %q has empty ID", c.Name))
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	// Dangling prerequisites.
	for _, c := range concepts {
		for _, prereqID := range c.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	if cycle := CycleMembers(concepts); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving concepts: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid concept set:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
