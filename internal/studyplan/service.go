// Package studyplan turns performance data into tutor-authored text
// through the generative-text collaborator. The engine's scheduling and
// mastery state never depend on anything produced here; a provider
// failure surfaces to the caller and touches nothing else.
package studyplan

import (
	"context"
	"fmt"

	"github.com/barristerapp/barrister/internal/conceptgraph"
	"github.com/barristerapp/barrister/internal/llm"
)

// Service generates study plans and concept explanations.
type Service struct {
	provider llm.Provider
}

// NewService creates a study-text service on the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// GeneratePlan produces a free-form study plan from the learner's
// current performance snapshot.
func (s *Service) GeneratePlan(ctx context.Context, input PlanInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "study-plan")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    planSystemPrompt,
		Prompt:    buildPlanUserMessage(input),
		MaxTokens: 1024,
	})
	if err != nil {
		return "", fmt.Errorf("generate study plan: %w", err)
	}
	return resp.Text, nil
}

// ExplainConcept produces a tutor-style explanation of one concept.
func (s *Service) ExplainConcept(ctx context.Context, c *conceptgraph.Concept) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain-concept")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    explainSystemPrompt,
		Prompt:    buildExplainUserMessage(c),
		MaxTokens: 768,
	})
	if err != nil {
		return "", fmt.Errorf("explain concept %s: %w", c.ID, err)
	}
	return resp.Text, nil
}
