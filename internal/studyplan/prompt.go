package studyplan

import (
	"fmt"
	"strings"

	"github.com/barristerapp/barrister/internal/analytics"
	"github.com/barristerapp/barrister/internal/conceptgraph"
)

const planSystemPrompt = `You are an experienced bar-exam tutor. A student preparing for the bar exam needs a focused study plan based on their recent flashcard performance.`

// PlanInput carries the performance data the plan prompt is built from.
type PlanInput struct {
	Subject       conceptgraph.Subject
	Accuracy      float64
	AccuracyKnown bool
	TotalReviews  int
	DueCount      int
	WeakTopics    []analytics.TopicAccuracy
	DaysAvailable int
}

func buildPlanUserMessage(input PlanInput) string {
	var b strings.Builder

	if input.Subject == conceptgraph.SubjectUnknown {
		b.WriteString("Scope: all subjects\n")
	} else {
		b.WriteString(fmt.Sprintf("Scope: %s\n", input.Subject.DisplayName()))
	}
	if input.AccuracyKnown {
		b.WriteString(fmt.Sprintf("Recent accuracy: %.0f%%\n", input.Accuracy*100))
	} else {
		b.WriteString("Recent accuracy: no data yet\n")
	}
	b.WriteString(fmt.Sprintf("Total reviews logged: %d\n", input.TotalReviews))
	b.WriteString(fmt.Sprintf("Cards currently due: %d\n", input.DueCount))
	if input.DaysAvailable > 0 {
		b.WriteString(fmt.Sprintf("Days until exam: %d\n", input.DaysAvailable))
	}

	b.WriteString("\nWeak topics (accuracy, sample size):\n")
	if len(input.WeakTopics) == 0 {
		b.WriteString("None detected yet\n")
	} else {
		for _, t := range input.WeakTopics {
			b.WriteString(fmt.Sprintf("- %s: %.0f%% over %d reviews\n", t.Topic, t.Accuracy*100, t.Samples))
		}
	}

	b.WriteString(`
Instructions:
Write a study plan that:
1. Prioritizes the weak topics above, weakest first, and says why each matters on the exam.
2. Allocates the due-card backlog across the available days in realistic daily chunks.
3. Recommends a mix of rule review and issue-spotting practice for each weak topic.
4. Stays under 400 words. Plain text, no markdown tables.`)

	return b.String()
}

const explainSystemPrompt = `You are an experienced bar-exam tutor. Explain legal concepts precisely but accessibly, the way a student outlines them for exam day.`

func buildExplainUserMessage(c *conceptgraph.Concept) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s\n", c.Name))
	b.WriteString(fmt.Sprintf("Subject: %s\n", c.Subject.DisplayName()))
	if c.RuleStatement != "" {
		b.WriteString(fmt.Sprintf("Rule: %s\n", c.RuleStatement))
	}
	if len(c.Elements) > 0 {
		b.WriteString("Elements:\n")
		for _, el := range c.Elements {
			b.WriteString(fmt.Sprintf("- %s\n", el))
		}
	}
	if len(c.CommonTraps) > 0 {
		b.WriteString("Known exam traps:\n")
		for _, tr := range c.CommonTraps {
			b.WriteString(fmt.Sprintf("- %s\n", tr))
		}
	}

	b.WriteString(`
Instructions:
1. Explain the rule in 3-5 sentences, including why it exists.
2. Give one short hypothetical fact pattern where the rule applies and one where it does not.
3. Point out the single most commonly missed distinction.
4. Stay under 300 words. Plain text.`)

	return b.String()
}
