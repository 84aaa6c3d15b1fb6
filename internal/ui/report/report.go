// Package report renders engine output for the terminal. Styling only;
// all numbers come from the engine and analytics packages.
package report

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/barristerapp/barrister/internal/analytics"
	"github.com/barristerapp/barrister/internal/cards"
	"github.com/barristerapp/barrister/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	weakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))

	dueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E"))
)

// Statistics renders the stats dashboard.
func Statistics(scope string, stats *engine.Statistics) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Study statistics — %s", scope)))
	b.WriteString("\n\n")

	if stats.AccuracyKnown {
		line(&b, "Accuracy", fmt.Sprintf("%.0f%%", stats.Accuracy*100))
	} else {
		line(&b, "Accuracy", "no reviews yet")
	}
	line(&b, "Total reviews", fmt.Sprintf("%d", stats.TotalReviews))
	line(&b, "Cards due", fmt.Sprintf("%d", stats.DueCount))
	line(&b, "Concepts tested", fmt.Sprintf("%d / %d", stats.TestedConcepts, stats.TotalConcepts))
	line(&b, "Mean mastery", fmt.Sprintf("%.0f%%", stats.MasteryPercentage))

	if len(stats.ActivityByDay) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Recent activity"))
		b.WriteString("\n")
		days := make([]string, 0, len(stats.ActivityByDay))
		for d := range stats.ActivityByDay {
			days = append(days, d)
		}
		sort.Strings(days)
		if len(days) > 14 {
			days = days[len(days)-14:]
		}
		for _, d := range days {
			b.WriteString(fmt.Sprintf("  %s  %s\n", d, okStyle.Render(strings.Repeat("▪", min(stats.ActivityByDay[d], 40)))))
		}
	}

	return b.String()
}

// DueCards renders the due-card list.
func DueCards(dueCards []cards.Card) string {
	if len(dueCards) == 0 {
		return okStyle.Render("Nothing due. Caught up.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d card(s) due", len(dueCards))))
	b.WriteString("\n\n")
	for _, c := range dueCards {
		b.WriteString(fmt.Sprintf("  %s  %s %s\n",
			dueStyle.Render(c.ID),
			valueStyle.Render(c.Question),
			labelStyle.Render(fmt.Sprintf("[%s, %s]", c.Subject.DisplayName(), c.Difficulty)),
		))
	}
	return b.String()
}

// PracticeSet renders a selected practice set with its shortfall, if any.
func PracticeSet(scope string, ids []string, shortfall int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Practice set — %s", scope)))
	b.WriteString("\n\n")
	for i, id := range ids {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, valueStyle.Render(id)))
	}
	if shortfall > 0 {
		b.WriteString("\n")
		b.WriteString(weakStyle.Render(fmt.Sprintf("Short %d concept(s): pool exhausted", shortfall)))
		b.WriteString("\n")
	}
	return b.String()
}

// WeakTopics renders the weak-topic list.
func WeakTopics(topics []analytics.TopicAccuracy) string {
	if len(topics) == 0 {
		return okStyle.Render("No weak topics detected (or not enough samples yet).")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Weak topics"))
	b.WriteString("\n\n")
	for _, t := range topics {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			weakStyle.Render(fmt.Sprintf("%-40s", t.Topic)),
			labelStyle.Render(fmt.Sprintf("%.0f%% over %d reviews", t.Accuracy*100, t.Samples)),
		))
	}
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-18s", label)),
		valueStyle.Render(value),
	))
}
