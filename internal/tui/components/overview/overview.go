package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Italic(true)
)

type Model struct {
	summaries []engine.Summary
	streaks   map[string]int
	habits    []models.Habit
}

func New() Model {
	return Model{}
}

func (m *Model) SetData(summaries []engine.Summary, streaks map[string]int, habits []models.Habit) {
	m.summaries = summaries
	m.streaks = streaks
	m.habits = habits
}

func (m Model) View() string {
	if len(m.summaries) == 0 {
		return "\n  No data yet."
	}

	var b strings.Builder
	for i, s := range m.summaries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerStyle.Render(s.Label))
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(s.DateLabel))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Total: %d min   Active days: %d   Avg per habit: %.1f\n",
			s.TotalMinutes, s.ActiveDays, s.AverageMinutesPerHabit)
		if s.TopHabit != nil {
			fmt.Fprintf(&b, "  Top habit: %s (%d min)\n", s.TopHabit.Name, s.TopHabit.Minutes)
		}
		b.WriteString("  " + focusStyle.Render(s.SuggestedFocus) + "\n")
	}

	if len(m.habits) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Streaks"))
		b.WriteString("\n")
		for _, h := range m.habits {
			fmt.Fprintf(&b, "  %-20s %s\n", h.Name, renderStreak(m.streaks[h.ID]))
		}
	}

	return b.String()
}

func renderStreak(score int) string {
	return strings.Repeat("●", score) + strings.Repeat("○", constants.StreakWindowDays-score)
}
