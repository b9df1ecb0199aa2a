package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateSummary:
		content = docStyle.Render(m.overview.View())
	case StateHistory:
		content = docStyle.Render(m.timeline.View())
	case StateGratitude:
		content = docStyle.Render(m.viewGratitude())
	case StateReflecting:
		content = m.form.View()
	case StateInsight:
		content = docStyle.Render(m.viewInsight())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Summary", "History", "Gratitude"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewGratitude() string {
	prompt := promptStyle.Render(m.todayPrompt.Text)

	if m.todayEntry != nil {
		return fmt.Sprintf("%s\n\n%s\n\n%s", prompt, m.todayEntry.Response,
			mutedStyle.Render("press 'r' to edit today's reflection"))
	}
	return fmt.Sprintf("%s\n\n%s", prompt,
		mutedStyle.Render("press 'r' to write today's reflection"))
}

func (m Model) viewInsight() string {
	if !m.insightsOn {
		return fmt.Sprintf("%s\n\n%s",
			"Weekly insights are disabled.",
			mutedStyle.Render("run 'tend insight enable' first, then press 'i' to return"))
	}
	return fmt.Sprintf("%s\n\n%s", m.insight,
		mutedStyle.Render("press 'i' to return"))
}
