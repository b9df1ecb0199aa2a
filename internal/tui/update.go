package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
		m.help.Width = sizeMsg.Width
		m.timeline.SetSize(sizeMsg.Width-4, sizeMsg.Height-6)
	}

	// The form owns all input while a reflection is being written.
	if m.state == StateReflecting && m.form != nil {
		return m.updateReflecting(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Insight):
			if m.state == StateInsight {
				m.state = m.previousState
			} else {
				m.previousState = m.state
				m.state = StateInsight
			}
		case key.Matches(msg, m.keys.Reflect):
			if m.state == StateGratitude {
				return m.startReflecting()
			}
		}
	}

	if m.state == StateHistory {
		var cmd tea.Cmd
		m.timeline, cmd = m.timeline.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) startReflecting() (tea.Model, tea.Cmd) {
	m.reflection = ""
	if m.todayEntry != nil {
		m.reflection = m.todayEntry.Response
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(m.todayPrompt.Text).
				Value(&m.reflection),
		),
	)

	m.previousState = m.state
	m.state = StateReflecting
	return m, m.form.Init()
}

func (m Model) updateReflecting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.saveReflection()
		m.state = m.previousState
		m.form = nil
		m.refresh()
		return m, nil
	}

	return m, cmd
}

func (m *Model) saveReflection() {
	day := engine.DayKey(time.Now())
	response := strings.TrimSpace(m.reflection)
	if response == "" {
		return
	}
	// Store errors surface on next refresh; the TUI has nowhere better to put them.
	_ = m.store.UpsertGratitude(models.GratitudeEntry{
		Day:      day,
		PromptID: m.todayPrompt.ID,
		Response: response,
	})
}
