package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
	"github.com/julianstephens/tend/internal/storage"
	"github.com/julianstephens/tend/internal/tui/components/overview"
	"github.com/julianstephens/tend/internal/tui/components/timeline"
)

type SessionState int

const (
	StateSummary SessionState = iota
	StateHistory
	StateGratitude
	StateReflecting
	StateInsight
)

// tabCount covers the states reachable by tab cycling.
const tabCount = 3

type Model struct {
	store         storage.Provider
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	overview      overview.Model
	timeline      timeline.Model
	form          *huh.Form
	reflection    string
	todayPrompt   models.Prompt
	todayEntry    *models.GratitudeEntry
	insight       string
	insightsOn    bool
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store:    store,
		state:    StateSummary,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		overview: overview.New(),
		timeline: timeline.New(nil, nil, 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads store data into every tab.
func (m *Model) refresh() {
	now := time.Now()

	habits, err := m.store.GetAllHabits()
	if err != nil {
		habits = []models.Habit{}
	}
	logs, err := m.store.GetAllLogs()
	if err != nil {
		logs = []models.HabitLog{}
	}
	entries, err := m.store.GetAllGratitude()
	if err != nil {
		entries = []models.GratitudeEntry{}
	}

	weekStart, weekEnd := engine.WeekWindow(now)
	monthStart, monthEnd := engine.MonthToDate(now)
	yearStart, yearEnd := engine.YearToDate(now)

	summaries := []engine.Summary{
		engine.Summarize(habits, logs, "This Week", weekStart, weekEnd),
		engine.Summarize(habits, logs, "This Month", monthStart, monthEnd),
		engine.Summarize(habits, logs, "This Year", yearStart, yearEnd),
	}
	m.overview.SetData(summaries, engine.WeeklyStreaks(habits, logs, now), habits)
	m.timeline.SetRecords(engine.Timeline(habits, logs, entries), habits)

	today := engine.DayKey(now)
	m.todayPrompt = engine.PromptForDay(today, engine.DefaultPrompts)
	m.todayEntry = nil
	for i := range entries {
		if entries[i].Day == today {
			m.todayEntry = &entries[i]
			break
		}
	}

	// The weekly debrief is gated on the insights setting, same as the CLI.
	m.insightsOn = false
	m.insight = ""
	if settings, err := m.store.GetSettings(); err == nil && settings.InsightsEnabled {
		m.insightsOn = true
		m.insight = engine.WeeklyInsight(habits, logs, entries, now)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
