package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/tend/internal/engine"
	"github.com/julianstephens/tend/internal/models"
)

type Item struct {
	Record engine.DayRecord
	Names  map[string]string
}

func (i Item) Title() string {
	total := 0
	for _, l := range i.Record.Logs {
		total += l.Minutes
	}
	title := fmt.Sprintf("%s  %d min", i.Record.Day, total)
	if i.Record.Gratitude != nil {
		title += "  ✎"
	}
	return title
}

func (i Item) Description() string {
	if len(i.Record.Logs) == 0 {
		return "gratitude only"
	}
	parts := make([]string, 0, len(i.Record.Logs))
	for _, l := range i.Record.Logs {
		name, ok := i.Names[l.HabitID]
		if !ok {
			name = "Habit"
		}
		parts = append(parts, fmt.Sprintf("%s %dm", name, l.Minutes))
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string { return i.Record.Day }

type Model struct {
	list list.Model
}

func New(records []engine.DayRecord, habits []models.Habit, width, height int) Model {
	l := list.New(buildItems(records, habits), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally by the main model

	return Model{list: l}
}

func buildItems(records []engine.DayRecord, habits []models.Habit) []list.Item {
	names := make(map[string]string, len(habits))
	for _, h := range habits {
		names[h.ID] = h.Name
	}

	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = Item{Record: r, Names: names}
	}
	return items
}

func (m *Model) SetRecords(records []engine.DayRecord, habits []models.Habit) {
	m.list.SetItems(buildItems(records, habits))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing logged yet.\n  Run 'tend log <habit> <minutes>' to get started."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
