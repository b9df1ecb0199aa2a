package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/models"
)

// UnknownHabitName is rendered when a log references a habit that no longer
// exists in the habit collection.
const UnknownHabitName = "Unknown habit"

// TopHabit identifies the habit with the most minutes in a summary range
type TopHabit struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

// Summary is the aggregate view of one inclusive date range
type Summary struct {
	Label                  string    `json:"label"`
	DateLabel              string    `json:"date_label"`
	TotalMinutes           int       `json:"total_minutes"`
	AverageMinutesPerHabit float64   `json:"average_minutes_per_habit"`
	TopHabit               *TopHabit `json:"top_habit,omitempty"`
	ActiveDays             int       `json:"active_days"`
	SuggestedFocus         string    `json:"suggested_focus"`
}

// habitTotal is one habit's summed minutes within a range. Totals are
// accumulated in first-encounter order of the input logs, which is the stable
// order all tie-breaking is defined against.
type habitTotal struct {
	habitID string
	minutes int
}

// totalsByHabit groups in-range logs by habit and sums their minutes. Logs with
// zero or negative minutes still count toward the sum (and create an entry),
// just not toward activity.
func totalsByHabit(logs []models.HabitLog, startKey, endKey string) []habitTotal {
	index := make(map[string]int)
	var totals []habitTotal

	for _, log := range logs {
		if !InRange(log.Day, startKey, endKey) {
			continue
		}
		i, ok := index[log.HabitID]
		if !ok {
			i = len(totals)
			index[log.HabitID] = i
			totals = append(totals, habitTotal{habitID: log.HabitID})
		}
		totals[i].minutes += log.Minutes
	}

	return totals
}

// sortedDescending returns a copy of totals ordered by minutes descending.
// The sort is stable, so equal totals keep first-encounter order.
func sortedDescending(totals []habitTotal) []habitTotal {
	out := make([]habitTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].minutes > out[j].minutes
	})
	return out
}

// activeDayCount counts distinct day keys carrying any positive-minute log. A
// day with several logged habits counts once.
func activeDayCount(logs []models.HabitLog, startKey, endKey string) int {
	days := make(map[string]struct{})
	for _, log := range logs {
		if log.Minutes > 0 && InRange(log.Day, startKey, endKey) {
			days[log.Day] = struct{}{}
		}
	}
	return len(days)
}

func habitName(habits []models.Habit, id string) string {
	for _, h := range habits {
		if h.ID == id {
			return h.Name
		}
	}
	return ""
}

// roundTenth rounds to one decimal place
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Summarize aggregates logs over the inclusive [start, end] calendar-day range.
// It never fails: empty or dangling inputs degrade to the documented defaults.
func Summarize(habits []models.Habit, logs []models.HabitLog, label string, start, end time.Time) Summary {
	startKey, endKey := DayKey(start), DayKey(end)

	summary := Summary{
		Label:     label,
		DateLabel: fmt.Sprintf("%s → %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006")),
	}

	totals := totalsByHabit(logs, startKey, endKey)
	for _, t := range totals {
		summary.TotalMinutes += t.minutes
	}
	summary.ActiveDays = activeDayCount(logs, startKey, endKey)

	if len(totals) > 0 {
		summary.AverageMinutesPerHabit = roundTenth(float64(summary.TotalMinutes) / float64(len(totals)))
	}

	ranked := sortedDescending(totals)
	if len(ranked) > 0 && ranked[0].minutes > 0 {
		name := habitName(habits, ranked[0].habitID)
		if name == "" {
			name = UnknownHabitName
		}
		summary.TopHabit = &TopHabit{Name: name, Minutes: ranked[0].minutes}
	}

	summary.SuggestedFocus = suggestedFocus(habits, totals)

	return summary
}

// suggestedFocus produces the narrative suggestion for the range. With two or
// more habits logged it names the least-logged one, skipping dangling
// references when a named habit is available.
func suggestedFocus(habits []models.Habit, totals []habitTotal) string {
	switch len(totals) {
	case 0:
		return constants.FocusNone
	case 1:
		name := habitName(habits, totals[0].habitID)
		if name == "" {
			name = UnknownHabitName
		}
		return fmt.Sprintf(constants.FocusSingle, name)
	}

	ascending := make([]habitTotal, len(totals))
	copy(ascending, totals)
	sort.SliceStable(ascending, func(i, j int) bool {
		return ascending[i].minutes < ascending[j].minutes
	})

	for _, t := range ascending {
		if name := habitName(habits, t.habitID); name != "" {
			return fmt.Sprintf(constants.FocusMulti, name)
		}
	}
	return fmt.Sprintf(constants.FocusMulti, UnknownHabitName)
}

// WeekWindow is the trailing seven-day window ending on now's calendar day
func WeekWindow(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -(constants.StreakWindowDays - 1)), now
}

// MonthToDate spans the first of now's month through now
func MonthToDate(now time.Time) (time.Time, time.Time) {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
}

// YearToDate spans January 1 of now's year through now
func YearToDate(now time.Time) (time.Time, time.Time) {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now
}
