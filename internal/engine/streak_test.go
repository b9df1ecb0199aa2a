package engine

import (
	"testing"
	"time"

	"github.com/julianstephens/tend/internal/models"
)

var streakNow = time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)

// logsForPattern builds one log per active day in the 7-day window. The
// pattern runs oldest day first, matching the order the walk visits days.
func logsForPattern(habitID string, pattern [7]bool) []models.HabitLog {
	start, _ := WeekWindow(streakNow)
	var logs []models.HabitLog
	for i, active := range pattern {
		if active {
			logs = append(logs, models.HabitLog{
				HabitID: habitID,
				Day:     DayKey(start.AddDate(0, 0, i)),
				Minutes: 30,
			})
		}
	}
	return logs
}

func TestWeeklyStreaks_Patterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern [7]bool
		want    int
	}{
		{"perfect week", [7]bool{true, true, true, true, true, true, true}, 7},
		{"no activity", [7]bool{}, 0},
		{"last three days", [7]bool{false, false, false, false, true, true, true}, 3},
		// 1, 0.5, 0, 1, 2, 1.5, 2.5 -> rounds to 3
		{"single gap forgiven", [7]bool{true, false, false, true, true, false, true}, 3},
		// 1, 0.5, 0, 0, 0, 0, 1: decay stops at zero
		{"early day then long gap", [7]bool{true, false, false, false, false, false, true}, 1},
		// 0.5 rounds up to 1
		{"active then one miss", [7]bool{false, false, false, false, false, true, false}, 1},
		{"alternating", [7]bool{true, false, true, false, true, false, true}, 3},
	}

	habits := []models.Habit{{ID: "h1", Name: "Read", Importance: 3}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := WeeklyStreaks(habits, logsForPattern("h1", tt.pattern), streakNow)
			if got := scores["h1"]; got != tt.want {
				t.Errorf("Pattern %v: expected streak %d, got %d", tt.pattern, tt.want, got)
			}
		})
	}
}

func TestWeeklyStreaks_AlwaysInBounds(t *testing.T) {
	habits := []models.Habit{{ID: "h1", Name: "Read", Importance: 3}}

	// Every possible 7-day activity pattern
	for mask := 0; mask < 1<<7; mask++ {
		var pattern [7]bool
		for i := 0; i < 7; i++ {
			pattern[i] = mask&(1<<i) != 0
		}
		scores := WeeklyStreaks(habits, logsForPattern("h1", pattern), streakNow)
		if score := scores["h1"]; score < 0 || score > 7 {
			t.Fatalf("Pattern %v produced out-of-bounds streak %d", pattern, score)
		}
	}
}

func TestWeeklyStreaks_EmptyInputs(t *testing.T) {
	if scores := WeeklyStreaks(nil, nil, streakNow); len(scores) != 0 {
		t.Errorf("Expected empty mapping for no habits, got %v", scores)
	}

	habits := []models.Habit{{ID: "h1", Name: "Read", Importance: 3}}
	scores := WeeklyStreaks(habits, nil, streakNow)
	if scores["h1"] != 0 {
		t.Errorf("Expected zero streak with no logs, got %d", scores["h1"])
	}
}

func TestWeeklyStreaks_ZeroMinuteLogsDoNotCount(t *testing.T) {
	habits := []models.Habit{{ID: "h1", Name: "Read", Importance: 3}}
	logs := []models.HabitLog{
		{HabitID: "h1", Day: DayKey(streakNow), Minutes: 0},
	}

	scores := WeeklyStreaks(habits, logs, streakNow)
	if scores["h1"] != 0 {
		t.Errorf("Zero-minute log must not start a streak, got %d", scores["h1"])
	}
}

func TestWeeklyStreaks_IgnoresLogsOutsideWindow(t *testing.T) {
	habits := []models.Habit{{ID: "h1", Name: "Read", Importance: 3}}
	logs := []models.HabitLog{
		{HabitID: "h1", Day: DayKey(streakNow.AddDate(0, 0, -10)), Minutes: 60},
		{HabitID: "h1", Day: DayKey(streakNow.AddDate(0, 0, 1)), Minutes: 60},
	}

	scores := WeeklyStreaks(habits, logs, streakNow)
	if scores["h1"] != 0 {
		t.Errorf("Logs outside the window must not count, got %d", scores["h1"])
	}
}

func TestWeeklyStreaks_PerHabitIndependence(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Read", Importance: 3},
		{ID: "h2", Name: "Walk", Importance: 2},
	}
	logs := logsForPattern("h1", [7]bool{true, true, true, true, true, true, true})

	scores := WeeklyStreaks(habits, logs, streakNow)
	if scores["h1"] != 7 {
		t.Errorf("Expected full streak for h1, got %d", scores["h1"])
	}
	if scores["h2"] != 0 {
		t.Errorf("Expected zero streak for h2, got %d", scores["h2"])
	}
}
