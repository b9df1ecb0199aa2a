package engine

import (
	"math"
	"time"

	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/models"
)

// WeeklyStreaks computes each habit's consistency score over the trailing
// seven-day window ending on now's calendar day.
//
// The walk runs oldest day to newest with a running score starting at 0. A day
// with a positive-minute log adds a full point; a day without one subtracts
// half a point, but only while the score is above zero, so a single missed day
// weakens an active streak without zeroing it. The final score is rounded once
// at the end, giving an integer in [0, 7].
//
// The exact arithmetic (+1, -0.5, floor at 0, round last) is the documented
// contract; do not simplify it.
func WeeklyStreaks(habits []models.Habit, logs []models.HabitLog, now time.Time) map[string]int {
	scores := make(map[string]int, len(habits))
	if len(habits) == 0 {
		return scores
	}

	start, end := WeekWindow(now)
	startKey, endKey := DayKey(start), DayKey(end)

	// Days each habit was active on, within the window
	active := make(map[string]map[string]struct{})
	for _, log := range logs {
		if log.Minutes <= 0 || !InRange(log.Day, startKey, endKey) {
			continue
		}
		if active[log.HabitID] == nil {
			active[log.HabitID] = make(map[string]struct{})
		}
		active[log.HabitID][log.Day] = struct{}{}
	}

	for _, habit := range habits {
		score := 0.0
		for i := 0; i < constants.StreakWindowDays; i++ {
			day := DayKey(start.AddDate(0, 0, i))
			if _, ok := active[habit.ID][day]; ok {
				score++
			} else if score > 0 {
				score -= constants.StreakMissPenalty
			}
		}
		final := int(math.Round(score))
		if final < 0 {
			final = 0
		}
		scores[habit.ID] = final
	}

	return scores
}
