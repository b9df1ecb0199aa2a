package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/tend/internal/constants"
	"github.com/julianstephens/tend/internal/models"
)

// WeeklyInsight composes the premium debrief for the trailing seven-day window
// ending on now's calendar day. It reuses the same aggregation primitives as
// the range summary and streak scoring, and always returns a usable paragraph:
// with no habits or no logs at all it short-circuits to the onboarding message.
func WeeklyInsight(habits []models.Habit, logs []models.HabitLog, entries []models.GratitudeEntry, now time.Time) string {
	if len(habits) == 0 || len(logs) == 0 {
		return constants.InsightOnboarding
	}

	start, end := WeekWindow(now)
	startKey, endKey := DayKey(start), DayKey(end)

	totals := totalsByHabit(logs, startKey, endKey)
	streaks := WeeklyStreaks(habits, logs, now)
	daysLogged := activeDayCount(logs, startKey, endKey)
	gratitudeCount := countReflections(entries, startKey, endKey)

	sentences := []string{
		standoutSentence(habits, totals, streaks),
		unmetSentence(habits, totals),
		consistencySentence(daysLogged),
		gratitudeSentence(gratitudeCount),
	}

	return strings.Join(sentences, " ")
}

// countReflections counts window entries whose trimmed response is non-empty
func countReflections(entries []models.GratitudeEntry, startKey, endKey string) int {
	count := 0
	for _, e := range entries {
		if InRange(e.Day, startKey, endKey) && strings.TrimSpace(e.Response) != "" {
			count++
		}
	}
	return count
}

// standoutSentence reports the habit with the highest window total alongside
// its streak score. Ties resolve to the first habit in the stable descending
// order, the same policy the range summary uses.
func standoutSentence(habits []models.Habit, totals []habitTotal, streaks map[string]int) string {
	ranked := sortedDescending(totals)
	if len(ranked) == 0 || ranked[0].minutes <= 0 {
		return constants.InsightNoStandout
	}

	name := habitName(habits, ranked[0].habitID)
	if name == "" {
		name = UnknownHabitName
	}
	return fmt.Sprintf("Your standout habit this week was %s with %d minutes logged and a streak score of %d out of 7.",
		name, ranked[0].minutes, streaks[ranked[0].habitID])
}

// unmetSentence names the most important habit with zero logged minutes in the
// window. Importance ties resolve to the first habit in a stable descending
// sort of the habit list.
func unmetSentence(habits []models.Habit, totals []habitTotal) string {
	logged := make(map[string]int, len(totals))
	for _, t := range totals {
		logged[t.habitID] = t.minutes
	}

	ranked := make([]models.Habit, len(habits))
	copy(ranked, habits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	for _, h := range ranked {
		if logged[h.ID] == 0 {
			return fmt.Sprintf("%s ranks high on your importance list but saw no activity — try giving it a few minutes tomorrow.", h.Name)
		}
	}
	return constants.InsightAllActive
}

func consistencySentence(daysLogged int) string {
	if daysLogged >= constants.ConsistencyTargetDays {
		return fmt.Sprintf("You logged habits on %d of the last 7 days — excellent consistency.", daysLogged)
	}
	return fmt.Sprintf("You logged habits on %d of the last 7 days — aim for %d or more to build momentum.",
		daysLogged, constants.ConsistencyTargetDays)
}

func gratitudeSentence(count int) string {
	var tier string
	switch {
	case count >= constants.GratitudeStrongThreshold:
		tier = constants.GratitudeTierStrong
	case count >= constants.GratitudeEncourageThreshold:
		tier = constants.GratitudeTierAlmost
	default:
		tier = constants.GratitudeTierNudge
	}
	return fmt.Sprintf("You captured %d gratitude reflections this week. %s", count, tier)
}
