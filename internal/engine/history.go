package engine

import (
	"sort"

	"github.com/julianstephens/tend/internal/models"
)

// DayRecord is one day's consolidated activity: the day's habit logs plus its
// gratitude entry when one exists. A day with only a gratitude entry still
// produces a record with an empty log list.
type DayRecord struct {
	Day       string                 `json:"day"`
	Logs      []models.HabitLog      `json:"logs"`
	Gratitude *models.GratitudeEntry `json:"gratitude,omitempty"`
}

// Timeline merges the full log and gratitude collections into one record per
// distinct day, most recent day first. Within a day, logs are ordered by the
// referenced habit's importance descending; a log whose habit no longer exists
// sorts with importance 0 rather than failing.
func Timeline(habits []models.Habit, logs []models.HabitLog, entries []models.GratitudeEntry) []DayRecord {
	importance := make(map[string]int, len(habits))
	for _, h := range habits {
		importance[h.ID] = h.Importance
	}

	index := make(map[string]int)
	var records []DayRecord

	recordFor := func(day string) *DayRecord {
		if i, ok := index[day]; ok {
			return &records[i]
		}
		index[day] = len(records)
		records = append(records, DayRecord{Day: day, Logs: []models.HabitLog{}})
		return &records[len(records)-1]
	}

	for _, log := range logs {
		rec := recordFor(log.Day)
		rec.Logs = append(rec.Logs, log)
	}
	for _, entry := range entries {
		e := entry
		recordFor(e.Day).Gratitude = &e
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Day > records[j].Day
	})

	for i := range records {
		logs := records[i].Logs
		sort.SliceStable(logs, func(a, b int) bool {
			return importance[logs[a].HabitID] > importance[logs[b].HabitID]
		})
	}

	return records
}
